// Package fact generates the measured tables of the star schema by sampling
// the dimension tables.
package fact

import (
	"math"
	"time"

	"perfgen/internal/dimension"
	"perfgen/pkg/errors"
)

// Calendar holds the dates fact generators iterate over
type Calendar struct {
	Days      []time.Time // every day in range, daily facts
	Months    []time.Time // first-of-month days in range, monthly facts
	StartYear int         // base year for growth factors
}

// NewCalendar builds the calendar for the inclusive range [start, end]
func NewCalendar(start, end time.Time) Calendar {
	c := Calendar{
		Months:    dimension.MonthStarts(start, end),
		StartYear: start.Year(),
	}
	for _, row := range dimension.GenerateDates(start, end) {
		c.Days = append(c.Days, row.Date)
	}
	return c
}

// round2 rounds half away from zero to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// requireRows fails with an empty-dimension error when a generator that has
// dates to fill must sample from a dimension with no rows
func requireRows(stage, dimensionName string, n int) error {
	if n == 0 {
		return errors.EmptyDimensionError(stage, dimensionName)
	}
	return nil
}
