// Package dimension enumerates the descriptive tables of the star schema.
package dimension

import (
	"time"

	"perfgen/pkg/models"
)

// DateKey encodes t as the integer YYYYMMDD
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// GenerateDates returns one row per calendar day in [start, end]. An end
// before start yields no rows.
func GenerateDates(start, end time.Time) []models.DateRow {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return nil
	}

	rows := make([]models.DateRow, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rows = append(rows, dateRow(d))
	}
	return rows
}

func dateRow(d time.Time) models.DateRow {
	month := int(d.Month())
	_, week := d.ISOWeek()

	// Monday=1 .. Sunday=7
	dow := int(d.Weekday())
	if dow == 0 {
		dow = 7
	}
	weekend := 0
	if dow >= 6 {
		weekend = 1
	}

	return models.DateRow{
		DateKey:       DateKey(d),
		Date:          d,
		Year:          d.Year(),
		Quarter:       (month-1)/3 + 1,
		Month:         month,
		MonthName:     d.Month().String(),
		Week:          week,
		DayOfWeek:     dow,
		DayName:       d.Weekday().String(),
		IsWeekend:     weekend,
		FiscalYear:    fiscalYear(d),
		FiscalQuarter: fiscalQuarter(month),
	}
}

// fiscalYear is the calendar year six months later; the fiscal year starts in July
func fiscalYear(d time.Time) int {
	if d.Month() >= time.July {
		return d.Year() + 1
	}
	return d.Year()
}

func fiscalQuarter(month int) int {
	return (month+5)%12/3 + 1
}

// MonthStarts returns the first day of every month that falls inside [start, end]
func MonthStarts(start, end time.Time) []time.Time {
	start = truncateDay(start)
	end = truncateDay(end)

	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	if first.Before(start) {
		first = first.AddDate(0, 1, 0)
	}

	var out []time.Time
	for m := first; !m.After(end); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
