package fact

import (
	"perfgen/internal/dimension"
	"perfgen/internal/random"
	"perfgen/pkg/models"
)

const (
	maxRegionsPerDay = 10
	slaTarget        = 99.0
)

// GenerateSLA samples up to ten distinct regions each day and draws
// independent service metrics for each of them.
func GenerateSLA(src *random.Source, cal Calendar, regions []models.RegionRow) ([]models.SLAFactRow, error) {
	if len(cal.Days) == 0 {
		return nil, nil
	}
	if err := requireRows("sla", "region", len(regions)); err != nil {
		return nil, err
	}

	perDay := min(maxRegionsPerDay, len(regions))
	rows := make([]models.SLAFactRow, 0, len(cal.Days)*perDay)
	for _, d := range cal.Days {
		dateKey := dimension.DateKey(d)
		for _, idx := range src.Sample(len(regions), perDay) {
			rows = append(rows, models.SLAFactRow{
				SLAID:           len(rows) + 1,
				DateKey:         dateKey,
				RegionKey:       regions[idx].RegionKey,
				ResponseTime:    round2(src.Uniform(0.5, 5.0)),
				ResolutionTime:  round2(src.Uniform(2, 48)),
				UpTime:          round2(src.Uniform(95, 100)),
				TicketsResolved: src.IntRange(10, 100),
				TicketsOpen:     src.IntRange(5, 50),
				SLATarget:       slaTarget,
				SLAAchieved:     round2(src.Uniform(96, 100)),
			})
		}
	}
	return rows, nil
}
