package fact

import (
	"perfgen/internal/dimension"
	"perfgen/internal/random"
	"perfgen/pkg/models"
)

const costGrowth = 0.05

// GenerateCosts emits one row per team per month. Salary scales with
// headcount, operational cost is 30-60% of salary, and both grow 5% a year.
// TotalCost is the sum of the two rounded components so the row always adds up.
func GenerateCosts(src *random.Source, cal Calendar, teams []models.TeamRow) ([]models.CostFactRow, error) {
	if len(cal.Months) == 0 {
		return nil, nil
	}
	if err := requireRows("cost", "team", len(teams)); err != nil {
		return nil, err
	}

	rows := make([]models.CostFactRow, 0, len(cal.Months)*len(teams))
	for _, month := range cal.Months {
		dateKey := dimension.DateKey(month)
		yearFactor := 1 + costGrowth*float64(month.Year()-cal.StartYear)

		for _, team := range teams {
			salary := float64(team.HeadCount * src.IntRange(5000, 12000))
			operational := salary * src.Uniform(0.3, 0.6)

			salaryCost := round2(salary * yearFactor)
			operationalCost := round2(operational * yearFactor)

			rows = append(rows, models.CostFactRow{
				CostID:          len(rows) + 1,
				DateKey:         dateKey,
				TeamKey:         team.TeamKey,
				SalaryCost:      salaryCost,
				OperationalCost: operationalCost,
				TotalCost:       round2(salaryCost + operationalCost),
			})
		}
	}
	return rows, nil
}
