package fact

import (
	"perfgen/internal/dimension"
	"perfgen/internal/random"
	"perfgen/pkg/models"
)

var (
	RiskCategories     = []string{"Operational", "Financial", "Compliance", "Strategic", "Technology"}
	RiskImpacts        = []string{"Low", "Medium", "High", "Critical"}
	RiskProbabilities  = []string{"Low", "Medium", "High"}
	MitigationStatuses = []string{"Identified", "In Progress", "Mitigated", "Accepted"}
)

// GenerateRisks creates 20-30 risk entries per month against sampled regions and teams
func GenerateRisks(src *random.Source, cal Calendar, regions []models.RegionRow, teams []models.TeamRow) ([]models.RiskFactRow, error) {
	if len(cal.Months) == 0 {
		return nil, nil
	}
	if err := requireRows("risk", "region", len(regions)); err != nil {
		return nil, err
	}
	if err := requireRows("risk", "team", len(teams)); err != nil {
		return nil, err
	}

	var rows []models.RiskFactRow
	for _, month := range cal.Months {
		dateKey := dimension.DateKey(month)
		n := src.IntRange(20, 30)
		for i := 0; i < n; i++ {
			region := regions[src.Index(len(regions))]
			team := teams[src.Index(len(teams))]

			rows = append(rows, models.RiskFactRow{
				RiskID:           len(rows) + 1,
				DateKey:          dateKey,
				RegionKey:        region.RegionKey,
				TeamKey:          team.TeamKey,
				RiskCategory:     src.Choice(RiskCategories),
				RiskScore:        src.IntRange(1, 10),
				Impact:           src.Choice(RiskImpacts),
				Probability:      src.Choice(RiskProbabilities),
				MitigationStatus: src.Choice(MitigationStatuses),
			})
		}
	}
	return rows, nil
}
