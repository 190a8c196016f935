package dimension

import (
	"fmt"

	"perfgen/internal/random"
	"perfgen/pkg/models"
)

const (
	minSubTeams  = 3
	maxSubTeams  = 6
	minHeadCount = 10
	maxHeadCount = 50
)

// GenerateTeams creates 3-6 sub-teams per department, each with a lead and a headcount
func GenerateTeams(src *random.Source, departments []string) []models.TeamRow {
	var rows []models.TeamRow
	key := 1
	for _, dept := range departments {
		n := src.IntRange(minSubTeams, maxSubTeams)
		for i := 1; i <= n; i++ {
			rows = append(rows, models.TeamRow{
				TeamKey:    key,
				Department: dept,
				SubTeam:    fmt.Sprintf("%s - Team %d", dept, i),
				TeamLead:   src.Name(),
				HeadCount:  src.IntRange(minHeadCount, maxHeadCount),
			})
			key++
		}
	}
	return rows
}
