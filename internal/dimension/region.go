package dimension

import (
	"perfgen/internal/random"
	"perfgen/pkg/models"
)

const (
	minCitiesPerCountry = 2
	maxCitiesPerCountry = 4
)

// GenerateRegions expands each region's countries into 2-4 synthetic cities.
// Keys are assigned in catalogue order starting at 1.
func GenerateRegions(src *random.Source, regions []models.Region) []models.RegionRow {
	var rows []models.RegionRow
	key := 1
	for _, region := range regions {
		for _, country := range region.Countries {
			cities := src.IntRange(minCitiesPerCountry, maxCitiesPerCountry)
			for i := 0; i < cities; i++ {
				rows = append(rows, models.RegionRow{
					RegionKey:     key,
					Region:        region.Name,
					Country:       country,
					City:          src.City(),
					RegionManager: src.Name(),
				})
				key++
			}
		}
	}
	return rows
}
