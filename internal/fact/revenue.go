package fact

import (
	"math"

	"perfgen/internal/dimension"
	"perfgen/internal/random"
	"perfgen/pkg/models"
)

// CustomerSegments lists the segments a transaction can be booked against
var CustomerSegments = []string{"Enterprise", "Mid-Market", "SMB"}

const (
	minTransactions = 50
	maxTransactions = 100
	seasonalAmp     = 0.2
	revenueGrowth   = 0.15
)

// GenerateRevenue creates 50-100 transactions per month. Each transaction
// samples a region, team and product with replacement; revenue follows a
// sinusoidal seasonality and a linear yearly growth with ±20% noise.
func GenerateRevenue(src *random.Source, cal Calendar, regions []models.RegionRow, teams []models.TeamRow, products []models.ProductRow) ([]models.RevenueFactRow, error) {
	if len(cal.Months) == 0 {
		return nil, nil
	}
	if err := requireRows("revenue", "region", len(regions)); err != nil {
		return nil, err
	}
	if err := requireRows("revenue", "team", len(teams)); err != nil {
		return nil, err
	}
	if err := requireRows("revenue", "product", len(products)); err != nil {
		return nil, err
	}

	var rows []models.RevenueFactRow
	for _, month := range cal.Months {
		dateKey := dimension.DateKey(month)
		seasonal := 1 + seasonalAmp*math.Sin(2*math.Pi*float64(month.Month())/12)
		growth := 1 + revenueGrowth*float64(month.Year()-cal.StartYear)

		n := src.IntRange(minTransactions, maxTransactions)
		for i := 0; i < n; i++ {
			region := regions[src.Index(len(regions))]
			team := teams[src.Index(len(teams))]
			product := products[src.Index(len(products))]

			base := float64(product.UnitPrice * src.IntRange(1, 10))
			noise := src.Uniform(0.8, 1.2)

			rows = append(rows, models.RevenueFactRow{
				RevenueID:       len(rows) + 1,
				DateKey:         dateKey,
				RegionKey:       region.RegionKey,
				TeamKey:         team.TeamKey,
				ProductKey:      product.ProductKey,
				Revenue:         round2(base * seasonal * growth * noise),
				Units:           src.IntRange(1, 20),
				CustomerSegment: src.Choice(CustomerSegments),
			})
		}
	}
	return rows, nil
}
