package dimension

import (
	"perfgen/internal/random"
	"perfgen/pkg/models"
)

// ProductCategories lists the categories a product can be assigned
var ProductCategories = []string{"Software", "Services", "Platform"}

const (
	minUnitPrice = 1000
	maxUnitPrice = 50000
)

func GenerateProducts(src *random.Source, names []string) []models.ProductRow {
	rows := make([]models.ProductRow, 0, len(names))
	for i, name := range names {
		rows = append(rows, models.ProductRow{
			ProductKey:  i + 1,
			ProductName: name,
			Category:    src.Choice(ProductCategories),
			UnitPrice:   src.IntRange(minUnitPrice, maxUnitPrice),
		})
	}
	return rows
}
