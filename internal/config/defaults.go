package config

import "perfgen/pkg/models"

const (
	DefaultSeed       int64 = 42
	DefaultStartDate        = "2022-01-01"
	DefaultEndDate          = "2025-12-31"
	DefaultOutputFile       = "Enterprise_Performance_Data.xlsx"
	DefaultFormat           = FormatXLSX

	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	DriverMySQL     = "mysql"
	DriverSnowflake = "snowflake"
)

// DefaultRegions returns the compiled-in region -> countries catalogue
func DefaultRegions() []models.Region {
	return []models.Region{
		{Name: "North America", Countries: []string{"USA", "Canada", "Mexico"}},
		{Name: "Europe", Countries: []string{"UK", "Germany", "France", "Spain", "Italy"}},
		{Name: "Asia Pacific", Countries: []string{"China", "Japan", "India", "Australia", "Singapore"}},
		{Name: "Latin America", Countries: []string{"Brazil", "Argentina", "Chile", "Colombia"}},
		{Name: "Middle East", Countries: []string{"UAE", "Saudi Arabia", "Israel"}},
	}
}

func DefaultDepartments() []string {
	return []string{"Sales", "Marketing", "Operations", "Technology", "Finance", "HR"}
}

func DefaultProducts() []string {
	return []string{"Enterprise Suite", "Cloud Platform", "Analytics Pro", "Security Plus", "AI Services"}
}

// Default returns the configuration used when perfgen runs with no config
// file, flags or environment overrides.
func Default() *models.Config {
	return &models.Config{
		Seed:        DefaultSeed,
		StartDate:   DefaultStartDate,
		EndDate:     DefaultEndDate,
		Regions:     DefaultRegions(),
		Departments: DefaultDepartments(),
		Products:    DefaultProducts(),
		Output: models.Output{
			Format: DefaultFormat,
			Path:   DefaultOutputFile,
		},
		Warehouse: models.Warehouse{
			Driver:    DriverMySQL,
			Host:      "localhost",
			Port:      3306,
			Database:  "enterprise_performance",
			Schema:    "PUBLIC",
			BatchSize: 500,
		},
		Logging: models.Logging{
			Level:  "info",
			Format: "text",
		},
	}
}
