package config

import (
	"fmt"
	"strings"

	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

// Validate checks the settings needed to generate and export a dataset
func Validate(cfg *models.Config) error {
	start, end, err := cfg.DateRange()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidDateRange, "invalid date range").
			WithSuggestions("Use YYYY-MM-DD for start_date and end_date")
	}
	if end.Before(start) {
		return errors.New(errors.ErrCodeInvalidDateRange,
			fmt.Sprintf("end_date %s is before start_date %s", cfg.EndDate, cfg.StartDate)).
			WithContext("start_date", cfg.StartDate).
			WithContext("end_date", cfg.EndDate)
	}

	if len(cfg.Regions) == 0 {
		return errors.ConfigError("at least one region is required", "regions")
	}
	for _, r := range cfg.Regions {
		if strings.TrimSpace(r.Name) == "" {
			return errors.ConfigError("region name must not be empty", "regions.name")
		}
		if len(r.Countries) == 0 {
			return errors.ConfigError(fmt.Sprintf("region %q has no countries", r.Name), "regions.countries")
		}
	}
	if len(cfg.Departments) == 0 {
		return errors.ConfigError("at least one department is required", "departments")
	}
	if len(cfg.Products) == 0 {
		return errors.ConfigError("at least one product is required", "products")
	}

	return ValidateOutput(cfg.Output)
}

// ValidateOutput checks the file sink settings
func ValidateOutput(out models.Output) error {
	switch out.Format {
	case FormatXLSX, FormatCSV:
	default:
		return errors.New(errors.ErrCodeUnknownFormat, fmt.Sprintf("unknown output format %q", out.Format)).
			WithContext("field", "output.format").
			WithSuggestions("Use one of: xlsx, csv")
	}
	if strings.TrimSpace(out.Path) == "" {
		return errors.ConfigError("output path must not be empty", "output.path")
	}
	return nil
}

// ValidateWarehouse checks the settings needed by the load command
func ValidateWarehouse(w models.Warehouse) error {
	switch w.Driver {
	case DriverMySQL:
		if w.Host == "" {
			return errors.ConfigError("warehouse host is required for mysql", "warehouse.host")
		}
	case DriverSnowflake:
		if w.Account == "" {
			return errors.ConfigError("warehouse account is required for snowflake", "warehouse.account")
		}
		if w.Warehouse == "" {
			return errors.ConfigError("warehouse name is required for snowflake", "warehouse.warehouse")
		}
	default:
		return errors.ConfigError(fmt.Sprintf("unsupported warehouse driver %q", w.Driver), "warehouse.driver")
	}
	if w.Username == "" {
		return errors.ConfigError("warehouse username is required", "warehouse.username")
	}
	if w.Database == "" {
		return errors.ConfigError("warehouse database is required", "warehouse.database")
	}
	if w.BatchSize <= 0 {
		return errors.ConfigError("warehouse batch_size must be positive", "warehouse.batch_size")
	}
	return nil
}
