package models

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for date values in configuration files
const DateLayout = "2006-01-02"

type Config struct {
	Seed        int64     `yaml:"seed" mapstructure:"seed"`
	StartDate   string    `yaml:"start_date" mapstructure:"start_date"`
	EndDate     string    `yaml:"end_date" mapstructure:"end_date"`
	Regions     []Region  `yaml:"regions" mapstructure:"regions"`
	Departments []string  `yaml:"departments" mapstructure:"departments"`
	Products    []string  `yaml:"products" mapstructure:"products"`
	Output      Output    `yaml:"output" mapstructure:"output"`
	Warehouse   Warehouse `yaml:"warehouse" mapstructure:"warehouse"`
	Logging     Logging   `yaml:"logging" mapstructure:"logging"`
}

// Region maps a sales region to the countries it covers. Order is preserved
// so region keys are assigned the same way on every run.
type Region struct {
	Name      string   `yaml:"name" mapstructure:"name"`
	Countries []string `yaml:"countries" mapstructure:"countries"`
}

type Output struct {
	Format   string `yaml:"format" mapstructure:"format"` // "xlsx" or "csv"
	Path     string `yaml:"path" mapstructure:"path"`     // workbook file or csv directory
	Compress bool   `yaml:"compress" mapstructure:"compress"`
}

// Warehouse holds the connection settings used by the load command
type Warehouse struct {
	Driver    string `yaml:"driver" mapstructure:"driver"` // "mysql" or "snowflake"
	Host      string `yaml:"host" mapstructure:"host"`
	Port      int    `yaml:"port" mapstructure:"port"`
	Account   string `yaml:"account" mapstructure:"account"`
	Username  string `yaml:"username" mapstructure:"username"`
	Password  string `yaml:"password" mapstructure:"password"` // empty means look up the OS keyring
	Database  string `yaml:"database" mapstructure:"database"`
	Schema    string `yaml:"schema" mapstructure:"schema"`
	Warehouse string `yaml:"warehouse" mapstructure:"warehouse"`
	Role      string `yaml:"role" mapstructure:"role"`
	BatchSize int    `yaml:"batch_size" mapstructure:"batch_size"`
}

type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DateRange parses the configured start and end dates as UTC midnights
func (c *Config) DateRange() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, c.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: %w", c.StartDate, err)
	}
	end, err := time.ParseInLocation(DateLayout, c.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: %w", c.EndDate, err)
	}
	return start, end, nil
}
