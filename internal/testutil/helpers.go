package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"perfgen/internal/common"
	"perfgen/internal/config"
	"perfgen/pkg/models"
)

// TestHelper provides common test utilities
type TestHelper struct {
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// WriteFile writes content to a file in the given directory
func (h *TestHelper) WriteFile(dir, filename, content string) string {
	h.t.Helper()
	path := filepath.Join(dir, filename)

	if err := os.MkdirAll(filepath.Dir(path), common.DirPermissionNormal); err != nil {
		h.t.Fatalf("Failed to create directories: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), common.FilePermissionSecure); err != nil {
		h.t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

// SmallConfig returns a valid configuration that generates a dataset small
// enough for unit tests: one quarter, two regions, two departments.
func SmallConfig() *models.Config {
	cfg := config.Default()
	cfg.Seed = 7
	cfg.StartDate = "2022-01-01"
	cfg.EndDate = "2022-03-31"
	cfg.Regions = []models.Region{
		{Name: "North America", Countries: []string{"USA", "Canada"}},
		{Name: "Europe", Countries: []string{"UK"}},
	}
	cfg.Departments = []string{"Sales", "Engineering"}
	cfg.Products = []string{"Enterprise Suite", "Cloud Platform", "Analytics Pro"}
	return cfg
}

// SmallConfigYAML is SmallConfig as a config file
const SmallConfigYAML = `seed: 7
start_date: "2022-01-01"
end_date: "2022-03-31"
regions:
  - name: North America
    countries: [USA, Canada]
  - name: Europe
    countries: [UK]
departments: [Sales, Engineering]
products: [Enterprise Suite, Cloud Platform, Analytics Pro]
`
