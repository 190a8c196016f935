package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

func TestGetConfigFile(t *testing.T) {
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".perfgen", "perfgen.yaml")
	assert.Equal(t, expected, GetConfigFile())
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSeed, cfg.Seed)
	assert.Equal(t, "2022-01-01", cfg.StartDate)
	assert.Equal(t, "2025-12-31", cfg.EndDate)
	assert.Equal(t, "Enterprise_Performance_Data.xlsx", cfg.Output.Path)
	assert.Equal(t, FormatXLSX, cfg.Output.Format)
	assert.Len(t, cfg.Regions, 5)
	assert.Equal(t, "North America", cfg.Regions[0].Name)
	assert.Equal(t, []string{"USA", "Canada", "Mexico"}, cfg.Regions[0].Countries)
	assert.Len(t, cfg.Departments, 6)
	assert.Len(t, cfg.Products, 5)
	assert.Equal(t, 500, cfg.Warehouse.BatchSize)
	assert.NoError(t, Validate(cfg))
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `
seed: 7
start_date: "2022-01-01"
end_date: "2022-01-31"
regions:
  - name: North America
    countries: [USA]
output:
  format: csv
  path: exports
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "2022-01-31", cfg.EndDate)
	require.Len(t, cfg.Regions, 1)
	assert.Equal(t, []string{"USA"}, cfg.Regions[0].Countries)
	assert.Equal(t, DefaultDepartments(), cfg.Departments)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "exports", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PERFGEN_SEED", "1234")
	t.Setenv("PERFGEN_OUTPUT_PATH", "from-env.xlsx")
	t.Setenv("PERFGEN_WAREHOUSE_HOST", "db.internal")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "from-env.xlsx", cfg.Output.Path)
	assert.Equal(t, "db.internal", cfg.Warehouse.Host)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetErrorCode(err))
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "perfgen.yaml")

	cfg := Default()
	cfg.Seed = 99
	cfg.Products = []string{"Only Product"}

	require.NoError(t, Save(path, cfg))
	assert.True(t, Exists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk models.Config
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, int64(99), onDisk.Seed)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Only Product"}, loaded.Products)
	assert.Equal(t, cfg.Regions, loaded.Regions)
}

func TestSaveWithInvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := Save(filepath.Join(blocker, "perfgen.yaml"), Default())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
