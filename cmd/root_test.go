package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfgen/internal/testutil"
	"perfgen/pkg/errors"
)

// execute runs the command tree with args and returns stdout and stderr
func execute(t *testing.T, d deps, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(d)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// workspace isolates a test from the caller's working directory and config
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

func writeSmallConfig(t *testing.T, dir string) string {
	return testutil.NewTestHelper(t).WriteFile(dir, "small.yaml", testutil.SmallConfigYAML)
}

func fingerprintOf(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "Fingerprint: ") {
			return strings.TrimPrefix(line, "Fingerprint: ")
		}
	}
	t.Fatalf("no fingerprint in output:\n%s", output)
	return ""
}

func TestRootHelp(t *testing.T) {
	out, _, err := execute(t, deps{}, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "perfgen synthesizes a star-schema dataset")
	for _, sub := range []string{"generate", "load", "init", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestInvalidCommand(t *testing.T) {
	_, _, err := execute(t, deps{}, "invalid-command")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, deps{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "perfgen version dev")
	assert.Contains(t, out, "Built at: unknown")
}

func TestRootWithoutCommandWritesDefaultWorkbook(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	out, _, err := execute(t, deps{}, "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Generating Enterprise Executive Performance Data...")
	assert.Contains(t, out, "1/8 Generating Date Dimension...")
	assert.Contains(t, out, "8/8 Generating Risk Facts...")
	assert.Contains(t, out, "Saving data to Excel...")
	assert.Contains(t, out, "DATA GENERATION COMPLETE!")
	assert.Contains(t, out, "Total Days: 90")

	_, statErr := os.Stat(filepath.Join(dir, "Enterprise_Performance_Data.xlsx"))
	assert.NoError(t, statErr)
}

func TestGenerateIsReproducible(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	first, _, err := execute(t, deps{}, "generate", "--config", cfgPath, "--output", filepath.Join(dir, "a.xlsx"))
	require.NoError(t, err)
	second, _, err := execute(t, deps{}, "generate", "--config", cfgPath, "--output", filepath.Join(dir, "b.xlsx"))
	require.NoError(t, err)
	third, _, err := execute(t, deps{}, "generate", "--config", cfgPath, "--seed", "99", "--output", filepath.Join(dir, "c.xlsx"))
	require.NoError(t, err)

	assert.Equal(t, fingerprintOf(t, first), fingerprintOf(t, second))
	assert.NotEqual(t, fingerprintOf(t, first), fingerprintOf(t, third))
}

func TestGenerateCSV(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	out, _, err := execute(t, deps{}, "generate", "--config", cfgPath, "--format", "csv", "--compress")
	require.NoError(t, err)
	assert.Contains(t, out, "Saving data to CSV...")
	assert.Contains(t, out, "Files saved:")

	files, err := filepath.Glob(filepath.Join(dir, "Enterprise_Performance_Data", "*.csv.sz"))
	require.NoError(t, err)
	assert.Len(t, files, 8)
}

func TestGenerateQuiet(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	out, _, err := execute(t, deps{}, "generate", "-q", "--config", cfgPath, "--end", "2022-01-31")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenerateVerboseLogsToStderr(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	_, logs, err := execute(t, deps{}, "generate", "-v", "--config", cfgPath, "--end", "2022-01-31")
	require.NoError(t, err)
	assert.Contains(t, logs, "stage complete")
	assert.Contains(t, logs, "dataset written")
}

func TestGenerateRejectsBadInput(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"inverted range", []string{"--start", "2023-01-01", "--end", "2022-01-01"}, errors.ErrCodeInvalidDateRange},
		{"malformed date", []string{"--start", "01/01/2022"}, errors.ErrCodeInvalidDateRange},
		{"unknown format", []string{"--format", "parquet"}, errors.ErrCodeUnknownFormat},
		{"missing config", []string{"--config", filepath.Join(dir, "missing.yaml")}, errors.ErrCodeConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--config", cfgPath}, tt.args...)
			_, _, err := execute(t, deps{}, args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestLoadValidatesWarehouseBeforeConnecting(t *testing.T) {
	dir := workspace(t)
	cfgPath := writeSmallConfig(t, dir)

	_, _, err := execute(t, deps{}, "load", "--config", cfgPath, "--driver", "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported warehouse driver")

	_, _, err = execute(t, deps{}, "load", "--config", cfgPath, "--driver", "snowflake")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account is required")
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
