package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfgen/internal/testutil"
	"perfgen/pkg/errors"
	"perfgen/pkg/models"
)

var tableOrder = []string{
	models.TableDimDate, models.TableDimRegion, models.TableDimTeam, models.TableDimProduct,
	models.TableFactRevenue, models.TableFactCost, models.TableFactSLA, models.TableFactRisk,
}

func generate(t *testing.T, cfg *models.Config) *Dataset {
	t.Helper()
	ds, err := NewGenerator(cfg).Run(context.Background())
	require.NoError(t, err)
	return ds
}

func TestRunReportsEightStages(t *testing.T) {
	var lines []string
	reporter := ReporterFunc(func(index, total int, label string) {
		lines = append(lines, label)
		assert.Equal(t, 8, total)
		assert.Equal(t, len(lines), index)
	})

	_, err := NewGenerator(testutil.SmallConfig(), WithReporter(reporter)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Date Dimension", "Region Dimension", "Team Dimension", "Product Dimension",
		"Revenue Facts", "Cost Facts", "SLA Facts", "Risk Facts",
	}, lines)
}

func TestRunProducesConsistentDataset(t *testing.T) {
	cfg := testutil.SmallConfig()
	ds := generate(t, cfg)

	assert.Len(t, ds.Dates, 90)
	assert.Len(t, ds.Products, 3)
	assert.Len(t, ds.Costs, 3*len(ds.Teams))
	assert.Len(t, ds.SLA, 90*min(10, len(ds.Regions)))
	assert.NoError(t, Verify(ds))

	tables := ds.Tables()
	require.Len(t, tables, 8)
	for i, tbl := range tables {
		assert.Equal(t, tableOrder[i], tbl.Name)
		for _, row := range tbl.Rows {
			require.Len(t, row, len(tbl.Columns))
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a := generate(t, testutil.SmallConfig())
	b := generate(t, testutil.SmallConfig())

	fa, err := Fingerprint(a.Tables())
	require.NoError(t, err)
	fb, err := Fingerprint(b.Tables())
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
	assert.Len(t, fa, 64)

	other := testutil.SmallConfig()
	other.Seed = 8
	fc, err := Fingerprint(generate(t, other).Tables())
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc)
}

func TestRunRejectsInvertedRange(t *testing.T) {
	cfg := testutil.SmallConfig()
	cfg.EndDate = "2021-12-31"

	_, err := NewGenerator(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, errors.GetErrorCode(err))
}

func TestRunFailsOnEmptyCatalogue(t *testing.T) {
	cfg := testutil.SmallConfig()
	cfg.Products = nil

	_, err := NewGenerator(cfg).Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeEmptyDimension, errors.GetErrorCode(err))
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(testutil.SmallConfig()).Run(ctx)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCancelled, errors.GetErrorCode(err))
}

func TestSummarize(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	s := ds.Summarize()

	assert.Equal(t, 90, s.TotalDays)
	require.Len(t, s.Dimensions, 4)
	require.Len(t, s.Facts, 4)
	assert.Equal(t, "Revenue Transactions", s.Facts[0].Label)

	total := 0
	for _, tbl := range ds.Tables() {
		total += tbl.Len()
	}
	assert.Equal(t, total, s.Total)
}

func TestVerifyDetectsBrokenReferences(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	ds.Revenue[0].ProductKey = 99

	err := Verify(ds)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIntegrityViolated, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "FactRevenue.ProductKey")
}

func TestVerifyDetectsKeyGaps(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	ds.Teams[1].TeamKey = 5

	err := Verify(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DimTeam.TeamKey")
}

func TestVerifyDetectsUnknownDates(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	ds.SLA[0].DateKey = 20300101

	err := Verify(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FactSLA.DateKey")
}

func TestExportWritesAllTablesAndCloses(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	sink := &testutil.RecordingSink{}

	require.NoError(t, Export(context.Background(), ds, sink))
	assert.Equal(t, tableOrder, sink.Names())
	assert.Equal(t, 1, sink.Closed)
	assert.Equal(t, models.DateColumns, sink.Tables[0].Columns)
	assert.Len(t, sink.Tables[0].Rows, len(ds.Dates))
}

func TestExportClosesSinkOnWriteFailure(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	sink := &testutil.RecordingSink{FailOn: models.TableFactCost}

	err := Export(context.Background(), ds, sink)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileWrite, errors.GetErrorCode(err))
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, sink.Closed)
	assert.Len(t, sink.Tables, 5)
}

func TestExportReportsCloseFailure(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	sink := &testutil.RecordingSink{CloseErr: errors.New(errors.ErrCodeFilePermission, "permission denied")}

	err := Export(context.Background(), ds, sink)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFilePermission, errors.GetErrorCode(err))
}

func TestExportCancelled(t *testing.T) {
	ds := generate(t, testutil.SmallConfig())
	sink := &testutil.RecordingSink{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Export(ctx, ds, sink)
	assert.Equal(t, errors.ErrCodeCancelled, errors.GetErrorCode(err))
	assert.Empty(t, sink.Tables)
	assert.Equal(t, 1, sink.Closed)
}
