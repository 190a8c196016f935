package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"perfgen/internal/pipeline"
)

func TestRenderSummary(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	s := pipeline.Summary{
		Start:     time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		TotalDays: 1461,
		Dimensions: []pipeline.TableCount{
			{Label: "Date Records", Table: "DimDate", Rows: 1461},
			{Label: "Regions", Table: "DimRegion", Rows: 45},
		},
		Facts: []pipeline.TableCount{
			{Label: "Revenue Transactions", Table: "FactRevenue", Rows: 3600},
		},
		Total:       5106,
		Fingerprint: "abc123",
		Destination: "/tmp/Enterprise_Performance_Data.xlsx",
	}

	var buf bytes.Buffer
	RenderSummary(&buf, s)
	out := buf.String()

	assert.Contains(t, out, "DATA GENERATION COMPLETE!")
	assert.Contains(t, out, "Date Range: 2022-01-01 to 2025-12-31")
	assert.Contains(t, out, "Total Days: 1461")
	assert.Contains(t, out, "Date Records (DimDate)")
	assert.Contains(t, out, "Revenue Transactions (FactRevenue)")
	assert.Contains(t, out, "3,600")
	assert.Contains(t, out, "Total Records")
	assert.Contains(t, out, "5,106")
	assert.Contains(t, out, "File saved: /tmp/Enterprise_Performance_Data.xlsx")
	assert.Contains(t, out, "Fingerprint: abc123")
}

func TestRenderSummaryWithoutDestination(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, pipeline.Summary{})
	assert.NotContains(t, buf.String(), "File saved")
	assert.NotContains(t, buf.String(), "Fingerprint")
}

func TestRenderSummaryDestinationLabel(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, pipeline.Summary{Destination: "mysql database perf", DestinationLabel: "Loaded into"})
	assert.Contains(t, buf.String(), "Loaded into: mysql database perf")
}
