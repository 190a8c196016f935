package pipeline

import (
	"time"

	"perfgen/pkg/models"
)

// Dataset holds every generated table of one run
type Dataset struct {
	Start time.Time
	End   time.Time
	Seed  int64

	Dates    []models.DateRow
	Regions  []models.RegionRow
	Teams    []models.TeamRow
	Products []models.ProductRow

	Revenue []models.RevenueFactRow
	Costs   []models.CostFactRow
	SLA     []models.SLAFactRow
	Risks   []models.RiskFactRow
}

// Tables returns the eight tables in export order, dimensions first
func (d *Dataset) Tables() []models.Table {
	return []models.Table{
		models.NewTable(models.TableDimDate, models.DateColumns, d.Dates),
		models.NewTable(models.TableDimRegion, models.RegionColumns, d.Regions),
		models.NewTable(models.TableDimTeam, models.TeamColumns, d.Teams),
		models.NewTable(models.TableDimProduct, models.ProductColumns, d.Products),
		models.NewTable(models.TableFactRevenue, models.RevenueColumns, d.Revenue),
		models.NewTable(models.TableFactCost, models.CostColumns, d.Costs),
		models.NewTable(models.TableFactSLA, models.SLAColumns, d.SLA),
		models.NewTable(models.TableFactRisk, models.RiskColumns, d.Risks),
	}
}

// TableCount is a named row count for the summary
type TableCount struct {
	Label string
	Table string
	Rows  int
}

// Summary describes a dataset for the console report
type Summary struct {
	Start       time.Time
	End         time.Time
	TotalDays   int
	Dimensions  []TableCount
	Facts       []TableCount
	Total       int
	Fingerprint string

	// Destination describes where the data was written; DestinationLabel
	// defaults to "File saved" when empty.
	Destination      string
	DestinationLabel string
}

// Summarize counts the rows of every table. TotalDays is the inclusive day
// count of the range, which equals the date dimension's row count.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		Start:     d.Start,
		End:       d.End,
		TotalDays: len(d.Dates),
		Dimensions: []TableCount{
			{"Date Records", models.TableDimDate, len(d.Dates)},
			{"Regions", models.TableDimRegion, len(d.Regions)},
			{"Teams", models.TableDimTeam, len(d.Teams)},
			{"Products", models.TableDimProduct, len(d.Products)},
		},
		Facts: []TableCount{
			{"Revenue Transactions", models.TableFactRevenue, len(d.Revenue)},
			{"Cost Records", models.TableFactCost, len(d.Costs)},
			{"SLA Metrics", models.TableFactSLA, len(d.SLA)},
			{"Risk Entries", models.TableFactRisk, len(d.Risks)},
		},
	}
	for _, c := range s.Dimensions {
		s.Total += c.Rows
	}
	for _, c := range s.Facts {
		s.Total += c.Rows
	}
	return s
}
