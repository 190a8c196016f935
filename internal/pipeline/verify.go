package pipeline

import (
	"fmt"

	"perfgen/pkg/errors"
)

// Verify checks the structural invariants of a dataset: surrogate keys run
// 1..N in order, and every foreign key on a fact row refers to an existing
// dimension row.
func Verify(d *Dataset) error {
	dates := make(map[int]bool, len(d.Dates))
	for i, r := range d.Dates {
		if i > 0 && r.DateKey <= d.Dates[i-1].DateKey {
			return integrityError("DimDate", "DateKey", fmt.Sprintf("key %d is not increasing", r.DateKey))
		}
		dates[r.DateKey] = true
	}

	regions := make(map[int]bool, len(d.Regions))
	for i, r := range d.Regions {
		if err := checkSequence("DimRegion", "RegionKey", i, r.RegionKey); err != nil {
			return err
		}
		regions[r.RegionKey] = true
	}
	teams := make(map[int]bool, len(d.Teams))
	for i, r := range d.Teams {
		if err := checkSequence("DimTeam", "TeamKey", i, r.TeamKey); err != nil {
			return err
		}
		teams[r.TeamKey] = true
	}
	products := make(map[int]bool, len(d.Products))
	for i, r := range d.Products {
		if err := checkSequence("DimProduct", "ProductKey", i, r.ProductKey); err != nil {
			return err
		}
		products[r.ProductKey] = true
	}

	for i, r := range d.Revenue {
		if err := checkSequence("FactRevenue", "RevenueID", i, r.RevenueID); err != nil {
			return err
		}
		if err := checkRefs("FactRevenue", r.RevenueID,
			ref{"DateKey", r.DateKey, dates},
			ref{"RegionKey", r.RegionKey, regions},
			ref{"TeamKey", r.TeamKey, teams},
			ref{"ProductKey", r.ProductKey, products},
		); err != nil {
			return err
		}
	}
	for i, r := range d.Costs {
		if err := checkSequence("FactCost", "CostID", i, r.CostID); err != nil {
			return err
		}
		if err := checkRefs("FactCost", r.CostID,
			ref{"DateKey", r.DateKey, dates},
			ref{"TeamKey", r.TeamKey, teams},
		); err != nil {
			return err
		}
	}
	for i, r := range d.SLA {
		if err := checkSequence("FactSLA", "SLAID", i, r.SLAID); err != nil {
			return err
		}
		if err := checkRefs("FactSLA", r.SLAID,
			ref{"DateKey", r.DateKey, dates},
			ref{"RegionKey", r.RegionKey, regions},
		); err != nil {
			return err
		}
	}
	for i, r := range d.Risks {
		if err := checkSequence("FactRisk", "RiskID", i, r.RiskID); err != nil {
			return err
		}
		if err := checkRefs("FactRisk", r.RiskID,
			ref{"DateKey", r.DateKey, dates},
			ref{"RegionKey", r.RegionKey, regions},
			ref{"TeamKey", r.TeamKey, teams},
		); err != nil {
			return err
		}
	}
	return nil
}

type ref struct {
	column string
	key    int
	known  map[int]bool
}

func checkSequence(table, column string, index, key int) error {
	if key != index+1 {
		return integrityError(table, column, fmt.Sprintf("row %d has key %d, want %d", index, key, index+1))
	}
	return nil
}

func checkRefs(table string, id int, refs ...ref) error {
	for _, r := range refs {
		if !r.known[r.key] {
			return integrityError(table, r.column, fmt.Sprintf("row %d refers to missing %s %d", id, r.column, r.key))
		}
	}
	return nil
}

func integrityError(table, column, detail string) error {
	return errors.GenerationError(errors.ErrCodeIntegrityViolated, "verify",
		fmt.Sprintf("%s.%s: %s", table, column, detail)).
		WithContext("table", table).
		WithContext("column", column)
}
