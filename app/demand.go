package app

import (
	"log"
	"time"

	"planfeed/domain/plan"
	"planfeed/internal/fileinput"
	"planfeed/ports"
)

// Required demand columns
const (
	demandColProduct = "product_id"
	demandColWeek    = "week_id"
	demandColQty     = "demand"
)

// DemandLoader ingests product demand into product → week → quantity.
// The whole load runs inside the constructor; afterwards DemandData is
// read-only for the lifetime of the loader.
type DemandLoader struct {
	DemandData plan.DemandTable
	Snapshot   plan.LoadSnapshot
}

// NewDemandLoader validates the path, parses the file, and folds its
// rows into the demand table. Duplicate (product, week) rows keep the
// last value in file order.
func NewDemandLoader(reader ports.TableReader, path string) (*DemandLoader, error) {
	started := time.Now()

	vp, err := fileinput.Validate(path)
	if err != nil {
		return nil, err
	}

	table, err := reader.ReadTable(vp)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, demandColProduct, demandColWeek, demandColQty); err != nil {
		return nil, err
	}

	data := make(plan.DemandTable)
	for i, row := range table.Rows {
		qty, err := numericCell(row, demandColQty, i)
		if err != nil {
			return nil, err
		}
		data.Set(
			plan.ProductID(keyCell(row, demandColProduct)),
			plan.WeekID(keyCell(row, demandColWeek)),
			qty,
		)
	}

	log.Printf("[DemandLoader] Loaded %d products from %s (%d rows)", len(data), path, len(table.Rows))

	return &DemandLoader{
		DemandData: data,
		Snapshot:   plan.NewLoadSnapshot(vp, table, started),
	}, nil
}
