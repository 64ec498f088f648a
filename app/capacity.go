package app

import (
	"log"
	"time"

	"planfeed/domain/plan"
	"planfeed/internal/fileinput"
	"planfeed/ports"
)

// Required capacity columns
const (
	capacityColMachine = "machine_id"
	capacityColProduct = "product_id"
	capacityColCap     = "week_cap"
)

// CapacityLoader ingests machine capacity into machine → product →
// weekly capacity.
type CapacityLoader struct {
	CapacityData plan.CapacityTable
	Snapshot     plan.LoadSnapshot
}

// NewCapacityLoader validates the path, parses the file, and folds its
// rows into the capacity table. Duplicate (machine, product) rows keep
// the last value in file order.
func NewCapacityLoader(reader ports.TableReader, path string) (*CapacityLoader, error) {
	started := time.Now()

	vp, err := fileinput.Validate(path)
	if err != nil {
		return nil, err
	}

	table, err := reader.ReadTable(vp)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, capacityColMachine, capacityColProduct, capacityColCap); err != nil {
		return nil, err
	}

	data := make(plan.CapacityTable)
	for i, row := range table.Rows {
		weekCap, err := numericCell(row, capacityColCap, i)
		if err != nil {
			return nil, err
		}
		data.Set(
			plan.MachineID(keyCell(row, capacityColMachine)),
			plan.ProductID(keyCell(row, capacityColProduct)),
			weekCap,
		)
	}

	log.Printf("[CapacityLoader] Loaded %d machines from %s (%d rows)", len(data), path, len(table.Rows))

	return &CapacityLoader{
		CapacityData: data,
		Snapshot:     plan.NewLoadSnapshot(vp, table, started),
	}, nil
}
