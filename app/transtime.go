package app

import (
	"log"
	"time"

	"planfeed/domain/core"
	"planfeed/domain/ingest"
	"planfeed/domain/plan"
	"planfeed/internal/fileinput"
	"planfeed/ports"
)

// Required transition-time columns. The machine column is spelled
// machine_Id in real input files and must not be normalized.
const (
	transtimeColMachine = "machine_Id"
	transtimeColFrom    = "from"
	transtimeColTo      = "to"
	transtimeColDays    = "trans_time_days"
)

// TranstimeLoader ingests product changeover times into machine →
// (from, to) product pair → days.
type TranstimeLoader struct {
	TranstimeData plan.TransitionTable
	Snapshot      plan.LoadSnapshot
}

// NewTranstimeLoader validates the path, parses the file, and folds its
// rows into the transition table. Duplicate (machine, from, to) rows
// keep the first value in file order; later duplicates are ignored.
//
// The load routine re-checks the extension itself after the existence
// check. An unaccepted extension here is a format error, unlike the
// validation error the demand and capacity loads raise for it.
func NewTranstimeLoader(reader ports.TableReader, path string) (*TranstimeLoader, error) {
	started := time.Now()

	vp, err := fileinput.ValidateExists(path)
	if err != nil {
		return nil, err
	}

	switch vp.Format() {
	case ingest.FormatCSV, ingest.FormatXLSX:
	default:
		return nil, core.NewFormatError(path)
	}

	table, err := reader.ReadTable(vp)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, transtimeColMachine, transtimeColFrom, transtimeColTo, transtimeColDays); err != nil {
		return nil, err
	}

	data := make(plan.TransitionTable)
	for i, row := range table.Rows {
		days, err := numericCell(row, transtimeColDays, i)
		if err != nil {
			return nil, err
		}
		key := plan.TransitionKey{
			From: plan.ProductID(keyCell(row, transtimeColFrom)),
			To:   plan.ProductID(keyCell(row, transtimeColTo)),
		}
		data.Record(plan.MachineID(keyCell(row, transtimeColMachine)), key, days)
	}

	log.Printf("[TranstimeLoader] Loaded %d machines from %s (%d rows)", len(data), path, len(table.Rows))

	return &TranstimeLoader{
		TranstimeData: data,
		Snapshot:      plan.NewLoadSnapshot(vp, table, started),
	}, nil
}
