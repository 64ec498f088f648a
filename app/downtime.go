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

// Required scheduled-downtime columns; machine_Id spelling as in the
// transition file.
const (
	downtimeColMachine = "machine_Id"
	downtimeColWeek    = "week_id"
)

// DowntimeLoader ingests scheduled machine downtime into week → set of
// machines down that week.
type DowntimeLoader struct {
	DowntimeData plan.DowntimeTable
	Snapshot     plan.LoadSnapshot
}

// NewDowntimeLoader validates the path, parses the file, and folds its
// rows into the downtime table. Duplicate rows collapse into a single
// set membership, so row order never matters.
//
// Same extension re-check as the transition load: an unaccepted
// extension is a format error here.
func NewDowntimeLoader(reader ports.TableReader, path string) (*DowntimeLoader, error) {
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
	if err := requireColumns(table, downtimeColMachine, downtimeColWeek); err != nil {
		return nil, err
	}

	data := make(plan.DowntimeTable)
	for _, row := range table.Rows {
		data.Add(
			plan.WeekID(keyCell(row, downtimeColWeek)),
			plan.MachineID(keyCell(row, downtimeColMachine)),
		)
	}

	log.Printf("[DowntimeLoader] Loaded %d weeks from %s (%d rows)", len(data), path, len(table.Rows))

	return &DowntimeLoader{
		DowntimeData: data,
		Snapshot:     plan.NewLoadSnapshot(vp, table, started),
	}, nil
}
