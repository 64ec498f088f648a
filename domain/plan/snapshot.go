package plan

import (
	"time"

	"planfeed/domain/core"
	"planfeed/domain/ingest"
)

// LoadSnapshot is the provenance receipt of one completed load: which
// file produced the table, how many rows it carried, a content
// fingerprint, and when and how long the load ran.
type LoadSnapshot struct {
	LoadID      core.LoadID         `json:"load_id"`
	Source      string              `json:"source"`
	Format      ingest.SourceFormat `json:"format"`
	Rows        int                 `json:"rows"`
	Fingerprint core.Hash           `json:"fingerprint"`
	LoadedAt    core.Timestamp      `json:"loaded_at"`
	DurationMs  int64               `json:"duration_ms"`
}

// NewLoadSnapshot stamps a receipt for a table parsed from source
func NewLoadSnapshot(source ingest.ValidatedPath, table *ingest.Table, started time.Time) LoadSnapshot {
	return LoadSnapshot{
		LoadID:      core.LoadID(core.NewID()),
		Source:      source.String(),
		Format:      source.Format(),
		Rows:        len(table.Rows),
		Fingerprint: table.Fingerprint(),
		LoadedAt:    core.Now(),
		DurationMs:  time.Since(started).Milliseconds(),
	}
}
