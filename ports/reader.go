package ports

import (
	"planfeed/domain/ingest"
)

// TableReader parses one validated tabular input file into rows.
// Implementations own the per-format branching (delimited text vs
// spreadsheet); loaders stay format-agnostic behind this port.
type TableReader interface {
	ReadTable(path ingest.ValidatedPath) (*ingest.Table, error)
}
