package ingest

import (
	"strings"

	"planfeed/domain/core"
)

// Row maps a column name to its typed cell value. Every row of a parsed
// table carries a value for every header; short source rows are padded
// with missing values.
type Row map[string]Value

// Table is the parsed intermediate form of one tabular input file:
// column headers in file order plus one Row per data row.
type Table struct {
	Headers []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column. Matching
// is exact: header casing in real input files is significant.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Fingerprint computes a content hash over headers and cells in file
// order, stable across loads of byte-identical data.
func (t *Table) Fingerprint() core.Hash {
	var data strings.Builder
	for _, h := range t.Headers {
		data.WriteString(h)
		data.WriteByte(0x1f)
	}
	data.WriteByte('\n')
	for _, row := range t.Rows {
		for _, h := range t.Headers {
			data.WriteString(row[h].String())
			data.WriteByte(0x1f)
		}
		data.WriteByte('\n')
	}
	return core.NewHash([]byte(data.String()))
}
