package app

import (
	"math"

	"planfeed/domain/core"
	"planfeed/domain/ingest"
)

// requireColumns verifies every named column is present in the table.
// Matching is exact; the transition and downtime files really do spell
// their machine column machine_Id.
func requireColumns(table *ingest.Table, columns ...string) error {
	for _, col := range columns {
		if !table.HasColumn(col) {
			return core.NewMissingColumnError(col)
		}
	}
	return nil
}

// keyCell renders the key text of a cell, canonical for numeric cells
func keyCell(row ingest.Row, column string) string {
	return row[column].Key()
}

// numericCell extracts a quantity column: numeric cells pass through,
// blank cells load as NaN, anything else fails the load naming the file
// row. rowIdx is zero-based over data rows; the header occupies file
// row 1, so data row i sits at file row i+2.
func numericCell(row ingest.Row, column string, rowIdx int) (float64, error) {
	v := row[column]
	switch {
	case v.IsNumeric():
		return v.AsFloat64(), nil
	case v.IsMissing():
		return math.NaN(), nil
	default:
		return 0, core.NewCellParseError(column, rowIdx+2, v.String())
	}
}
