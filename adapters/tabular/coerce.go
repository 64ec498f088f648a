package tabular

import (
	"math"
	"strconv"
	"strings"

	"planfeed/domain/ingest"
)

// coerceCell converts one raw cell into its typed value: integer first,
// then finite float, otherwise the trimmed text. Blank cells are missing.
// Non-finite spellings like "NaN" or "Inf" stay strings so they can never
// masquerade as quantities.
func coerceCell(raw string) ingest.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ingest.NewMissingValue()
	}

	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return ingest.NewIntegerValue(n)
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if !math.IsInf(f, 0) && !math.IsNaN(f) {
			return ingest.NewFloatValue(f)
		}
	}

	return ingest.NewStringValue(trimmed)
}
