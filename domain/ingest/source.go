package ingest

import (
	"path/filepath"
	"strings"
)

// ValidatedPath is a file path that passed input validation. Constructed
// by the fileinput checks, consumed immediately by a reader, never stored.
type ValidatedPath string

// String returns the underlying path
func (p ValidatedPath) String() string {
	return string(p)
}

// Format classifies the path by extension
func (p ValidatedPath) Format() SourceFormat {
	return FormatForPath(string(p))
}

// SourceFormat identifies the tabular file format of an input path
type SourceFormat string

const (
	FormatCSV     SourceFormat = "csv"
	FormatXLSX    SourceFormat = "xlsx"
	FormatUnknown SourceFormat = "unknown"
)

// FormatForPath classifies a path by its extension, case-insensitively.
// Anything outside the two accepted spreadsheet formats is unknown.
func FormatForPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatUnknown
	}
}
