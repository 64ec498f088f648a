// Package fileinput checks input paths before any parsing happens.
// Checks are stat-based only: a path that passes can still fail later
// in the reader if its content is corrupt.
package fileinput

import (
	"os"

	"planfeed/domain/core"
	"planfeed/domain/ingest"
)

// Validate confirms the path exists and carries an accepted extension
// (.csv or .xlsx, case-insensitive).
func Validate(path string) (ingest.ValidatedPath, error) {
	vp, err := ValidateExists(path)
	if err != nil {
		return "", err
	}
	if vp.Format() == ingest.FormatUnknown {
		return "", core.NewExtensionError(path)
	}
	return vp, nil
}

// ValidateExists confirms the path exists, leaving the format check to
// the caller's own extension dispatch.
func ValidateExists(path string) (ingest.ValidatedPath, error) {
	if _, err := os.Stat(path); err != nil {
		return "", core.NewPathNotFoundError(path)
	}
	return ingest.ValidatedPath(path), nil
}
