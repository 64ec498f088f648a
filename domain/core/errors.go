package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors, raised before any parsing
	ErrValidation = errors.New("input validation failed")

	// Parse errors: the file was accepted but could not be read into rows
	ErrParse = errors.New("file parse failed")

	// A required column is absent from an otherwise parseable file
	ErrMissingColumn = errors.New("required column missing")

	// Unsupported format reported by a loader's own extension dispatch
	ErrFormat = errors.New("unsupported file format")
)

// Error constructors with context
func NewPathNotFoundError(path string) error {
	return fmt.Errorf("%w: file '%s' does not exist", ErrValidation, path)
}

func NewExtensionError(path string) error {
	return fmt.Errorf("%w: unsupported file format for '%s', provide a CSV or Excel file", ErrValidation, path)
}

func NewParseError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrParse, path, err)
}

func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}

func NewFormatError(path string) error {
	return fmt.Errorf("%w: '%s', provide a CSV or Excel file", ErrFormat, path)
}

func NewCellParseError(column string, row int, raw string) error {
	return fmt.Errorf("%w: column %s row %d: %q is not numeric", ErrParse, column, row, raw)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsMissingColumnError(err error) bool {
	return errors.Is(err, ErrMissingColumn)
}

func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}
