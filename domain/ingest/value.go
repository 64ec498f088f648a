package ingest

import (
	"strconv"
)

// Value represents a typed cell with deterministic coercion
type Value struct {
	Type  ValueType
	Str   string
	Int   int64
	Float float64
}

// ValueType defines the storage type for cell values
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeInteger ValueType = "integer"
	ValueTypeFloat   ValueType = "float"
	ValueTypeMissing ValueType = "missing"
)

// NewStringValue creates a string value; blank text is missing
func NewStringValue(s string) Value {
	if s == "" {
		return Value{Type: ValueTypeMissing}
	}
	return Value{Type: ValueTypeString, Str: s}
}

// NewIntegerValue creates an integer value
func NewIntegerValue(n int64) Value {
	return Value{Type: ValueTypeInteger, Int: n}
}

// NewFloatValue creates a float value
func NewFloatValue(f float64) Value {
	return Value{Type: ValueTypeFloat, Float: f}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing}
}

// IsMissing returns true for blank cells and padded short rows
func (v Value) IsMissing() bool {
	return v.Type == ValueTypeMissing
}

// IsNumeric returns true if the value holds an integer or float
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeInteger || v.Type == ValueTypeFloat
}

// AsFloat64 returns the numeric value as float64, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	switch v.Type {
	case ValueTypeInteger:
		return float64(v.Int)
	case ValueTypeFloat:
		return v.Float
	}
	return 0.0
}

// Key returns the canonical key text used when this cell keys a lookup
// table: integers and floats render in their shortest decimal form, so
// a column of numeric-looking IDs keys consistently across files.
func (v Value) Key() string {
	switch v.Type {
	case ValueTypeString:
		return v.Str
	case ValueTypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueTypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return ""
}

// String returns the display representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		return v.Str
	case ValueTypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueTypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueTypeMissing:
		return "<missing>"
	}
	return "<invalid>"
}
