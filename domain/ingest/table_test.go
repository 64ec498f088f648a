package ingest

import (
	"testing"
)

func sampleTable() *Table {
	return &Table{
		Headers: []string{"product_id", "week_id", "demand"},
		Rows: []Row{
			{"product_id": NewStringValue("product_1"), "week_id": NewStringValue("week_1"), "demand": NewIntegerValue(10)},
			{"product_id": NewStringValue("product_2"), "week_id": NewStringValue("week_1"), "demand": NewFloatValue(5.5)},
		},
	}
}

func TestHasColumnIsCaseSensitive(t *testing.T) {
	tbl := &Table{Headers: []string{"machine_Id", "week_id"}}

	if !tbl.HasColumn("machine_Id") {
		t.Error("expected exact header to be found")
	}
	if tbl.HasColumn("machine_id") {
		t.Error("header matching must be case-sensitive")
	}
	if tbl.HasColumn("") {
		t.Error("empty name must not match")
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := sampleTable().Fingerprint()
	b := sampleTable().Fingerprint()
	if !a.Equals(b) {
		t.Errorf("fingerprints of identical tables differ: %s vs %s", a.Short(), b.Short())
	}
}

func TestFingerprintSensitiveToCells(t *testing.T) {
	base := sampleTable().Fingerprint()

	changed := sampleTable()
	changed.Rows[1]["demand"] = NewFloatValue(6.5)
	if base.Equals(changed.Fingerprint()) {
		t.Error("changing a cell must change the fingerprint")
	}

	reordered := sampleTable()
	reordered.Rows[0], reordered.Rows[1] = reordered.Rows[1], reordered.Rows[0]
	if base.Equals(reordered.Fingerprint()) {
		t.Error("row order is part of the fingerprint")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want SourceFormat
	}{
		{"input/demand.csv", FormatCSV},
		{"input/demand.CSV", FormatCSV},
		{"input/capacity.xlsx", FormatXLSX},
		{"input/capacity.XLSX", FormatXLSX},
		{"input/notes.txt", FormatUnknown},
		{"input/demand", FormatUnknown},
		{"input/legacy.xls", FormatUnknown},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
