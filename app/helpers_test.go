package app

import (
	"os"
	"path/filepath"
	"testing"

	"planfeed/adapters/tabular"
	"planfeed/internal/fixtures"
	"planfeed/ports"
)

func newTestReader() ports.TableReader {
	return tabular.NewReader(tabular.DefaultConfig())
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func writeXLSX(t *testing.T, dir, name string, headers []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	ds := &fixtures.Dataset{Headers: headers, Rows: rows}
	if err := fixtures.WriteXLSX(path, ds); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}
