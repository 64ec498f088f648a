package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"planfeed/domain/core"
	"planfeed/domain/ingest"
)

func writeFile(t *testing.T, dir, name, content string) ingest.ValidatedPath {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return ingest.ValidatedPath(path)
}

func TestReadTableCSVCoercion(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cells.csv",
		"s,i,f,e,blank,nan,inf,neg\n"+
			"hello,42,2.5,1e3,,NaN,+Inf,-7\n")

	table, err := NewReader(DefaultConfig()).ReadTable(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, ingest.NewStringValue("hello"), row["s"])
	assert.Equal(t, ingest.NewIntegerValue(42), row["i"])
	assert.Equal(t, ingest.NewFloatValue(2.5), row["f"])
	assert.Equal(t, ingest.NewFloatValue(1000), row["e"])
	assert.Equal(t, ingest.NewMissingValue(), row["blank"])
	assert.Equal(t, ingest.NewStringValue("NaN"), row["nan"])
	assert.Equal(t, ingest.NewStringValue("+Inf"), row["inf"])
	assert.Equal(t, ingest.NewIntegerValue(-7), row["neg"])
}

func TestReadTablePadsAndDropsRaggedRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ragged.csv",
		"a,b,c\n"+
			"1,2\n"+
			"1,2,3,4\n")

	table, err := NewReader(DefaultConfig()).ReadTable(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, ingest.NewMissingValue(), table.Rows[0]["c"])
	assert.Equal(t, ingest.NewIntegerValue(3), table.Rows[1]["c"])
	assert.Len(t, table.Rows[1], 3)
}

func TestReadTableTrimsHeaders(t *testing.T) {
	path := writeFile(t, t.TempDir(), "padded.csv",
		"a , b\n"+
			"1,2\n")

	table, err := NewReader(DefaultConfig()).ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.Headers)
	assert.True(t, table.HasColumn("b"))
}

func TestReadTableHeaderOnly(t *testing.T) {
	path := writeFile(t, t.TempDir(), "header.csv", "a,b,c\n")

	table, err := NewReader(DefaultConfig()).ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestReadTableEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", "")

	table, err := NewReader(DefaultConfig()).ReadTable(path)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, core.IsParseError(err))
}

func TestReadTableXLSXSheetSelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "id"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "qty"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "p1"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 3))
	require.NoError(t, f.SaveAs(path))

	table, err := NewReader(DefaultConfig()).ReadTable(ingest.ValidatedPath(path))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, ingest.NewStringValue("p1"), table.Rows[0]["id"])
	assert.Equal(t, ingest.NewIntegerValue(3), table.Rows[0]["qty"])

	_, err = NewReader(Config{Sheet: "Missing"}).ReadTable(ingest.ValidatedPath(path))
	require.Error(t, err)
	assert.True(t, core.IsParseError(err))
}
