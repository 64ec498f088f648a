package tabular

import (
	"encoding/csv"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"planfeed/domain/core"
	"planfeed/domain/ingest"

	"github.com/xuri/excelize/v2"
)

// Reader parses CSV and Excel files into tables
type Reader struct {
	cfg Config
}

// NewReader creates a reader that handles both Excel and CSV files
func NewReader(cfg Config) *Reader {
	return &Reader{cfg: cfg}
}

// ReadTable reads a validated input file into a table, dispatching on
// the file extension: .csv goes through the CSV parser, everything else
// through the spreadsheet parser.
func (r *Reader) ReadTable(path ingest.ValidatedPath) (*ingest.Table, error) {
	format := path.Format()
	log.Printf("[TabularReader] Starting to read %s file: %s", format, path)

	switch format {
	case ingest.FormatCSV:
		return r.readCSV(path)
	default:
		return r.readXLSX(path)
	}
}

// readXLSX reads spreadsheet rows from the configured sheet
func (r *Reader) readXLSX(path ingest.ValidatedPath) (*ingest.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(path.String())
	if err != nil {
		return nil, core.NewParseError(path.String(), err)
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[TabularReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	sheet := r.cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, core.NewParseError(path.String(), errors.New("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, core.NewParseError(path.String(), err)
	}
	readTime := time.Since(readStart)
	log.Printf("[TabularReader] Sheet %s read in %.2fms (%d rows)", sheet, float64(readTime.Nanoseconds())/1e6, len(rows))

	return r.processRows(path, rows)
}

// readCSV reads delimited rows; ragged rows are allowed and padded later
func (r *Reader) readCSV(path ingest.ValidatedPath) (*ingest.Table, error) {
	file, err := os.Open(path.String())
	if err != nil {
		return nil, core.NewParseError(path.String(), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError(path.String(), err)
	}
	readTime := time.Since(readStart)
	log.Printf("[TabularReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	return r.processRows(path, rows)
}

// processRows converts raw string rows into a typed table. The first
// row supplies the headers; a file without one is unreadable. A file
// with only a header row yields an empty table.
func (r *Reader) processRows(path ingest.ValidatedPath, rows [][]string) (*ingest.Table, error) {
	if len(rows) == 0 {
		return nil, core.NewParseError(path.String(), errors.New("no header row"))
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []ingest.Row
	for i := 1; i < len(rows); i++ {
		raw := rows[i]
		rowData := make(ingest.Row, len(headers))

		for j, header := range headers {
			if j < len(raw) {
				rowData[header] = coerceCell(raw[j])
			} else {
				rowData[header] = ingest.NewMissingValue()
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[TabularReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(string(path.Format())), len(headers), len(dataRows))

	return &ingest.Table{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
