package tabular

// Config holds configuration for the tabular reader
type Config struct {
	// Sheet names the worksheet to read from spreadsheet files.
	// Empty selects the workbook's first sheet.
	Sheet string `json:"sheet"`
}

// DefaultConfig returns sensible defaults for tabular reading
func DefaultConfig() Config {
	return Config{}
}
