package config

import (
	"os"
	"path/filepath"
	"strings"

	"planfeed/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Inputs InputConfig
	Reader ReaderConfig
}

// InputConfig holds the input directory and per-entity file names.
// Defaults match the conventional layout: an input/ directory next to
// the binary holding one spreadsheet per entity.
type InputConfig struct {
	Dir             string
	DemandFile      string
	CapacityFile    string
	TransitionsFile string
	DowntimeFile    string
}

// ReaderConfig holds tabular parsing settings
type ReaderConfig struct {
	// Sheet picks the worksheet for spreadsheet inputs; empty means the
	// workbook's first sheet.
	Sheet string
}

// DemandPath returns the full path of the demand input file
func (c InputConfig) DemandPath() string {
	return filepath.Join(c.Dir, c.DemandFile)
}

// CapacityPath returns the full path of the capacity input file
func (c InputConfig) CapacityPath() string {
	return filepath.Join(c.Dir, c.CapacityFile)
}

// TransitionsPath returns the full path of the transition-times input file
func (c InputConfig) TransitionsPath() string {
	return filepath.Join(c.Dir, c.TransitionsFile)
}

// DowntimePath returns the full path of the scheduled-downtime input file
func (c InputConfig) DowntimePath() string {
	return filepath.Join(c.Dir, c.DowntimeFile)
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Inputs: InputConfig{
			Dir:             getEnvOrDefault("PLANFEED_INPUT_DIR", "input"),
			DemandFile:      getEnvOrDefault("PLANFEED_DEMAND_FILE", "demand.xlsx"),
			CapacityFile:    getEnvOrDefault("PLANFEED_CAPACITY_FILE", "capacity.xlsx"),
			TransitionsFile: getEnvOrDefault("PLANFEED_TRANSITIONS_FILE", "transition_times.xlsx"),
			DowntimeFile:    getEnvOrDefault("PLANFEED_DOWNTIME_FILE", "scheduled_downtime.xlsx"),
		},
		Reader: ReaderConfig{
			Sheet: getEnvOrDefault("PLANFEED_SHEET", ""),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Inputs.Dir) == "" {
		return errors.ConfigInvalid("input directory is required")
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"PLANFEED_DEMAND_FILE", config.Inputs.DemandFile},
		{"PLANFEED_CAPACITY_FILE", config.Inputs.CapacityFile},
		{"PLANFEED_TRANSITIONS_FILE", config.Inputs.TransitionsFile},
		{"PLANFEED_DOWNTIME_FILE", config.Inputs.DowntimeFile},
	} {
		if strings.TrimSpace(f.value) == "" {
			return errors.ConfigInvalid(f.name + " must not be blank")
		}
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
