package container

import (
	"fmt"
	"log"

	"planfeed/adapters/tabular"
	"planfeed/app"
	"planfeed/internal/config"
	"planfeed/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	Reader ports.TableReader
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{
		Config: cfg,
	}

	if err := c.initReader(); err != nil {
		return nil, fmt.Errorf("failed to initialize table reader: %w", err)
	}

	return c, nil
}

// initReader wires the tabular file reader behind the ports interface
func (c *Container) initReader() error {
	readerCfg := tabular.DefaultConfig()
	readerCfg.Sheet = c.Config.Reader.Sheet

	c.Reader = tabular.NewReader(readerCfg)
	log.Printf("Container initialized table reader (sheet=%q)", readerCfg.Sheet)
	return nil
}

// PlanbookPaths resolves the configured input files into loader paths
func (c *Container) PlanbookPaths() app.PlanbookPaths {
	return app.PlanbookPaths{
		Demand:      c.Config.Inputs.DemandPath(),
		Capacity:    c.Config.Inputs.CapacityPath(),
		Transitions: c.Config.Inputs.TransitionsPath(),
		Downtime:    c.Config.Inputs.DowntimePath(),
	}
}

// LoadPlanbook loads all four planning inputs using the wired reader
func (c *Container) LoadPlanbook() (*app.Planbook, error) {
	return app.LoadPlanbook(c.Reader, c.PlanbookPaths())
}
