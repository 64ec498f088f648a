package app

import (
	"golang.org/x/sync/errgroup"

	"planfeed/domain/plan"
	"planfeed/internal"
	"planfeed/ports"
)

// PlanbookPaths names the four input files of one scheduling horizon
type PlanbookPaths struct {
	Demand      string
	Capacity    string
	Transitions string
	Downtime    string
}

// Planbook bundles the four loaded tables of one scheduling horizon
type Planbook struct {
	Demand    *DemandLoader
	Capacity  *CapacityLoader
	Transtime *TranstimeLoader
	Downtime  *DowntimeLoader
}

// LoadPlanbook constructs the four loaders concurrently. Each loader is
// single-threaded and they share no state, so the only coordination is
// collecting the first failure.
func LoadPlanbook(reader ports.TableReader, paths PlanbookPaths) (*Planbook, error) {
	pb := &Planbook{}
	var g errgroup.Group

	g.Go(func() error {
		loader, err := NewDemandLoader(reader, paths.Demand)
		if err != nil {
			return err
		}
		pb.Demand = loader
		return nil
	})
	g.Go(func() error {
		loader, err := NewCapacityLoader(reader, paths.Capacity)
		if err != nil {
			return err
		}
		pb.Capacity = loader
		return nil
	})
	g.Go(func() error {
		loader, err := NewTranstimeLoader(reader, paths.Transitions)
		if err != nil {
			return err
		}
		pb.Transtime = loader
		return nil
	})
	g.Go(func() error {
		loader, err := NewDowntimeLoader(reader, paths.Downtime)
		if err != nil {
			return err
		}
		pb.Downtime = loader
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	internal.DefaultLogger.Info("Planbook loaded: %d products, %d capacity machines, %d transition machines, %d downtime weeks",
		len(pb.Demand.DemandData), len(pb.Capacity.CapacityData), len(pb.Transtime.TranstimeData), len(pb.Downtime.DowntimeData))

	return pb, nil
}

// Receipts returns the four load snapshots in a stable order
func (pb *Planbook) Receipts() []plan.LoadSnapshot {
	return []plan.LoadSnapshot{
		pb.Demand.Snapshot,
		pb.Capacity.Snapshot,
		pb.Transtime.Snapshot,
		pb.Downtime.Snapshot,
	}
}
