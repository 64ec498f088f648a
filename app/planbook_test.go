package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planfeed/domain/core"
	"planfeed/internal/fixtures"
)

func planbookPathsIn(dir, ext string) PlanbookPaths {
	return PlanbookPaths{
		Demand:      filepath.Join(dir, fixtures.DemandFile+"."+ext),
		Capacity:    filepath.Join(dir, fixtures.CapacityFile+"."+ext),
		Transitions: filepath.Join(dir, fixtures.TransitionsFile+"."+ext),
		Downtime:    filepath.Join(dir, fixtures.DowntimeFile+"."+ext),
	}
}

func TestLoadPlanbookFromGeneratedInputs(t *testing.T) {
	dir := t.TempDir()
	cfg := fixtures.Config{Products: 4, Machines: 3, Weeks: 5, Seed: 11}
	_, err := fixtures.WritePlanningInputs(dir, "xlsx", cfg)
	require.NoError(t, err)

	pb, err := LoadPlanbook(newTestReader(), planbookPathsIn(dir, "xlsx"))
	require.NoError(t, err)

	assert.Len(t, pb.Demand.DemandData, cfg.Products)
	assert.Len(t, pb.Capacity.CapacityData, cfg.Machines)
	assert.Len(t, pb.Transtime.TranstimeData, cfg.Machines)
	assert.NotEmpty(t, pb.Downtime.DowntimeData)

	for _, product := range pb.Demand.DemandData {
		assert.Len(t, product, cfg.Weeks)
	}
	for _, machine := range pb.Transtime.TranstimeData {
		assert.Len(t, machine, cfg.Products*(cfg.Products-1))
	}

	receipts := pb.Receipts()
	require.Len(t, receipts, 4)
	for _, r := range receipts {
		assert.False(t, core.ID(r.LoadID).IsEmpty())
		assert.False(t, r.Fingerprint.IsEmpty())
		assert.Greater(t, r.Rows, 0)
	}
}

func TestLoadPlanbookCSVAndXLSXAgree(t *testing.T) {
	dir := t.TempDir()
	cfg := fixtures.Config{Products: 3, Machines: 2, Weeks: 4, Seed: 5}
	_, err := fixtures.WritePlanningInputs(dir, "csv", cfg)
	require.NoError(t, err)
	_, err = fixtures.WritePlanningInputs(dir, "xlsx", cfg)
	require.NoError(t, err)

	fromCSV, err := LoadPlanbook(newTestReader(), planbookPathsIn(dir, "csv"))
	require.NoError(t, err)
	fromXLSX, err := LoadPlanbook(newTestReader(), planbookPathsIn(dir, "xlsx"))
	require.NoError(t, err)

	assert.Equal(t, fromCSV.Demand.DemandData, fromXLSX.Demand.DemandData)
	assert.Equal(t, fromCSV.Capacity.CapacityData, fromXLSX.Capacity.CapacityData)
	assert.Equal(t, fromCSV.Transtime.TranstimeData, fromXLSX.Transtime.TranstimeData)
	assert.Equal(t, fromCSV.Downtime.DowntimeData, fromXLSX.Downtime.DowntimeData)
}

func TestLoadPlanbookFailsWhenAnyInputMissing(t *testing.T) {
	dir := t.TempDir()
	cfg := fixtures.Config{Products: 2, Machines: 2, Weeks: 2, Seed: 3}
	_, err := fixtures.WritePlanningInputs(dir, "xlsx", cfg)
	require.NoError(t, err)

	paths := planbookPathsIn(dir, "xlsx")
	paths.Downtime = filepath.Join(dir, "not_there.xlsx")

	pb, err := LoadPlanbook(newTestReader(), paths)
	require.Error(t, err)
	assert.Nil(t, pb)
	assert.True(t, core.IsValidationError(err))
}
