// Package fixtures generates deterministic synthetic planning inputs:
// demand, capacity, transition-time and scheduled-downtime tables in the
// column layout the loaders expect. Used by tests and the plangen command.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"planfeed/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Dataset is one generated table: headers plus already-formatted rows.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

type Config struct {
	Products int
	Machines int
	Weeks    int
	Seed     int64
}

func DefaultConfig() Config {
	return Config{
		Products: 20,
		Machines: 6,
		Weeks:    12,
		Seed:     42,
	}
}

func validate(cfg Config) error {
	if cfg.Products <= 0 {
		return errors.InvalidInput("products must be > 0")
	}
	if cfg.Machines <= 0 {
		return errors.InvalidInput("machines must be > 0")
	}
	if cfg.Weeks <= 0 {
		return errors.InvalidInput("weeks must be > 0")
	}
	return nil
}

// GenerateDemand produces one demand row per product and week.
func GenerateDemand(cfg Config) (*Dataset, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([][]string, 0, cfg.Products*cfg.Weeks)
	for p := 1; p <= cfg.Products; p++ {
		for w := 1; w <= cfg.Weeks; w++ {
			qty := 10 + rng.Float64()*190
			rows = append(rows, []string{
				fmt.Sprintf("product_%d", p),
				fmt.Sprintf("week_%d", w),
				fToStr(qty, 2),
			})
		}
	}

	return &Dataset{
		Headers: []string{"product_id", "week_id", "demand"},
		Rows:    rows,
	}, nil
}

// GenerateCapacity produces one weekly-capacity row per machine and product.
func GenerateCapacity(cfg Config) (*Dataset, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([][]string, 0, cfg.Machines*cfg.Products)
	for m := 1; m <= cfg.Machines; m++ {
		for p := 1; p <= cfg.Products; p++ {
			weekCap := 50 + rng.Float64()*450
			rows = append(rows, []string{
				fmt.Sprintf("machine_%d", m),
				fmt.Sprintf("product_%d", p),
				fToStr(weekCap, 2),
			})
		}
	}

	return &Dataset{
		Headers: []string{"machine_id", "product_id", "week_cap"},
		Rows:    rows,
	}, nil
}

// GenerateTransitions produces changeover times for every ordered product
// pair on every machine. The header spells machine_Id the way real input
// files do.
func GenerateTransitions(cfg Config) (*Dataset, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([][]string, 0, cfg.Machines*cfg.Products*(cfg.Products-1))
	for m := 1; m <= cfg.Machines; m++ {
		for from := 1; from <= cfg.Products; from++ {
			for to := 1; to <= cfg.Products; to++ {
				if from == to {
					continue
				}
				days := 0.25 + rng.Float64()*2.75
				rows = append(rows, []string{
					fmt.Sprintf("machine_%d", m),
					fmt.Sprintf("product_%d", from),
					fmt.Sprintf("product_%d", to),
					fToStr(days, 2),
				})
			}
		}
	}

	return &Dataset{
		Headers: []string{"machine_Id", "from", "to", "trans_time_days"},
		Rows:    rows,
	}, nil
}

// GenerateDowntime produces scheduled-downtime rows, including occasional
// duplicates of the same machine and week so set absorption gets exercised.
func GenerateDowntime(cfg Config) (*Dataset, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var rows [][]string
	for w := 1; w <= cfg.Weeks; w++ {
		for m := 1; m <= cfg.Machines; m++ {
			if rng.Float64() >= 0.2 {
				continue
			}
			row := []string{
				fmt.Sprintf("machine_%d", m),
				fmt.Sprintf("week_%d", w),
			}
			rows = append(rows, row)
			if rng.Float64() < 0.15 {
				rows = append(rows, row)
			}
		}
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"machine_1", "week_1"})
	}

	return &Dataset{
		Headers: []string{"machine_Id", "week_id"},
		Rows:    rows,
	}, nil
}

// File names the loaders conventionally read from the input directory.
const (
	DemandFile      = "demand"
	CapacityFile    = "capacity"
	TransitionsFile = "transition_times"
	DowntimeFile    = "scheduled_downtime"
)

// WritePlanningInputs generates all four tables and writes them into dir
// as either "csv" or "xlsx" files, returning the written paths.
func WritePlanningInputs(dir, format string, cfg Config) ([]string, error) {
	if format != "csv" && format != "xlsx" {
		return nil, errors.InvalidInput(fmt.Sprintf("format must be csv or xlsx, got %q", format))
	}

	generators := []struct {
		name string
		gen  func(Config) (*Dataset, error)
	}{
		{DemandFile, GenerateDemand},
		{CapacityFile, GenerateCapacity},
		{TransitionsFile, GenerateTransitions},
		{DowntimeFile, GenerateDowntime},
	}

	paths := make([]string, 0, len(generators))
	for _, g := range generators {
		ds, err := g.gen(cfg)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, g.name+"."+format)
		if format == "csv" {
			err = WriteCSV(path, ds)
		} else {
			err = WriteXLSX(path, ds)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "writing %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func WriteCSV(path string, ds *Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteXLSX(path string, ds *Dataset) error {
	f := excelize.NewFile()

	// Ensure Sheet1 exists and is active.
	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	// Header row
	for i, h := range ds.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	// Data rows
	for r := 0; r < len(ds.Rows); r++ {
		rowIdx := r + 2
		for c, v := range ds.Rows[r] {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return err
	}
	return nil
}

func fToStr(x float64, decimals int) string {
	p := math.Pow10(decimals)
	x = math.Round(x*p) / p
	return strconv.FormatFloat(x, 'f', decimals, 64)
}
