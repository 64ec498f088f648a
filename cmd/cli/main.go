package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"planfeed/app"
	"planfeed/internal/config"
	"planfeed/internal/container"
	"planfeed/internal/profiling"
	"planfeed/internal/report"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:   "planfeed-cli",
		Short: "Planfeed CLI for loading and inspecting planning inputs",
	}

	rootCmd.AddCommand(
		newLoadCmd(),
		newProfileCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLoadCmd() *cobra.Command {
	var inputDir string
	var sheet string
	var jsonOut string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load all four planning inputs and print load receipts",
		Long: `Load demand, capacity, transition times and scheduled downtime from the
configured input directory, validating every file and printing one receipt
per table.

Example: planfeed-cli load --input-dir testdata --json receipts.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(inputDir, sheet, jsonOut)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding the input files (overrides PLANFEED_INPUT_DIR)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx inputs (overrides PLANFEED_SHEET)")
	cmd.Flags().StringVar(&jsonOut, "json", "", "Write load receipts as JSON to this file")

	return cmd
}

func newProfileCmd() *cobra.Command {
	var inputDir string
	var sheet string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Summarize the numeric distributions of the loaded tables",
		Long: `Load the planning inputs and print distribution statistics for each
numeric series: demand quantities, weekly capacities and changeover days.

Example: planfeed-cli profile --input-dir testdata`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(inputDir, sheet)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding the input files (overrides PLANFEED_INPUT_DIR)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx inputs (overrides PLANFEED_SHEET)")

	return cmd
}

func newReportCmd() *cobra.Command {
	var inputDir string
	var sheet string
	var outFile string
	var htmlOut bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown load report, optionally rendered to HTML",
		Long: `Load the planning inputs and write a markdown report with load receipts
and distribution summaries. With --html a complete HTML page is written
next to the markdown file.

Example: planfeed-cli report --input-dir testdata --out report.md --html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(inputDir, sheet, outFile, htmlOut)
		},
	}

	cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding the input files (overrides PLANFEED_INPUT_DIR)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for xlsx inputs (overrides PLANFEED_SHEET)")
	cmd.Flags().StringVar(&outFile, "out", "report.md", "Markdown output file")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "Also render a complete HTML page")

	return cmd
}

// loadPlanbook builds the container from env configuration, applies any
// flag overrides, and loads all four inputs.
func loadPlanbook(inputDir, sheet string) (*app.Planbook, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if inputDir != "" {
		cfg.Inputs.Dir = inputDir
	}
	if sheet != "" {
		cfg.Reader.Sheet = sheet
	}

	c, err := container.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create application container: %w", err)
	}

	return c.LoadPlanbook()
}

func runLoad(inputDir, sheet, jsonOut string) error {
	pb, err := loadPlanbook(inputDir, sheet)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== LOAD RECEIPTS ===\n")
	for i, r := range pb.Receipts() {
		fmt.Printf("%d. %s\n", i+1, r.Source)
		fmt.Printf("   Load ID: %s\n", r.LoadID)
		fmt.Printf("   Format: %s | Rows: %d | Duration: %d ms\n", r.Format, r.Rows, r.DurationMs)
		fmt.Printf("   Fingerprint: %s\n", r.Fingerprint.Short())
	}

	fmt.Printf("\n=== TABLE SIZES ===\n")
	fmt.Printf("Demand: %d products, %d distinct weeks\n",
		len(pb.Demand.DemandData), len(pb.Demand.DemandData.Weeks()))
	fmt.Printf("Capacity: %d machines\n", len(pb.Capacity.CapacityData))
	fmt.Printf("Transition times: %d machines\n", len(pb.Transtime.TranstimeData))
	fmt.Printf("Downtime: %d weeks\n", len(pb.Downtime.DowntimeData))

	if jsonOut != "" {
		jsonData, err := json.MarshalIndent(pb.Receipts(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode receipts: %w", err)
		}
		if err := os.WriteFile(jsonOut, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write receipts: %w", err)
		}
		fmt.Printf("\nReceipts saved to: %s\n", jsonOut)
	}

	return nil
}

func runProfile(inputDir, sheet string) error {
	pb, err := loadPlanbook(inputDir, sheet)
	if err != nil {
		return err
	}

	series := []struct {
		name   string
		values []float64
	}{
		{"demand quantity", pb.Demand.DemandData.Quantities()},
		{"weekly capacity", pb.Capacity.CapacityData.Capacities()},
		{"changeover days", pb.Transtime.TranstimeData.Times()},
	}

	for _, s := range series {
		summary, err := profiling.Summarize(s.values)
		if err != nil {
			return fmt.Errorf("profiling %s failed: %w", s.name, err)
		}

		fmt.Printf("\n=== %s ===\n", strings.ToUpper(s.name))
		fmt.Printf("Count: %d | Missing: %d\n", summary.Count, summary.Missing)
		fmt.Printf("Mean: %.3f | Std Dev: %.3f\n", summary.Mean, summary.StdDev)
		fmt.Printf("Min: %.3f | Median: %.3f | Max: %.3f\n", summary.Min, summary.Median, summary.Max)
		fmt.Printf("Q25: %.3f | Q75: %.3f | Outliers: %d\n", summary.Q25, summary.Q75, summary.Outliers)
		fmt.Printf("Normal: %t (p=%.3f)\n", summary.Normal, summary.NormalP)
	}

	entries := 0
	for _, set := range pb.Downtime.DowntimeData {
		entries += len(set)
	}
	fmt.Printf("\n=== SCHEDULED DOWNTIME ===\n")
	fmt.Printf("Weeks: %d | Machine-week entries: %d\n", len(pb.Downtime.DowntimeData), entries)

	return nil
}

func runReport(inputDir, sheet, outFile string, htmlOut bool) error {
	pb, err := loadPlanbook(inputDir, sheet)
	if err != nil {
		return err
	}

	md, err := report.BuildMarkdown(pb)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	if err := os.WriteFile(outFile, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report saved to: %s\n", outFile)

	if htmlOut {
		htmlFile := strings.TrimSuffix(outFile, filepath.Ext(outFile)) + ".html"
		page := report.RenderHTML(md, "Planning Inputs Report")
		if err := os.WriteFile(htmlFile, page, 0644); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		fmt.Printf("HTML report saved to: %s\n", htmlFile)
	}

	return nil
}
