package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"planfeed/internal/fixtures"
)

func main() {
	out := flag.String("out", "input", "output directory for the generated files")
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	products := flag.Int("products", 20, "number of products")
	machines := flag.Int("machines", 6, "number of machines")
	weeks := flag.Int("weeks", 12, "number of weeks")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	flag.Parse()

	if *products <= 0 || *machines <= 0 || *weeks <= 0 {
		fmt.Fprintln(os.Stderr, "products, machines and weeks must be > 0")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName != "csv" && fmtName != "xlsx" {
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}

	cfg := fixtures.Config{
		Products: *products,
		Machines: *machines,
		Weeks:    *weeks,
		Seed:     *seed,
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "error creating output directory:", err)
		os.Exit(1)
	}

	paths, err := fixtures.WritePlanningInputs(*out, fmtName, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error generating planning inputs:", err)
		os.Exit(1)
	}

	fmt.Printf("Planning inputs created in %s:\n", *out)
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Printf("Products: %d | Machines: %d | Weeks: %d | Seed: %d\n",
		cfg.Products, cfg.Machines, cfg.Weeks, cfg.Seed)
}
