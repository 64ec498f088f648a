package main

import (
	"fmt"
	"log"

	"planfeed/domain/plan"
	"planfeed/internal/config"
	"planfeed/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create dependency injection container
	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	pb, err := appContainer.LoadPlanbook()
	if err != nil {
		log.Fatalf("Failed to load planning inputs: %v", err)
	}

	fmt.Printf("Loaded planning inputs from %s\n", appConfig.Inputs.Dir)
	for _, r := range pb.Receipts() {
		fmt.Printf("  %-40s %6d rows  %s\n", r.Source, r.Rows, r.Fingerprint.Short())
	}

	// Missing keys fall back to zero values, so lookups never panic.
	fmt.Printf("\nDemand product_100/week_29: %v\n",
		pb.Demand.DemandData["product_100"]["week_29"])
	fmt.Printf("Capacity machine_1/product_1: %v\n",
		pb.Capacity.CapacityData["machine_1"]["product_1"])
	fmt.Printf("Transition machine_1 product_1->product_2: %v days\n",
		pb.Transtime.TranstimeData["machine_1"][plan.TransitionKey{From: "product_1", To: "product_2"}])
	fmt.Printf("Machines down in week_1: %v\n",
		pb.Downtime.DowntimeData["week_1"].Machines())
}
