package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-chi/httplog"
	"github.com/marcelsud/callback-inbox/callback/postgres"
	"github.com/marcelsud/callback-inbox/config"
	"github.com/marcelsud/callback-inbox/seed"
)

/* seed - provisions applications, receivers and forward targets from a YAML file
 * Usage: go run cmd/seed/main.go [seed.yaml]
 * Safe to run repeatedly; see seed.Apply
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	seedFile := cfg.SeedFile
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}
	if seedFile == "" {
		fmt.Println("Usage: seed <seed.yaml> (or set SEED_FILE)")
		os.Exit(1)
	}

	logger := httplog.NewLogger("callback-inbox-seed", httplog.Options{
		JSON:     true,
		LogLevel: cfg.LogLevel,
	})

	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		fmt.Printf("Error loading seed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	repo, err := postgres.NewRepository(cfg.DatabaseURL)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(ctx)

	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	sum, err := loader.Apply(ctx, repo, logger)
	if err != nil {
		fmt.Printf("Error applying seed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Applications created: %d\n", sum.ApplicationsCreated)
	fmt.Printf("Receivers created:    %d\n", sum.ReceiversCreated)
	fmt.Printf("Receivers updated:    %d\n", sum.ReceiversUpdated)
	fmt.Printf("Targets created:      %d\n", sum.TargetsCreated)
	fmt.Printf("Targets updated:      %d\n", sum.TargetsUpdated)
}
