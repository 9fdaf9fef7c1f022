package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/callback-inbox/seed"
)

/* validate-seed - Standalone CLI tool to validate a seed file without touching the database
 * Usage: go run cmd/validate-seed/main.go [seed.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	seedFile := "seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	fmt.Printf("Validating seed file: %s\n", seedFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := seed.NewLoader()
	if err := loader.Load(seedFile); err != nil {
		fmt.Fprintf(os.Stderr, "VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	apps := loader.Applications()
	fmt.Printf("VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d application(s):\n", len(apps))

	for i, app := range apps {
		fmt.Printf("\n%d. Application: %s\n", i+1, app.Name)
		fmt.Printf("   Callback base: /callback/%s\n", app.RootPath)
		for _, r := range app.Receivers {
			fmt.Printf("   - Receiver %s: /callback/%s/%s\n", r.Name, app.RootPath, r.Path)
			fmt.Printf("     Auto-forward:  %t\n", r.AutoForward)
			if r.Response.Status != 0 {
				fmt.Printf("     Status:        %d\n", r.Response.Status)
			}
			if r.Response.HasBody() {
				fmt.Printf("     Body:          %s\n", string(r.Response.Body))
			}
			for _, t := range r.Targets {
				fmt.Printf("     -> %s %s (enabled: %t)\n", t.Name, t.URL, t.Enabled)
			}
		}
	}

	fmt.Printf("\nSeed file is valid!\n")
}
