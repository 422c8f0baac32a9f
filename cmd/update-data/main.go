// Command update-data verifies a reference data directory and rewrites it
// in canonical form: records one per line, in dataset order.
//
// Usage:
//
//	go run ./cmd/update-data [dir]
//
// The directory defaults to ./data. Files are verified before anything is
// written; a directory that fails verification is left untouched.
package main

import (
	"fmt"
	"os"

	"github.com/rasel530/thikana"
)

func main() {
	dir := "./data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Printf("Verifying reference data in %s...\n", dir)

	g, err := thikana.New(thikana.WithDataDir(dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := g.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := g.ExportData(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d divisions, %d districts and %d upazilas.\n",
		g.DivisionCount(), g.DistrictCount(), g.UpazilaCount())
}
