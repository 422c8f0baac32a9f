package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the reference data for integrity problems",
		Long: `Verify loads the reference data (embedded, or from --data-dir) and runs
the integrity checks: level counts, id uniqueness, the uppercase
division-name contract, orphaned parent references and known-value spot
checks. Run it against a data directory before shipping a dataset update.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGazetteer()
			if err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}

			fmt.Printf("Divisions: %d\n", g.DivisionCount())
			fmt.Printf("Districts: %d\n", g.DistrictCount())
			fmt.Printf("Upazilas:  %d\n", g.UpazilaCount())

			if err := g.Verify(); err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			fmt.Println("Reference data OK.")
			return nil
		},
	}
}
