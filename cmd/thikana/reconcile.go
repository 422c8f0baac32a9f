package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rasel530/thikana"
)

// reconcileResult is the JSON shape of a reconcile run: the resolved
// selection, its normalized persisted form, and the per-field report.
type reconcileResult struct {
	Selection thikana.Selection       `json:"selection"`
	Record    thikana.Record          `json:"record"`
	Report    thikana.ReconcileReport `json:"report"`
}

func reconcileCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "reconcile [division] [district] [upazila]",
		Short: "Resolve a persisted address triple against the hierarchy",
		Long: `Reconcile takes the three fields of a persisted address record (the
division by uppercase English name, the district and upazila by id)
and resolves them into a consistent selection. Fields that are unknown
or no longer belong under their parent are dropped and reported; pass
"" for fields the record never filled in.

Examples:
  thikana reconcile DHAKA 301 30102
  thikana reconcile dhaka 301 ""
  thikana reconcile CHITTAGONG 301 30102   # cross-division district, dropped`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGazetteer()
			if err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}

			sel, report := g.Reconcile(thikana.Record{
				Division: args[0],
				District: args[1],
				Upazila:  args[2],
			})

			if asJSON {
				return printJSON(reconcileResult{
					Selection: sel,
					Record:    g.ToRecord(sel),
					Report:    report,
				})
			}

			printOutcome("division", report.Division)
			printOutcome("district", report.District)
			printOutcome("upazila", report.Upazila)
			if report.Clean() {
				fmt.Println("Record is consistent.")
			} else {
				fmt.Println("Record needs re-entry for the dropped fields.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func printOutcome(field string, out thikana.FieldOutcome) {
	switch {
	case out.Input == "":
		fmt.Printf("%-9s (empty)\n", field)
	case out.Dropped:
		fmt.Printf("%-9s %q dropped: %s", field, out.Input, out.Reason)
		if out.Suggestion != "" {
			fmt.Printf(" (did you mean %s?)", out.Suggestion)
		}
		fmt.Println()
	default:
		fmt.Printf("%-9s %q -> %s\n", field, out.Input, out.Resolved)
	}
}
