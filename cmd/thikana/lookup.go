package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rasel530/thikana"
)

// lookupResult is the JSON shape of a resolved name at any level.
type lookupResult struct {
	Level      string `json:"level"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	BnName     string `json:"bn_name"`
	DivisionID string `json:"division_id,omitempty"`
	DistrictID string `json:"district_id,omitempty"`
	Geohash    string `json:"geohash,omitempty"`
}

func lookupCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup [name]",
		Short: "Resolve a division, district or upazila by its English name",
		Long: `Lookup resolves an English name case-insensitively, trying divisions
first, then districts, then upazilas. Several districts and upazilas
share a name; the first record in dataset order wins.

Examples:
  thikana lookup DHAKA
  thikana lookup "Cox's Bazar"
  thikana lookup dohar --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGazetteer()
			if err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}

			res, ok := resolveName(g, args[0])
			if !ok {
				if d, ok := g.SuggestDivision(args[0]); ok {
					return fmt.Errorf("no match for %q (did you mean %s?)", args[0], d.Name)
				}
				if d, ok := g.SuggestDistrict(args[0], ""); ok {
					return fmt.Errorf("no match for %q (did you mean %s?)", args[0], d.Name)
				}
				return fmt.Errorf("no match for %q", args[0])
			}

			if asJSON {
				return printJSON(res)
			}
			fmt.Printf("%s %s\n", res.Level, res.ID)
			fmt.Printf("  name:    %s (%s)\n", res.Name, res.BnName)
			if res.DivisionID != "" {
				fmt.Printf("  division: %s\n", res.DivisionID)
			}
			if res.DistrictID != "" {
				fmt.Printf("  district: %s\n", res.DistrictID)
			}
			if res.Geohash != "" {
				fmt.Printf("  geohash:  %s\n", res.Geohash)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func resolveName(g *thikana.Gazetteer, name string) (lookupResult, bool) {
	if id, ok := g.DivisionIDByName(name); ok {
		d, _ := g.DivisionByID(id)
		return lookupResult{
			Level: "division", ID: d.ID, Name: d.Name, BnName: d.BnName,
			Geohash: d.Geohash(),
		}, true
	}
	if id, ok := g.DistrictIDByName(name); ok {
		d, _ := g.DistrictByID(id)
		return lookupResult{
			Level: "district", ID: d.ID, Name: d.Name, BnName: d.BnName,
			DivisionID: d.DivisionID, Geohash: d.Geohash(),
		}, true
	}
	if id, ok := g.UpazilaIDByName(name); ok {
		u, _ := g.UpazilaByID(id)
		return lookupResult{
			Level: "upazila", ID: u.ID, Name: u.Name, BnName: u.BnName,
			DistrictID: u.DistrictID,
		}, true
	}
	return lookupResult{}, false
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
