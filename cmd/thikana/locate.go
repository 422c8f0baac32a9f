package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rasel530/thikana"
)

// locateResult is the JSON shape of a coordinate resolution.
type locateResult struct {
	Division thikana.Division `json:"division"`
	District thikana.District `json:"district"`
	Geohash  string           `json:"geohash"`
}

func locateCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "locate [lat] [lng]",
		Short: "Find the district nearest to a coordinate pair",
		Long: `Locate resolves latitude/longitude to the district whose headquarters
is closest, within ~100km. Coordinates outside the country resolve to
nothing.

Example:
  thikana locate 23.8103 90.4125`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid latitude %q: %w", args[0], err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q: %w", args[1], err)
			}

			g, err := newGazetteer()
			if err != nil {
				return fmt.Errorf("loading reference data: %w", err)
			}

			district, ok := g.NearestDistrict(lat, lng)
			if !ok {
				return fmt.Errorf("no district within range of (%v, %v)", lat, lng)
			}
			division, _ := g.DivisionByID(district.DivisionID)

			if asJSON {
				return printJSON(locateResult{
					Division: division,
					District: district,
					Geohash:  district.Geohash(),
				})
			}
			fmt.Printf("district %s %s (%s)\n", district.ID, district.Name, district.BnName)
			fmt.Printf("division %s %s (%s)\n", division.ID, division.Name, division.BnName)
			fmt.Printf("geohash  %s\n", district.Geohash())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
