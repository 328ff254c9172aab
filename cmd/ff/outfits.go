package main

import (
	"github.com/fitfast/fitfast/internal/outfit"
	"github.com/spf13/cobra"
)

var (
	outfitsCount        int
	outfitsMaxPrice     float64
	outfitsMeasurements []string
)

func init() {
	rootCmd.AddCommand(outfitsCmd)

	outfitsCmd.Flags().IntVarP(&outfitsCount, "count", "n", DefaultOutfitCount, "Maximum number of outfits")
	outfitsCmd.Flags().Float64Var(&outfitsMaxPrice, "max-price", 0, "Price ceiling per outfit (0 = none)")
	outfitsCmd.Flags().StringSliceVarP(&outfitsMeasurements, "measurements", "m", nil, "User measurements for size recommendations")
}

// OutfitsResponse is the response for the outfits command.
type OutfitsResponse struct {
	Outfits []*outfit.Outfit `json:"outfits"`
	Total   int              `json:"total"`
}

var outfitsCmd = &cobra.Command{
	Use:   "outfits <item-id>",
	Short: "Generate outfits across themes for a starting item",
	Long: `Generate one outfit per theme around a starting item, best first.

Themes are tried in their standard order and the resulting outfits are
sorted by compatibility score. Themes that produce only the starting
item are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutfits,
}

func runOutfits(cmd *cobra.Command, args []string) error {
	itemID := args[0]
	root := mustFindRepository()

	user, err := parseMeasurementsFlag(outfitsMeasurements)
	if err != nil {
		exitWithError(ExitDataError, "parsing measurements: %v", err)
	}

	eng := mustLoadEngine(root)
	outfits := eng.GenerateOutfits(itemID, user, outfitsCount, outfitsMaxPrice)

	if humanOutput {
		for i, o := range outfits {
			outputHuman("%d. %s: %d items, compatibility %.0f, total $%.2f\n", i+1,
				o.Theme, o.ItemCount, o.CompatibilityScore, o.TotalPrice)
		}
		if len(outfits) == 0 {
			outputHuman("No outfits could be generated for '%s'.\n", itemID)
		}
	} else {
		outputJSON(OutfitsResponse{
			Outfits: outfits,
			Total:   len(outfits),
		})
	}

	return nil
}
