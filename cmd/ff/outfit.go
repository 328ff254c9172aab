package main

import (
	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/outfit"
	"github.com/spf13/cobra"
)

var (
	outfitTheme        string
	outfitMaxItems     int
	outfitMaxPrice     float64
	outfitMeasurements []string
	outfitRequireFit   bool
)

func init() {
	rootCmd.AddCommand(outfitCmd)

	outfitCmd.Flags().StringVar(&outfitTheme, "theme", "", "Outfit theme (default from config, else casual_everyday)")
	outfitCmd.Flags().IntVar(&outfitMaxItems, "max-items", 0, "Maximum items in the outfit (default from config, else 4)")
	outfitCmd.Flags().Float64Var(&outfitMaxPrice, "max-price", 0, "Total price ceiling (0 = none)")
	outfitCmd.Flags().StringSliceVarP(&outfitMeasurements, "measurements", "m", nil, "User measurements for size recommendations")
	outfitCmd.Flags().BoolVar(&outfitRequireFit, "require-fit", false, "Only suggest items with a size recommendation")
}

var outfitCmd = &cobra.Command{
	Use:   "outfit <item-id>",
	Short: "Build a themed outfit around a starting item",
	Long: `Build an outfit around a starting catalog item.

The builder fills the theme's remaining category slots greedily,
respecting the price ceiling and formality rules, and reports
compatibility and style coherence scores. With measurements supplied,
each chosen item also carries its best-size recommendation.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutfit,
}

func runOutfit(cmd *cobra.Command, args []string) error {
	itemID := args[0]
	root := mustFindRepository()

	user, err := parseMeasurementsFlag(outfitMeasurements)
	if err != nil {
		exitWithError(ExitDataError, "parsing measurements: %v", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	theme := outfitTheme
	if theme == "" {
		theme = cfg.DefaultTheme
	}
	maxItems := outfitMaxItems
	if maxItems == 0 {
		maxItems = cfg.DefaultMaxItems
	}
	maxPrice := outfitMaxPrice
	if maxPrice == 0 {
		maxPrice = cfg.DefaultBudget
	}

	eng := mustLoadEngine(root)
	built := eng.BuildOutfit(outfit.Request{
		StartingItemID: itemID,
		User:           user,
		Theme:          theme,
		MaxItems:       maxItems,
		MaxPrice:       maxPrice,
		RequireSizeFit: outfitRequireFit,
	})
	if built == nil {
		exitWithError(ExitError, "item '%s' not found in catalog", itemID)
	}

	if humanOutput {
		outputHuman("Outfit (%s): compatibility %.0f, coherence %.0f, total $%.2f\n",
			built.Theme, built.CompatibilityScore, built.StyleCoherence, built.TotalPrice)
		for i, item := range built.Items {
			outputHuman("%d. %s ($%.2f, %s/%s)\n", i+1,
				truncateString(item.Name, NameMaxLen), item.Price, item.Category, item.Formality)
		}
	} else {
		outputJSON(built)
	}

	return nil
}
