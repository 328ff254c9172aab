package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats [garment-type]",
	Short: "Show measurement statistics for a garment type",
	Long: `Show size-chart statistics for a garment type: item count, sizes seen,
common measurement fields, and per-size aggregates (count, min, max,
mean, standard deviation).

Without an argument, lists the known garment types.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	eng := mustLoadEngine(root)

	if len(args) == 0 {
		types := eng.GarmentTypes()
		if humanOutput {
			for _, gt := range types {
				outputHuman("%s\n", gt)
			}
		} else {
			outputJSON(map[string]interface{}{
				"garment_types": types,
				"total":         len(types),
			})
		}
		return nil
	}

	stats := eng.StatsByGarmentType(args[0])
	if stats.ItemCount == 0 {
		exitWithError(ExitError, "no size data for garment type '%s'", args[0])
	}

	if humanOutput {
		outputHuman("%s: %d items, sizes %v\n", stats.GarmentType, stats.ItemCount, stats.Sizes)
		outputHuman("common measurements: %v\n", stats.CommonMeasurements)
		for _, size := range stats.Sizes {
			outputHuman("\nsize %s:\n", size)
			for field, fs := range stats.BySize[size] {
				outputHuman("  %-28s n=%d min=%.1f max=%.1f mean=%.1f\n",
					field, fs.Count, fs.Min, fs.Max, fs.Mean)
			}
		}
	} else {
		outputJSON(stats)
	}

	return nil
}
