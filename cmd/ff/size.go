package main

import (
	"github.com/fitfast/fitfast/internal/fit"
	"github.com/spf13/cobra"
)

var (
	sizeGarmentType  string
	sizeMeasurements []string
	sizeLimit        int
	sizeMinScore     float64
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().StringVarP(&sizeGarmentType, "type", "t", "", "Garment type to search within")
	sizeCmd.Flags().StringSliceVarP(&sizeMeasurements, "measurements", "m", nil, "User measurements: a JSON file or key=value pairs")
	sizeCmd.Flags().IntVarP(&sizeLimit, "limit", "l", DefaultSizeLimit, "Maximum number of results")
	sizeCmd.Flags().Float64Var(&sizeMinScore, "min-score", 0, "Minimum fit score [0,1]")

	sizeCmd.MarkFlagRequired("type")
	sizeCmd.MarkFlagRequired("measurements")
}

// SizeResponse is the response for the size command.
type SizeResponse struct {
	Recommendations []fit.Recommendation `json:"recommendations"`
	Total           int                  `json:"total"`
}

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Find the best-fitting items for a set of body measurements",
	Long: `Find catalog items whose size charts fit the given body measurements.

Each item is scored against its size rows on the key measurements for
its garment type; the best size per item is reported along with
per-measurement differences and assessments.

Measurements can be a JSON file or inline pairs:
  ff size -m measurements.json -t dress_shirt
  ff size -m chest_circumference=95 -m waist_circumference=82`,
	RunE: runSize,
}

func runSize(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	user, err := parseMeasurementsFlag(sizeMeasurements)
	if err != nil {
		exitWithError(ExitDataError, "parsing measurements: %v", err)
	}
	if len(user) == 0 {
		exitWithError(ExitDataError, "no usable measurements provided")
	}

	eng := mustLoadEngine(root)
	recs := eng.FindBestFittingItems(user, sizeGarmentType, sizeLimit, sizeMinScore)

	if humanOutput {
		for i, rec := range recs {
			outputHuman("%d. [%.2f %s] %s (size %s)\n", i+1,
				rec.Score, rec.Label, truncateString(rec.Item.Name, NameMaxLen), rec.BestSize)
		}
		if len(recs) == 0 {
			outputHuman("No items matched the given measurements.\n")
		}
	} else {
		outputJSON(SizeResponse{
			Recommendations: recs,
			Total:           len(recs),
		})
	}

	return nil
}
