package main

import (
	"github.com/fitfast/fitfast/internal/similarity"
	"github.com/spf13/cobra"
)

var (
	similarLimit         int
	similarSameCategory  bool
	similarMinSimilarity float64
)

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().IntVarP(&similarLimit, "limit", "l", DefaultSimilarLimit, "Maximum number of results")
	similarCmd.Flags().BoolVar(&similarSameCategory, "same-category", false, "Only items in the same category")
	similarCmd.Flags().Float64Var(&similarMinSimilarity, "min-similarity", 0, "Minimum cosine similarity")
}

// SimilarSource is the source item info for the similar response.
type SimilarSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SimilarResponse is the response for the similar command.
type SimilarResponse struct {
	Source  SimilarSource       `json:"source"`
	Similar []similarity.Result `json:"similar"`
	Total   int                 `json:"total"`
}

var similarCmd = &cobra.Command{
	Use:   "similar <item-id>",
	Short: "Find items visually similar to a specific item",
	Long: `Find catalog items whose embeddings are closest to a given item.

The source item is excluded from results. Items without embeddings
cannot be queried or matched.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func runSimilar(cmd *cobra.Command, args []string) error {
	itemID := args[0]
	root := mustFindRepository()

	eng := mustLoadEngine(root)

	source, ok := eng.Item(itemID)
	if !ok {
		exitWithError(ExitError, "item '%s' not found in catalog", itemID)
	}

	results := eng.FindSimilar(itemID, similarLimit, similarSameCategory, similarMinSimilarity)
	if results == nil {
		exitWithError(ExitDataError, "item '%s' has no embedding; import embeddings first", itemID)
	}

	if humanOutput {
		outputHuman("Items similar to: %s\n\n", source.Name)
		for i, r := range results {
			outputHuman("%d. [%.3f] %s (%s)\n", i+1,
				r.Similarity, truncateString(r.Item.Name, NameMaxLen), r.Item.Category)
		}
	} else {
		outputJSON(SimilarResponse{
			Source: SimilarSource{
				ID:   source.ID,
				Name: source.Name,
			},
			Similar: results,
			Total:   len(results),
		})
	}

	return nil
}
