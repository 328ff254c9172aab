package main

import (
	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/storage"
	"github.com/spf13/cobra"
)

var (
	itemsKeyword     string
	itemsCategory    string
	itemsGarmentType string
	itemsFormality   string
	itemsStore       string
	itemsMaxPrice    float64
	itemsInStock     bool
	itemsLimit       int
)

func init() {
	rootCmd.AddCommand(itemsCmd)

	itemsCmd.Flags().StringVarP(&itemsKeyword, "search", "s", "", "Keyword search over name and description")
	itemsCmd.Flags().StringVarP(&itemsCategory, "category", "c", "", "Filter by derived category")
	itemsCmd.Flags().StringVarP(&itemsGarmentType, "garment-type", "t", "", "Filter by garment type")
	itemsCmd.Flags().StringVar(&itemsFormality, "formality", "", "Filter by derived formality")
	itemsCmd.Flags().StringVar(&itemsStore, "store", "", "Filter by store name")
	itemsCmd.Flags().Float64Var(&itemsMaxPrice, "max-price", 0, "Maximum price (0 = no limit)")
	itemsCmd.Flags().BoolVar(&itemsInStock, "in-stock", false, "Only items with positive stock")
	itemsCmd.Flags().IntVarP(&itemsLimit, "limit", "l", 0, "Maximum number of results (0 = all)")
}

// ItemsResponse is the response for the items command.
type ItemsResponse struct {
	Items []catalog.Item `json:"items"`
	Total int            `json:"total"`
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List catalog items from the SQLite cache",
	Long: `List catalog items, filtered via the SQLite cache.

The cache is rebuilt by 'ff import'; run that first if results look
stale.`,
	RunE: runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening catalog cache: %v", err)
	}
	defer db.Close()

	items, err := db.ListWithFilters(storage.ItemFilters{
		Keyword:     itemsKeyword,
		Category:    itemsCategory,
		GarmentType: itemsGarmentType,
		Formality:   itemsFormality,
		Store:       itemsStore,
		MaxPrice:    itemsMaxPrice,
		InStock:     itemsInStock,
	}, itemsLimit)
	if err != nil {
		exitWithError(ExitError, "listing items: %v", err)
	}

	if humanOutput {
		for _, item := range items {
			outputHuman("%-12s $%8.2f  %s\n", item.ID, item.Price, truncateString(item.Name, NameMaxLen))
		}
		outputHuman("\n%d items\n", len(items))
	} else {
		outputJSON(ItemsResponse{
			Items: items,
			Total: len(items),
		})
	}

	return nil
}
