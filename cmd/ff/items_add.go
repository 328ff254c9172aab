package main

import (
	"strings"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/storage"
	"github.com/spf13/cobra"
)

var (
	itemsAddID          string
	itemsAddName        string
	itemsAddPrice       float64
	itemsAddCategory    string
	itemsAddGarmentType string
	itemsAddStore       string
	itemsAddDescription string
	itemsAddStock       int
)

func init() {
	itemsCmd.AddCommand(itemsAddCmd)

	itemsAddCmd.Flags().StringVar(&itemsAddID, "id", "", "Item ID (derived from the name when empty)")
	itemsAddCmd.Flags().StringVar(&itemsAddName, "name", "", "Item name")
	itemsAddCmd.Flags().Float64Var(&itemsAddPrice, "price", 0, "Item price")
	itemsAddCmd.Flags().StringVarP(&itemsAddCategory, "category", "c", "", "Raw category label")
	itemsAddCmd.Flags().StringVarP(&itemsAddGarmentType, "garment-type", "t", "", "Garment type")
	itemsAddCmd.Flags().StringVar(&itemsAddStore, "store", "", "Store name")
	itemsAddCmd.Flags().StringVar(&itemsAddDescription, "description", "", "Item description")
	itemsAddCmd.Flags().IntVar(&itemsAddStock, "stock", 0, "Units in stock")

	itemsAddCmd.MarkFlagRequired("name")
	itemsAddCmd.MarkFlagRequired("garment-type")
}

// AddItemResponse reports the item as saved, including its assigned ID.
type AddItemResponse struct {
	Status string       `json:"status"`
	Item   catalog.Item `json:"item"`
}

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single item to the catalog",
	Long: `Add one item to the catalog and refresh the SQLite cache.

The ID defaults to a slug of the name; an ID already in the catalog
gets a -2, -3 suffix. Any saved engine snapshot is removed since it no
longer matches the catalog.`,
	RunE: runItemsAdd,
}

func runItemsAdd(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	items, err := storage.ReadCatalog(config.CatalogPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading catalog: %v", err)
	}

	item := catalog.Item{
		ID:          newItemID(itemsAddID, itemsAddName),
		Name:        itemsAddName,
		Price:       itemsAddPrice,
		Category:    itemsAddCategory,
		Store:       itemsAddStore,
		Description: itemsAddDescription,
		Stock:       itemsAddStock,
		GarmentType: itemsAddGarmentType,
	}
	if err := item.ValidateForLoad(); err != nil {
		exitWithError(ExitDataError, "invalid item: %v", err)
	}
	item.ID = storage.GenerateUniqueItemID(items, item.ID)

	if err := storage.AppendItem(config.CatalogPath(root), item); err != nil {
		exitWithError(ExitError, "saving item: %v", err)
	}

	if err := invalidateSnapshot(root); err != nil {
		exitWithError(ExitError, "invalidating snapshot: %v", err)
	}

	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening catalog cache: %v", err)
	}
	defer db.Close()

	if _, err := db.RebuildFromJSONL(config.CatalogPath(root)); err != nil {
		exitWithError(ExitError, "rebuilding catalog cache: %v", err)
	}

	if humanOutput {
		outputHuman("Added %s: %s ($%.2f)\n", item.ID, item.Name, item.Price)
	} else {
		outputJSON(AddItemResponse{
			Status: "added",
			Item:   item,
		})
	}

	return nil
}

// newItemID returns the explicit ID when set, otherwise a slug of the
// name (lowercased, whitespace collapsed to underscores).
func newItemID(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}
