// Package catalog defines the core domain types for catalog items,
// per-size measurement records, and user measurements.
package catalog

import "errors"

// Item represents a single purchasable garment in the catalog.
// Items are loaded once at snapshot construction and never mutated.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"` // Raw category string from the source dataset
	Store       string  `json:"store"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock"`
	GarmentType string  `json:"garment_type"` // Raw garment-type string, input to classification

	// Formality is an optional source-supplied label. "unknown" and ""
	// both mean unlabeled; classification then falls back to keywords.
	Formality string `json:"formality,omitempty"`
}

// Validation errors.
var (
	ErrEmptyName       = errors.New("name is required")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrDuplicateItemID = errors.New("item with this id already exists")
	ErrItemNotFound    = errors.New("item not found")
)

// ValidateForLoad validates an item at dataset load time.
// A missing ID is not an error here; loaders assign positional IDs
// to items the source omits one for.
func (it *Item) ValidateForLoad() error {
	if it.Name == "" {
		return ErrEmptyName
	}
	if it.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
