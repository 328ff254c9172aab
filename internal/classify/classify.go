// Package classify derives normalized category and formality labels for
// catalog items from their raw garment-type strings and names.
//
// Classification is table-driven: ordered keyword tables scanned
// top-to-bottom with first-match-wins semantics, so precedence is an
// explicit property of the table order rather than of scattered
// conditionals.
package classify

import (
	"strings"

	"github.com/fitfast/fitfast/internal/catalog"
)

// Category is the coarse outfit-slot bucket an item occupies.
type Category string

// Category buckets.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryShorts    Category = "shorts"
	CategorySkirt     Category = "skirt"
	CategoryDress     Category = "dress"
	CategoryOuterwear Category = "outerwear"
	CategoryFootwear  Category = "footwear"
	CategoryAccessory Category = "accessory"
	CategorySweater   Category = "sweater" // Referenced by compatibility rules only
	CategoryOther     Category = "other"
)

// Formality is the coarse style register used to gate outfit combinations.
type Formality string

// Formality labels.
const (
	FormalityFormal         Formality = "formal"
	FormalityCasual         Formality = "casual"
	FormalityBusinessCasual Formality = "business_casual"
	FormalityAthletic       Formality = "athletic"
)

// categoryRule maps a keyword set to a category bucket.
type categoryRule struct {
	Category Category
	Keywords []string
}

// categoryRules is scanned in order; the first keyword hit wins.
// Order matters: "shirt" must classify as top before "short" could ever
// be probed, and "dress" items named "dress shoes" still land in footwear
// only if their garment type says so.
var categoryRules = []categoryRule{
	{CategoryTop, []string{"tee", "t_shirt", "shirt", "blouse", "top", "sweater", "hoodie", "cardigan", "polo"}},
	{CategoryBottom, []string{"pant", "jean", "trouser", "chino", "legging", "sweatpant"}},
	{CategoryShorts, []string{"short", "bermuda"}},
	{CategorySkirt, []string{"skirt"}},
	{CategoryDress, []string{"dress", "jumpsuit", "romper"}},
	{CategoryOuterwear, []string{"jacket", "coat", "blazer", "vest", "gilet"}},
	{CategoryFootwear, []string{"shoe", "sneaker", "boot", "sandal", "loafer"}},
	{CategoryAccessory, []string{"bag", "hat", "belt", "scarf"}},
}

// formalityRule maps a keyword set to a formality label.
type formalityRule struct {
	Formality Formality
	Keywords  []string
}

var formalityRules = []formalityRule{
	{FormalityFormal, []string{"formal", "dress", "suit", "blazer", "oxford"}},
	{FormalityCasual, []string{"casual", "tee", "hoodie", "sweat"}},
	{FormalityBusinessCasual, []string{"business", "work", "office", "chino"}},
	{FormalityAthletic, []string{"athletic", "training", "gym", "sport"}},
}

// CategoryOf classifies a raw garment-type string into a category bucket.
// Unmatched types fall through to CategoryOther.
func CategoryOf(garmentType string) Category {
	lowered := strings.ToLower(garmentType)
	for _, rule := range categoryRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}

// FormalityOf derives a formality label. An explicit non-"unknown"
// formality wins; otherwise the lowercased concatenation of garment type
// and name is scanned against the formality tables in order, defaulting
// to casual.
func FormalityOf(garmentType, name, explicit string) Formality {
	if explicit != "" && explicit != "unknown" {
		return Formality(explicit)
	}

	lowered := strings.ToLower(garmentType + " " + name)
	for _, rule := range formalityRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Formality
			}
		}
	}
	return FormalityCasual
}

// ItemMetadata is the classified view of a catalog item used by outfit
// assembly and similarity lookups.
type ItemMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	GarmentType string    `json:"garment_type"`
	Store       string    `json:"store"`
	Category    Category  `json:"category"`
	Formality   Formality `json:"formality"`
}

// Classify derives metadata for a catalog item.
func Classify(item catalog.Item) ItemMetadata {
	return ItemMetadata{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		GarmentType: item.GarmentType,
		Store:       item.Store,
		Category:    CategoryOf(item.GarmentType),
		Formality:   FormalityOf(item.GarmentType, item.Name, item.Formality),
	}
}
