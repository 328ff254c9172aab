// Package outfit assembles and scores multi-item outfits around a
// starting catalog item, under static category and formality
// compatibility rules and named style themes.
package outfit

import "github.com/fitfast/fitfast/internal/classify"

// CategoryCompatibility lists, for each category, the categories it
// pairs with. The relation is directional: top -> bottom does not imply
// bottom -> top. Callers that want "either direction" must check both.
var CategoryCompatibility = map[classify.Category][]classify.Category{
	classify.CategoryTop:       {classify.CategoryBottom, classify.CategoryShorts, classify.CategorySkirt},
	classify.CategoryBottom:    {classify.CategoryTop, classify.CategorySweater, classify.CategoryOuterwear},
	classify.CategoryShorts:    {classify.CategoryTop, classify.CategorySweater, classify.CategoryOuterwear},
	classify.CategorySkirt:     {classify.CategoryTop, classify.CategorySweater, classify.CategoryOuterwear},
	classify.CategoryDress:     {classify.CategoryOuterwear, classify.CategoryFootwear, classify.CategoryAccessory},
	classify.CategoryOuterwear: {classify.CategoryTop, classify.CategorySweater, classify.CategoryBottom, classify.CategoryShorts, classify.CategorySkirt, classify.CategoryDress},
	classify.CategorySweater:   {classify.CategoryBottom, classify.CategoryShorts, classify.CategorySkirt},
	classify.CategoryFootwear:  {classify.CategoryBottom, classify.CategoryShorts, classify.CategorySkirt, classify.CategoryDress},
	classify.CategoryAccessory: {classify.CategoryTop, classify.CategoryBottom, classify.CategoryDress, classify.CategoryOuterwear},
}

// FormalityCompatibility lists, for each formality, the formalities it
// pairs with. Directional, like CategoryCompatibility.
var FormalityCompatibility = map[classify.Formality][]classify.Formality{
	classify.FormalityAthletic:       {classify.FormalityAthletic},
	classify.FormalityCasual:         {classify.FormalityCasual, classify.FormalityAthletic},
	classify.FormalityBusinessCasual: {classify.FormalityBusinessCasual, classify.FormalityCasual},
	classify.FormalityFormal:         {classify.FormalityFormal, classify.FormalityBusinessCasual},
}

// categoryCompatible reports whether `to` is listed as compatible from
// `from`. One direction only.
func categoryCompatible(from, to classify.Category) bool {
	for _, c := range CategoryCompatibility[from] {
		if c == to {
			return true
		}
	}
	return false
}

// formalityCompatible reports whether `to` is listed as compatible from
// `from`. One direction only.
func formalityCompatible(from, to classify.Formality) bool {
	for _, f := range FormalityCompatibility[from] {
		if f == to {
			return true
		}
	}
	return false
}

// SeasonalWeights is carried over from the source configuration but is
// not consulted by any scoring path. It stays here as reference data
// until there is a product decision on whether season should influence
// outfit scoring. Note the schema inconsistency it arrived with: three
// seasons are category multiplier maps while winter is a bare category
// list (WinterCategories below).
var SeasonalWeights = map[string]map[classify.Category]float64{
	"spring": {
		classify.CategoryTop:       1.2,
		classify.CategoryBottom:    1.0,
		classify.CategorySkirt:     1.1,
		classify.CategoryDress:     1.1,
		classify.CategoryOuterwear: 0.8,
	},
	"summer": {
		classify.CategoryTop:      1.1,
		classify.CategoryShorts:   1.3,
		classify.CategoryDress:    1.2,
		classify.CategoryFootwear: 1.0,
	},
	"fall": {
		classify.CategoryTop:       1.0,
		classify.CategoryBottom:    1.1,
		classify.CategorySweater:   1.3,
		classify.CategoryOuterwear: 1.2,
	},
}

// WinterCategories is the winter entry of the seasonal configuration,
// which arrived as a plain category list rather than a multiplier map.
// Unused, like SeasonalWeights.
var WinterCategories = []classify.Category{
	classify.CategorySweater,
	classify.CategoryOuterwear,
	classify.CategoryBottom,
	classify.CategoryFootwear,
}
