package outfit

import "github.com/fitfast/fitfast/internal/classify"

// Theme is a named outfit template: the ordered categories to fill and
// the formalities allowed to fill them.
type Theme struct {
	Name        string               `json:"name"`
	Categories  []classify.Category  `json:"categories"`
	Formalities []classify.Formality `json:"formalities"`
	Description string               `json:"description"`
}

// DefaultThemeName is substituted for unknown theme names.
const DefaultThemeName = "casual_everyday"

// Themes holds the five built-in themes. Declaration order is the order
// multi-outfit generation walks them in.
var Themes = []Theme{
	{
		Name:        "casual_everyday",
		Categories:  []classify.Category{classify.CategoryTop, classify.CategoryBottom, classify.CategoryFootwear},
		Formalities: []classify.Formality{classify.FormalityCasual},
		Description: "Comfortable everyday wear",
	},
	{
		Name:        "smart_casual",
		Categories:  []classify.Category{classify.CategoryTop, classify.CategoryBottom, classify.CategoryOuterwear, classify.CategoryFootwear},
		Formalities: []classify.Formality{classify.FormalityBusinessCasual, classify.FormalityCasual},
		Description: "Polished yet comfortable",
	},
	{
		Name:        "athletic_performance",
		Categories:  []classify.Category{classify.CategoryTop, classify.CategoryBottom, classify.CategoryFootwear},
		Formalities: []classify.Formality{classify.FormalityAthletic},
		Description: "Activewear for performance",
	},
	{
		Name:        "evening_out",
		Categories:  []classify.Category{classify.CategoryDress, classify.CategoryOuterwear, classify.CategoryFootwear, classify.CategoryAccessory},
		Formalities: []classify.Formality{classify.FormalityFormal, classify.FormalityBusinessCasual},
		Description: "Night out or special occasion",
	},
	{
		Name:        "beach_vacation",
		Categories:  []classify.Category{classify.CategoryTop, classify.CategoryShorts, classify.CategoryDress, classify.CategoryFootwear},
		Formalities: []classify.Formality{classify.FormalityCasual},
		Description: "Relaxed vacation wear",
	},
}

// ThemeByName resolves a theme name, silently falling back to the
// default theme for unknown names.
func ThemeByName(name string) Theme {
	for _, theme := range Themes {
		if theme.Name == name {
			return theme
		}
	}
	return Themes[0]
}
