package outfit

import (
	"sort"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/classify"
	"github.com/fitfast/fitfast/internal/fit"
)

// Candidate scoring weights and caps.
const (
	categoryPairPoints  = 30.0
	formalityPairPoints = 20.0
	priceBalancePoints  = 10.0
	maxScore            = 100.0

	// priceEpsilon stabilizes price-ratio denominators so zero-priced
	// items compare instead of dividing by zero.
	priceEpsilon = 1e-8

	// shortlistSize is how many scored candidates survive per category
	// before the single greedy pick.
	shortlistSize = 5

	// DefaultMaxItems bounds outfit size when the caller does not.
	DefaultMaxItems = 4
)

// SizeRecommender resolves a best-fitting size for one item. *fit.Scorer
// satisfies it; the builder treats it as optional and best-effort.
type SizeRecommender interface {
	BestSizeForItem(user catalog.UserMeasurements, itemID string) (fit.Result, bool)
}

// Outfit is one assembled outfit. A fresh value is produced per build;
// nothing here aliases builder state that could change.
type Outfit struct {
	StartingItem classify.ItemMetadata `json:"starting_item"`

	// Items holds every chosen item, starting item first, then pick order.
	Items []classify.ItemMetadata `json:"items"`

	TotalPrice float64 `json:"total_price"`
	ItemCount  int     `json:"item_count"`

	// SizeRecommendations maps item ID to its fit result, for the items
	// a size lookup succeeded for.
	SizeRecommendations map[string]fit.Result `json:"size_recommendations,omitempty"`

	CompatibilityScore float64 `json:"compatibility_score"` // [0,100]
	StyleCoherence     float64 `json:"style_coherence"`     // [0,100]
	Theme              string  `json:"theme"`
	ThemeDescription   string  `json:"theme_description"`
}

// Request carries the parameters of one outfit build.
type Request struct {
	StartingItemID string
	User           catalog.UserMeasurements
	Theme          string

	// MaxItems caps outfit size; 0 means DefaultMaxItems.
	MaxItems int

	// MaxPrice, when positive, caps total spend. Each unfilled category
	// gets an equal share of it as its per-item ceiling.
	MaxPrice float64

	// RequireSizeFit enables best-effort size lookups for chosen items.
	RequireSizeFit bool
}

// Builder assembles outfits over classified catalog items. Read-only
// after construction.
type Builder struct {
	items  []classify.ItemMetadata
	byID   map[string]classify.ItemMetadata
	scorer SizeRecommender
}

// NewBuilder creates a builder over classified items, preserving catalog
// order (candidate ties resolve to the earlier item). scorer may be nil;
// outfits then simply carry no size recommendations.
func NewBuilder(items []classify.ItemMetadata, scorer SizeRecommender) *Builder {
	byID := make(map[string]classify.ItemMetadata, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &Builder{items: items, byID: byID, scorer: scorer}
}

// Build assembles one outfit around the starting item. An unknown
// starting item yields nil, not an error. Unknown theme names fall back
// to the default theme. Selection is greedy: per target category the
// candidates are scored against the current outfit, shortlisted, and the
// single best is committed immediately, with no backtracking.
func (b *Builder) Build(req Request) *Outfit {
	starting, ok := b.byID[req.StartingItemID]
	if !ok {
		return nil
	}

	theme := ThemeByName(req.Theme)
	maxItems := req.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	out := &Outfit{
		StartingItem:        starting,
		Items:               []classify.ItemMetadata{starting},
		TotalPrice:          starting.Price,
		SizeRecommendations: make(map[string]fit.Result),
		Theme:               theme.Name,
		ThemeDescription:    theme.Description,
	}
	chosen := map[string]bool{starting.ID: true}
	b.lookupSize(req, out, starting.ID)

	targets := removeFirst(theme.Categories, starting.Category)
	for i, category := range targets {
		if len(out.Items) >= maxItems {
			break
		}

		// Split the remaining budget evenly over the categories left.
		var ceiling float64
		if req.MaxPrice > 0 {
			ceiling = req.MaxPrice / float64(len(targets)-i)
		}

		best, ok := b.pickCandidate(out.Items, chosen, category, theme, ceiling)
		if !ok {
			continue
		}

		out.Items = append(out.Items, best)
		out.TotalPrice += best.Price
		chosen[best.ID] = true
		b.lookupSize(req, out, best.ID)
	}

	out.ItemCount = len(out.Items)
	out.CompatibilityScore = compatibilityScore(out.Items)
	out.StyleCoherence = styleCoherence(theme, out.Items)
	return out
}

// Generate builds one outfit per theme in declaration order, up to
// nOutfits, dropping themes that yield no outfit, and returns the
// survivors sorted by compatibility score descending.
func (b *Builder) Generate(startingItemID string, user catalog.UserMeasurements, nOutfits int, maxPricePerOutfit float64) []*Outfit {
	var outfits []*Outfit
	for _, theme := range Themes {
		if nOutfits > 0 && len(outfits) >= nOutfits {
			break
		}
		out := b.Build(Request{
			StartingItemID: startingItemID,
			User:           user,
			Theme:          theme.Name,
			MaxPrice:       maxPricePerOutfit,
			RequireSizeFit: user != nil,
		})
		if out != nil {
			outfits = append(outfits, out)
		}
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].CompatibilityScore > outfits[j].CompatibilityScore
	})
	return outfits
}

// lookupSize records a best-effort size recommendation for an item. Any
// scorer failure just leaves the item without a size entry; it never
// aborts assembly.
func (b *Builder) lookupSize(req Request, out *Outfit, itemID string) {
	if b.scorer == nil || !req.RequireSizeFit || len(req.User) == 0 {
		return
	}

	defer func() {
		// A panicking scorer degrades to "no size recommendation".
		_ = recover()
	}()
	if result, ok := b.scorer.BestSizeForItem(req.User, itemID); ok {
		out.SizeRecommendations[itemID] = result
	}
}

// pickCandidate scores the eligible items of one category against the
// current outfit, shortlists the strongest, and returns the single best.
func (b *Builder) pickCandidate(current []classify.ItemMetadata, chosen map[string]bool, category classify.Category, theme Theme, priceCeiling float64) (classify.ItemMetadata, bool) {
	type scored struct {
		item  classify.ItemMetadata
		score float64
	}

	var pool []scored
	for _, item := range b.items {
		if chosen[item.ID] || item.Category != category {
			continue
		}
		if !themeAllowsFormality(theme, item.Formality) {
			continue
		}
		if priceCeiling > 0 && item.Price > priceCeiling {
			continue
		}
		pool = append(pool, scored{item, candidateScore(item, current)})
	}
	if len(pool) == 0 {
		return classify.ItemMetadata{}, false
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})
	if len(pool) > shortlistSize {
		pool = pool[:shortlistSize]
	}
	return pool[0].item, true
}

// candidateScore averages the candidate's pairwise affinity with the
// items already chosen: 30 when the chosen item's category lists the
// candidate's, 20 when its formality lists the candidate's, 10 when
// their prices are within a 3x band.
func candidateScore(candidate classify.ItemMetadata, current []classify.ItemMetadata) float64 {
	var sum float64
	for _, member := range current {
		if categoryCompatible(member.Category, candidate.Category) {
			sum += categoryPairPoints
		}
		if formalityCompatible(member.Formality, candidate.Formality) {
			sum += formalityPairPoints
		}
		if priceBalanced(member.Price, candidate.Price) {
			sum += priceBalancePoints
		}
	}
	return sum / float64(len(current))
}

// priceBalanced reports whether two prices sit within a 3x ratio,
// epsilon-stabilized so zero prices compare rather than divide by zero.
func priceBalanced(a, b float64) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return hi/(lo+priceEpsilon) < 3
}

// compatibilityScore is the mean over all unordered item pairs of their
// pair points: 30 when the categories are compatible in either listed
// direction, plus 20 when the formalities are. Capped at 100; 0 below
// two items.
func compatibilityScore(items []classify.ItemMetadata) float64 {
	if len(items) < 2 {
		return 0
	}

	var sum float64
	var pairs int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if categoryCompatible(a.Category, b.Category) || categoryCompatible(b.Category, a.Category) {
				sum += categoryPairPoints
			}
			if formalityCompatible(a.Formality, b.Formality) || formalityCompatible(b.Formality, a.Formality) {
				sum += formalityPairPoints
			}
			pairs++
		}
	}

	score := sum / float64(pairs)
	if score > maxScore {
		score = maxScore
	}
	return score
}

// styleCoherence measures how well the outfit matches its theme:
// 40 points for theme-category coverage, 40 for theme-formality
// coverage, 20 when prices cluster (range under twice the mean across
// positively priced items). Capped at 100.
func styleCoherence(theme Theme, items []classify.ItemMetadata) float64 {
	categories := make(map[classify.Category]bool)
	formalities := make(map[classify.Formality]bool)
	for _, item := range items {
		categories[item.Category] = true
		formalities[item.Formality] = true
	}

	var categoryHits int
	seen := make(map[classify.Category]bool)
	for _, c := range theme.Categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		if categories[c] {
			categoryHits++
		}
	}

	var formalityHits int
	for _, f := range theme.Formalities {
		if formalities[f] {
			formalityHits++
		}
	}

	score := 40*float64(categoryHits)/float64(len(uniqueCategories(theme.Categories))) +
		40*float64(formalityHits)/float64(len(theme.Formalities))

	if pricesCluster(items) {
		score += 20
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// pricesCluster reports whether the positively priced items span a range
// smaller than twice their mean price. False when no item has a positive
// price.
func pricesCluster(items []classify.ItemMetadata) bool {
	var prices []float64
	for _, item := range items {
		if item.Price > 0 {
			prices = append(prices, item.Price)
		}
	}
	if len(prices) == 0 {
		return false
	}

	lo, hi, sum := prices[0], prices[0], 0.0
	for _, p := range prices {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
		sum += p
	}
	mean := sum / float64(len(prices))
	return (hi-lo)/(mean+priceEpsilon) < 2
}

// uniqueCategories preserves order while dropping duplicates.
func uniqueCategories(categories []classify.Category) []classify.Category {
	var out []classify.Category
	seen := make(map[classify.Category]bool)
	for _, c := range categories {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// themeAllowsFormality reports whether a formality is in the theme's
// allowed set.
func themeAllowsFormality(theme Theme, formality classify.Formality) bool {
	for _, f := range theme.Formalities {
		if f == formality {
			return true
		}
	}
	return false
}

// removeFirst returns categories with the first occurrence of target
// removed, order preserved.
func removeFirst(categories []classify.Category, target classify.Category) []classify.Category {
	out := make([]classify.Category, 0, len(categories))
	removed := false
	for _, c := range categories {
		if !removed && c == target {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}
