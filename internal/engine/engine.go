// Package engine assembles the immutable matching snapshot and exposes
// the four query operations over it: size-fit lookup, outfit build,
// multi-outfit generation, and similarity lookup.
package engine

import (
	"fmt"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/classify"
	"github.com/fitfast/fitfast/internal/fit"
	"github.com/fitfast/fitfast/internal/measure"
	"github.com/fitfast/fitfast/internal/outfit"
	"github.com/fitfast/fitfast/internal/similarity"
)

// Engine answers read-only queries over a fully loaded snapshot. All
// derived structures are built once in New; after that the engine is
// immutable and safe for concurrent callers without locking.
type Engine struct {
	items       []catalog.Item
	sizeRecords []catalog.SizeRecord
	embeddings  map[string][]float64

	meta     map[string]classify.ItemMetadata
	metaList []classify.ItemMetadata

	stats      *measure.Index
	scorer     *fit.Scorer
	similarity *similarity.Index
	builder    *outfit.Builder
}

// New builds an engine from loaded datasets. Items without an ID get a
// positional one; duplicate IDs are a dataset defect and fail fast.
func New(items []catalog.Item, sizeRecords []catalog.SizeRecord, embeddings map[string][]float64) (*Engine, error) {
	e := &Engine{
		items:       make([]catalog.Item, len(items)),
		sizeRecords: sizeRecords,
		embeddings:  embeddings,
		meta:        make(map[string]classify.ItemMetadata, len(items)),
		metaList:    make([]classify.ItemMetadata, 0, len(items)),
	}
	copy(e.items, items)

	for i := range e.items {
		if e.items[i].ID == "" {
			e.items[i].ID = fmt.Sprintf("item_%d", i+1)
		}
		if _, dup := e.meta[e.items[i].ID]; dup {
			return nil, fmt.Errorf("building snapshot: %w: %s", catalog.ErrDuplicateItemID, e.items[i].ID)
		}
		md := classify.Classify(e.items[i])
		e.meta[md.ID] = md
		e.metaList = append(e.metaList, md)
	}

	e.stats = measure.Build(sizeRecords)
	e.scorer = fit.NewScorer(sizeRecords, e.meta)
	e.similarity = similarity.NewIndex(embeddings, e.meta)
	e.builder = outfit.NewBuilder(e.metaList, e.scorer)
	return e, nil
}

// FindBestFittingItems ranks a garment type's items by best-fitting size.
func (e *Engine) FindBestFittingItems(user catalog.UserMeasurements, garmentType string, topK int, minFitScore float64) []fit.Recommendation {
	return e.scorer.FindBestFittingItems(user, garmentType, topK, minFitScore)
}

// BuildOutfit assembles one outfit around a starting item. Nil when the
// starting item is unknown.
func (e *Engine) BuildOutfit(req outfit.Request) *outfit.Outfit {
	return e.builder.Build(req)
}

// GenerateOutfits builds one outfit per style theme, ranked by
// compatibility score.
func (e *Engine) GenerateOutfits(startingItemID string, user catalog.UserMeasurements, nOutfits int, maxPricePerOutfit float64) []*outfit.Outfit {
	return e.builder.Generate(startingItemID, user, nOutfits, maxPricePerOutfit)
}

// FindSimilar looks up the embedding nearest neighbors of an item.
func (e *Engine) FindSimilar(itemID string, n int, sameCategory bool, minSimilarity float64) []similarity.Result {
	return e.similarity.FindSimilar(itemID, n, sameCategory, minSimilarity)
}

// StatsByGarmentType exposes the measurement statistics index.
func (e *Engine) StatsByGarmentType(garmentType string) measure.GarmentTypeStatistics {
	return e.stats.ByGarmentType(garmentType)
}

// GarmentTypes lists the garment types present in the size records.
func (e *Engine) GarmentTypes() []string {
	return e.stats.GarmentTypes()
}

// Item returns the classified metadata for one item.
func (e *Engine) Item(itemID string) (classify.ItemMetadata, bool) {
	md, ok := e.meta[itemID]
	return md, ok
}

// Items returns the classified metadata for the whole catalog, in
// catalog order. The slice is shared; callers must not mutate it.
func (e *Engine) Items() []classify.ItemMetadata {
	return e.metaList
}

// Counts reports snapshot sizes for introspection.
func (e *Engine) Counts() (items, sizeRecords, embeddings int) {
	return len(e.items), len(e.sizeRecords), len(e.embeddings)
}
