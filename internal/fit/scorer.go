// Package fit scores garment sizes against user measurements and ranks
// catalog items by best-fitting size.
package fit

import (
	"sort"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/classify"
)

// MeasurementScore is the per-measurement scoring detail for one size.
type MeasurementScore struct {
	Score      float64 `json:"score"`
	Difference float64 `json:"difference"` // user minus garment, cm
	Assessment string  `json:"assessment"`
}

// MeasurementComparison pairs a user measurement with the garment's.
type MeasurementComparison struct {
	User       float64 `json:"user"`
	Garment    float64 `json:"garment"`
	Difference float64 `json:"difference"`
}

// Result is the outcome of fitting one item's sizes to a user.
type Result struct {
	BestSize string  `json:"best_size"`
	Score    float64 `json:"score"` // [0,1]
	Label    string  `json:"label"`

	// Details holds the per-measurement score, difference, and
	// qualitative assessment for the winning size.
	Details map[string]MeasurementScore `json:"details"`

	// Comparison shows user-vs-garment values for the winning size.
	Comparison map[string]MeasurementComparison `json:"comparison"`
}

// Recommendation is one ranked entry returned by FindBestFittingItems.
type Recommendation struct {
	Item           classify.ItemMetadata `json:"item"`
	AvailableSizes []string              `json:"available_sizes"`
	Result
}

// Scorer ranks items by fit. It is built once from the loaded size
// records and item metadata and is read-only afterwards.
type Scorer struct {
	byType map[string][]catalog.SizeRecord
	byItem map[string][]catalog.SizeRecord
	meta   map[string]classify.ItemMetadata
}

// NewScorer indexes size records by garment type and by item, preserving
// input order within each group. Iteration order is load-bearing: ties in
// fit score resolve to the earlier row.
func NewScorer(records []catalog.SizeRecord, meta map[string]classify.ItemMetadata) *Scorer {
	s := &Scorer{
		byType: make(map[string][]catalog.SizeRecord),
		byItem: make(map[string][]catalog.SizeRecord),
		meta:   meta,
	}
	for _, rec := range records {
		s.byType[rec.GarmentType] = append(s.byType[rec.GarmentType], rec)
		s.byItem[rec.ItemID] = append(s.byItem[rec.ItemID], rec)
	}
	return s
}

// FindBestFittingItems ranks the items of a garment type by their
// best-fitting size for the given user measurements. Items whose best
// score falls below minFitScore are dropped; results are sorted by score
// descending (ties keep item encounter order) and truncated to topK when
// topK > 0. An unknown garment type yields an empty result, not an error.
func (s *Scorer) FindBestFittingItems(user catalog.UserMeasurements, garmentType string, topK int, minFitScore float64) []Recommendation {
	rows := s.byType[garmentType]
	if len(rows) == 0 {
		return nil
	}

	keyFields := KeyMeasurements(garmentType)

	// Group rows per item in first-seen order; each item is processed once.
	var order []string
	grouped := make(map[string][]catalog.SizeRecord)
	for _, rec := range rows {
		if _, seen := grouped[rec.ItemID]; !seen {
			order = append(order, rec.ItemID)
		}
		grouped[rec.ItemID] = append(grouped[rec.ItemID], rec)
	}

	var recs []Recommendation
	for _, itemID := range order {
		itemRows := grouped[itemID]
		result, ok := bestSize(user, itemRows, keyFields)
		if !ok || result.Score < minFitScore {
			continue
		}

		meta, known := s.meta[itemID]
		if !known {
			meta = classify.ItemMetadata{ID: itemID, GarmentType: garmentType}
		}
		recs = append(recs, Recommendation{
			Item:           meta,
			AvailableSizes: sizeLabels(itemRows),
			Result:         result,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if topK > 0 && len(recs) > topK {
		recs = recs[:topK]
	}
	return recs
}

// BestSizeForItem fits one item directly, using the garment type recorded
// on its own size rows. Reports false when the item has no size rows or
// no measurement overlaps on any row.
func (s *Scorer) BestSizeForItem(user catalog.UserMeasurements, itemID string) (Result, bool) {
	rows := s.byItem[itemID]
	if len(rows) == 0 {
		return Result{}, false
	}
	return bestSize(user, rows, KeyMeasurements(rows[0].GarmentType))
}

// AvailableSizes returns the size labels recorded for an item, in row
// order with duplicates removed.
func (s *Scorer) AvailableSizes(itemID string) []string {
	return sizeLabels(s.byItem[itemID])
}

// bestSize scores every size row and retains the strictly best one, so
// equal scores resolve to the earlier row. Reports false when no row
// overlaps the user's measurements at all.
func bestSize(user catalog.UserMeasurements, rows []catalog.SizeRecord, keyFields []string) (Result, bool) {
	best := Result{Score: -1}
	matchedAny := false

	for _, row := range rows {
		score, details, comparison := scoreRow(user, row, keyFields)
		if len(details) > 0 {
			matchedAny = true
		}
		if score > best.Score {
			best = Result{
				BestSize:   row.Size,
				Score:      score,
				Details:    details,
				Comparison: comparison,
			}
		}
	}

	if !matchedAny {
		return Result{}, false
	}
	best.Label = FitLabel(best.Score)
	return best, true
}

// scoreRow scores one size row: the mean of the per-measurement step
// scores over the key measurements present on both sides. Zero overlap
// scores exactly 0.
func scoreRow(user catalog.UserMeasurements, row catalog.SizeRecord, keyFields []string) (float64, map[string]MeasurementScore, map[string]MeasurementComparison) {
	details := make(map[string]MeasurementScore)
	comparison := make(map[string]MeasurementComparison)

	var sum float64
	for _, field := range keyFields {
		userValue, ok := user[field]
		if !ok {
			continue
		}
		garmentValue, ok := row.Measurement(field)
		if !ok {
			continue
		}

		difference := userValue - garmentValue
		score := scoreDifference(field, difference)
		sum += score
		details[field] = MeasurementScore{
			Score:      score,
			Difference: difference,
			Assessment: assessDifference(field, difference),
		}
		comparison[field] = MeasurementComparison{
			User:       userValue,
			Garment:    garmentValue,
			Difference: difference,
		}
	}

	if len(details) == 0 {
		return 0, nil, nil
	}
	return sum / float64(len(details)), details, comparison
}

// sizeLabels extracts the distinct size labels in row order.
func sizeLabels(rows []catalog.SizeRecord) []string {
	var labels []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row.Size] {
			seen[row.Size] = true
			labels = append(labels, row.Size)
		}
	}
	return labels
}
