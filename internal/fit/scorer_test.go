package fit

import (
	"math"
	"testing"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/classify"
)

func sizeRow(itemID, garmentType, size string, m map[string]float64) catalog.SizeRecord {
	return catalog.SizeRecord{ItemID: itemID, GarmentType: garmentType, Size: size, Measurements: m}
}

func metaFor(records []catalog.SizeRecord) map[string]classify.ItemMetadata {
	meta := make(map[string]classify.ItemMetadata)
	for _, r := range records {
		if _, ok := meta[r.ItemID]; !ok {
			meta[r.ItemID] = classify.ItemMetadata{ID: r.ItemID, GarmentType: r.GarmentType}
		}
	}
	return meta
}

func TestFindBestFittingItems_PerfectChestFit(t *testing.T) {
	records := []catalog.SizeRecord{
		sizeRow("item_1", "t_shirt", "M", map[string]float64{"chest_circumference": 93}),
	}
	s := NewScorer(records, metaFor(records))

	recs := s.FindBestFittingItems(catalog.UserMeasurements{"chest_circumference": 95}, "t_shirt", 10, 0)

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	got := recs[0]
	if got.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0 (diff 2 is within chest tier 1)", got.Score)
	}
	if got.Label != "Excellent Fit" {
		t.Errorf("Label = %q, want %q", got.Label, "Excellent Fit")
	}
	if got.BestSize != "M" {
		t.Errorf("BestSize = %q, want %q", got.BestSize, "M")
	}
	detail := got.Details["chest_circumference"]
	if detail.Score != 1.0 || detail.Difference != 2 {
		t.Errorf("chest detail = %+v, want score 1.0 diff 2", detail)
	}
	cmp := got.Comparison["chest_circumference"]
	if cmp.User != 95 || cmp.Garment != 93 {
		t.Errorf("comparison = %+v, want user 95 garment 93", cmp)
	}
}

func TestFindBestFittingItems_PoorWaistFit(t *testing.T) {
	records := []catalog.SizeRecord{
		sizeRow("item_1", "jeans", "30", map[string]float64{"waist_circumference": 90}),
	}
	s := NewScorer(records, metaFor(records))

	recs := s.FindBestFittingItems(catalog.UserMeasurements{"waist_circumference": 82}, "jeans", 10, 0)

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Score != 0.1 {
		t.Errorf("Score = %v, want 0.1 (waist diff 8 beyond all tiers)", recs[0].Score)
	}
	if recs[0].Label != "Poor Fit" {
		t.Errorf("Label = %q, want %q", recs[0].Label, "Poor Fit")
	}
}

func TestFindBestFittingItems_MeanOfMatchedScores(t *testing.T) {
	// chest diff 2 -> 1.0, waist diff 8 -> 0.1; mean is exactly 0.55.
	records := []catalog.SizeRecord{
		sizeRow("item_1", "romper", "S", map[string]float64{
			"chest_circumference": 93,
			"waist_circumference": 74,
		}),
	}
	s := NewScorer(records, metaFor(records))

	user := catalog.UserMeasurements{"chest_circumference": 95, "waist_circumference": 82}
	recs := s.FindBestFittingItems(user, "romper", 10, 0)

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if math.Abs(recs[0].Score-0.55) > 1e-12 {
		t.Errorf("Score = %v, want exactly 0.55", recs[0].Score)
	}
}

func TestFindBestFittingItems_SortedTruncatedFiltered(t *testing.T) {
	records := []catalog.SizeRecord{
		sizeRow("far", "t_shirt", "M", map[string]float64{"chest_circumference": 104}),  // diff 9 -> 0.2
		sizeRow("close", "t_shirt", "M", map[string]float64{"chest_circumference": 96}), // diff 1 -> 1.0
		sizeRow("mid", "t_shirt", "M", map[string]float64{"chest_circumference": 99}),   // diff 4 -> 0.8
	}
	s := NewScorer(records, metaFor(records))
	user := catalog.UserMeasurements{"chest_circumference": 95}

	recs := s.FindBestFittingItems(user, "t_shirt", 10, 0)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("results not sorted descending: %v before %v", recs[i-1].Score, recs[i].Score)
		}
	}
	if recs[0].Item.ID != "close" || recs[1].Item.ID != "mid" || recs[2].Item.ID != "far" {
		t.Errorf("order = [%s %s %s], want [close mid far]",
			recs[0].Item.ID, recs[1].Item.ID, recs[2].Item.ID)
	}

	// topK truncation
	if got := s.FindBestFittingItems(user, "t_shirt", 2, 0); len(got) != 2 {
		t.Errorf("topK=2 returned %d results", len(got))
	}

	// minFitScore filter: every returned score must clear the threshold
	filtered := s.FindBestFittingItems(user, "t_shirt", 10, 0.5)
	if len(filtered) != 2 {
		t.Fatalf("minFitScore=0.5 returned %d results, want 2", len(filtered))
	}
	for _, r := range filtered {
		if r.Score < 0.5 {
			t.Errorf("score %v below minFitScore", r.Score)
		}
	}
}

func TestFindBestFittingItems_UnknownType(t *testing.T) {
	s := NewScorer(nil, nil)
	if got := s.FindBestFittingItems(catalog.UserMeasurements{"chest_circumference": 95}, "parka", 5, 0); len(got) != 0 {
		t.Errorf("unknown garment type returned %d results, want 0", len(got))
	}
}

func TestBestSize_TieBreakFirstRowWins(t *testing.T) {
	// Both sizes produce the same score; the earlier row must win.
	records := []catalog.SizeRecord{
		sizeRow("item_1", "t_shirt", "M", map[string]float64{"chest_circumference": 94}), // diff 1 -> 1.0
		sizeRow("item_1", "t_shirt", "L", map[string]float64{"chest_circumference": 96}), // diff 1 -> 1.0
	}
	s := NewScorer(records, metaFor(records))

	result, ok := s.BestSizeForItem(catalog.UserMeasurements{"chest_circumference": 95}, "item_1")
	if !ok {
		t.Fatal("BestSizeForItem() reported no fit")
	}
	if result.BestSize != "M" {
		t.Errorf("BestSize = %q, want %q (first row in input order)", result.BestSize, "M")
	}
}

func TestBestSize_ZeroOverlap(t *testing.T) {
	records := []catalog.SizeRecord{
		sizeRow("item_1", "t_shirt", "M", map[string]float64{"chest_circumference": 94}),
	}
	s := NewScorer(records, metaFor(records))

	// User has no measurement the row shares: no best size at all.
	if _, ok := s.BestSizeForItem(catalog.UserMeasurements{"shoe_length": 27}, "item_1"); ok {
		t.Error("BestSizeForItem() = ok for zero measurement overlap, want no result")
	}

	// And the item is excluded from ranked recommendations entirely.
	if got := s.FindBestFittingItems(catalog.UserMeasurements{"shoe_length": 27}, "t_shirt", 5, 0); len(got) != 0 {
		t.Errorf("zero-overlap ranking returned %d results, want 0", len(got))
	}
}

func TestBestSize_PartialOverlapBeatsNone(t *testing.T) {
	// First row shares nothing with the user; second row shares one field
	// and must win despite the earlier row's positional advantage.
	records := []catalog.SizeRecord{
		sizeRow("item_1", "jeans", "30", map[string]float64{"inseam_length": 78}),
		sizeRow("item_1", "jeans", "32", map[string]float64{"waist_circumference": 95}),
	}
	s := NewScorer(records, metaFor(records))

	result, ok := s.BestSizeForItem(catalog.UserMeasurements{"waist_circumference": 82}, "item_1")
	if !ok {
		t.Fatal("BestSizeForItem() reported no fit")
	}
	if result.BestSize != "32" {
		t.Errorf("BestSize = %q, want %q", result.BestSize, "32")
	}
	if result.Score != 0.1 {
		t.Errorf("Score = %v, want 0.1", result.Score)
	}
}

func TestAvailableSizes(t *testing.T) {
	records := []catalog.SizeRecord{
		sizeRow("item_1", "t_shirt", "S", nil),
		sizeRow("item_1", "t_shirt", "M", nil),
		sizeRow("item_1", "t_shirt", "M", nil),
		sizeRow("item_1", "t_shirt", "L", nil),
	}
	s := NewScorer(records, metaFor(records))

	got := s.AvailableSizes("item_1")
	want := []string{"S", "M", "L"}
	if len(got) != len(want) {
		t.Fatalf("AvailableSizes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AvailableSizes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
