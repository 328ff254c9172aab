package measure

import (
	"math"
	"reflect"
	"testing"

	"github.com/fitfast/fitfast/internal/catalog"
)

func rec(itemID, garmentType, size string, m map[string]float64) catalog.SizeRecord {
	return catalog.SizeRecord{ItemID: itemID, GarmentType: garmentType, Size: size, Measurements: m}
}

func TestBuild_CommonMeasurements(t *testing.T) {
	// chest present in 3/4 rows (common), sleeve in 2/4 (not common:
	// the count must exceed half, not merely reach it).
	records := []catalog.SizeRecord{
		rec("a", "shirt", "S", map[string]float64{"chest_circumference": 90, "sleeve_length": 60}),
		rec("a", "shirt", "M", map[string]float64{"chest_circumference": 94, "sleeve_length": 62}),
		rec("b", "shirt", "S", map[string]float64{"chest_circumference": 91}),
		rec("b", "shirt", "M", map[string]float64{}),
	}

	stats := Build(records).ByGarmentType("shirt")

	if got, want := stats.CommonMeasurements, []string{"chest_circumference"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CommonMeasurements = %v, want %v", got, want)
	}
	if stats.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", stats.ItemCount)
	}
}

func TestBuild_SizesLexicallySorted(t *testing.T) {
	records := []catalog.SizeRecord{
		rec("a", "shirt", "S", nil),
		rec("a", "shirt", "M", nil),
		rec("a", "shirt", "L", nil),
	}

	stats := Build(records).ByGarmentType("shirt")

	// Lexical order, not the semantic S < M < L ordering.
	want := []string{"L", "M", "S"}
	if !reflect.DeepEqual(stats.Sizes, want) {
		t.Errorf("Sizes = %v, want %v", stats.Sizes, want)
	}
}

func TestBuild_PerSizeStats(t *testing.T) {
	records := []catalog.SizeRecord{
		rec("a", "jeans", "32", map[string]float64{"waist_circumference": 80}),
		rec("b", "jeans", "32", map[string]float64{"waist_circumference": 84}),
		rec("c", "jeans", "34", map[string]float64{"waist_circumference": 88}),
	}

	stats := Build(records).ByGarmentType("jeans")

	fs, ok := stats.BySize["32"]["waist_circumference"]
	if !ok {
		t.Fatal("missing stats for size 32 waist_circumference")
	}
	if fs.Min != 80 || fs.Max != 84 || fs.Mean != 82 || fs.Count != 2 {
		t.Errorf("size 32 stats = %+v, want min 80 max 84 mean 82 count 2", fs)
	}
	if fs.StdDev == nil {
		t.Fatal("size 32 StdDev = nil, want sample stddev")
	}
	// Sample stddev of {80, 84} with N-1 denominator
	if want := math.Sqrt(8); math.Abs(*fs.StdDev-want) > 1e-9 {
		t.Errorf("size 32 StdDev = %v, want %v", *fs.StdDev, want)
	}

	// A size with a single observation has min/max/mean but no stddev.
	single, ok := stats.BySize["34"]["waist_circumference"]
	if !ok {
		t.Fatal("missing stats for size 34 waist_circumference")
	}
	if single.StdDev != nil {
		t.Errorf("size 34 StdDev = %v, want nil for a single observation", *single.StdDev)
	}
	if single.Mean != 88 {
		t.Errorf("size 34 Mean = %v, want 88", single.Mean)
	}
}

func TestByGarmentType_Unknown(t *testing.T) {
	idx := Build(nil)

	stats := idx.ByGarmentType("parka")
	if stats.GarmentType != "parka" {
		t.Errorf("GarmentType = %q, want %q", stats.GarmentType, "parka")
	}
	if stats.ItemCount != 0 || len(stats.Sizes) != 0 || len(stats.CommonMeasurements) != 0 {
		t.Errorf("unknown type should yield empty statistics, got %+v", stats)
	}
}

func TestGarmentTypes(t *testing.T) {
	records := []catalog.SizeRecord{
		rec("a", "shirt", "S", nil),
		rec("b", "jeans", "32", nil),
	}

	got := Build(records).GarmentTypes()
	want := []string{"jeans", "shirt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GarmentTypes() = %v, want %v", got, want)
	}
}
