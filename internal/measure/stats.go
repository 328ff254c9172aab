// Package measure summarizes raw per-size measurement records into
// per-garment-type descriptive statistics.
package measure

import (
	"math"
	"sort"

	"github.com/fitfast/fitfast/internal/catalog"
)

// FieldStats holds descriptive statistics for one measurement field
// within one size of one garment type.
type FieldStats struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`

	// StdDev is the sample standard deviation (N-1 denominator).
	// Nil when the size has fewer than 2 observations of the field;
	// callers must tolerate the absence.
	StdDev *float64 `json:"std_dev,omitempty"`
}

// GarmentTypeStatistics summarizes all size records of one garment type.
type GarmentTypeStatistics struct {
	GarmentType string `json:"garment_type"`

	// ItemCount is the number of distinct items of this type.
	ItemCount int `json:"item_count"`

	// Sizes holds the distinct size labels in lexical order. This is a
	// documented limitation: "L" sorts before "M" and "S"; the labels
	// are not ordered semantically.
	Sizes []string `json:"sizes"`

	// CommonMeasurements lists the measurement fields present (non-null)
	// in more than half of this type's records, sorted by name.
	CommonMeasurements []string `json:"common_measurements"`

	// BySize maps size label -> measurement field -> statistics.
	// Only common measurement fields appear here.
	BySize map[string]map[string]FieldStats `json:"by_size,omitempty"`
}

// Index answers statistics queries by garment type. It is built once from
// the loaded size records and never mutated afterwards, so concurrent
// readers need no locking.
type Index struct {
	byType map[string]GarmentTypeStatistics
}

// Build groups size records by garment type and computes per-type
// statistics. Records with an empty garment type are grouped under "".
func Build(records []catalog.SizeRecord) *Index {
	groups := make(map[string][]catalog.SizeRecord)
	for _, rec := range records {
		groups[rec.GarmentType] = append(groups[rec.GarmentType], rec)
	}

	idx := &Index{byType: make(map[string]GarmentTypeStatistics, len(groups))}
	for garmentType, rows := range groups {
		idx.byType[garmentType] = summarize(garmentType, rows)
	}
	return idx
}

// summarize computes the statistics for one garment-type group.
func summarize(garmentType string, rows []catalog.SizeRecord) GarmentTypeStatistics {
	stats := GarmentTypeStatistics{GarmentType: garmentType}

	items := make(map[string]bool)
	sizes := make(map[string]bool)
	fieldCounts := make(map[string]int)
	for _, rec := range rows {
		items[rec.ItemID] = true
		sizes[rec.Size] = true
		for field := range rec.Measurements {
			fieldCounts[field]++
		}
	}
	stats.ItemCount = len(items)

	stats.Sizes = make([]string, 0, len(sizes))
	for size := range sizes {
		stats.Sizes = append(stats.Sizes, size)
	}
	sort.Strings(stats.Sizes)

	// A field is common when its non-null count exceeds half the rows.
	for field, count := range fieldCounts {
		if count*2 > len(rows) {
			stats.CommonMeasurements = append(stats.CommonMeasurements, field)
		}
	}
	sort.Strings(stats.CommonMeasurements)

	if len(stats.CommonMeasurements) == 0 {
		return stats
	}

	stats.BySize = make(map[string]map[string]FieldStats, len(stats.Sizes))
	for _, size := range stats.Sizes {
		perField := make(map[string]FieldStats)
		for _, field := range stats.CommonMeasurements {
			var values []float64
			for _, rec := range rows {
				if rec.Size != size {
					continue
				}
				if v, ok := rec.Measurements[field]; ok {
					values = append(values, v)
				}
			}
			if len(values) == 0 {
				continue
			}
			perField[field] = describe(values)
		}
		if len(perField) > 0 {
			stats.BySize[size] = perField
		}
	}
	return stats
}

// describe computes min/max/mean/sample-stddev for a non-empty sample.
func describe(values []float64) FieldStats {
	fs := FieldStats{Count: len(values), Min: values[0], Max: values[0]}

	var sum float64
	for _, v := range values {
		sum += v
		if v < fs.Min {
			fs.Min = v
		}
		if v > fs.Max {
			fs.Max = v
		}
	}
	fs.Mean = sum / float64(len(values))

	if len(values) >= 2 {
		var sq float64
		for _, v := range values {
			d := v - fs.Mean
			sq += d * d
		}
		sd := math.Sqrt(sq / float64(len(values)-1))
		fs.StdDev = &sd
	}
	return fs
}

// ByGarmentType returns the statistics for a garment type. Unknown types
// yield the zero-value structure, not an error.
func (ix *Index) ByGarmentType(garmentType string) GarmentTypeStatistics {
	if stats, ok := ix.byType[garmentType]; ok {
		return stats
	}
	return GarmentTypeStatistics{GarmentType: garmentType}
}

// GarmentTypes returns all known garment types, sorted.
func (ix *Index) GarmentTypes() []string {
	types := make([]string, 0, len(ix.byType))
	for garmentType := range ix.byType {
		types = append(types, garmentType)
	}
	sort.Strings(types)
	return types
}
