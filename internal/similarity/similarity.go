// Package similarity provides cosine-similarity nearest-neighbor lookup
// over precomputed item embedding vectors.
package similarity

import (
	"math"
	"sort"

	"github.com/fitfast/fitfast/internal/classify"
)

// cosineEpsilon stabilizes the denominator so identical zero vectors
// compare as dissimilar instead of dividing by zero. The value is part of
// the scoring contract; boundary behavior depends on it.
const cosineEpsilon = 1e-8

// Result is one similar item with its cosine similarity to the target.
type Result struct {
	Item       classify.ItemMetadata `json:"item"`
	Similarity float64               `json:"similarity"`
}

// Index answers nearest-neighbor queries over item embeddings. It is
// built once and read-only afterwards; concurrent readers need no
// locking. Embedding coverage is partial: items without a vector simply
// cannot anchor or appear in similarity results.
type Index struct {
	embeddings map[string][]float64
	meta       map[string]classify.ItemMetadata

	// ids holds the embedded item IDs sorted, so equal similarities
	// rank deterministically.
	ids []string
}

// NewIndex builds a similarity index from item embeddings and classified
// item metadata.
func NewIndex(embeddings map[string][]float64, meta map[string]classify.ItemMetadata) *Index {
	ids := make([]string, 0, len(embeddings))
	for id := range embeddings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Index{embeddings: embeddings, meta: meta, ids: ids}
}

// Len returns the number of embedded items.
func (ix *Index) Len() int {
	return len(ix.embeddings)
}

// HasItem reports whether an item has an embedding.
func (ix *Index) HasItem(itemID string) bool {
	_, ok := ix.embeddings[itemID]
	return ok
}

// CosineSimilarity computes dot(a,b) / (|a|*|b| + epsilon). Mismatched
// lengths score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + cosineEpsilon)
}

// FindSimilar returns up to n items most similar to the given item,
// sorted by similarity descending. Items below minSimilarity are
// dropped; with sameCategory set, items classified into a different
// category than the target are skipped. An item without an embedding
// yields an empty result, not an error.
func (ix *Index) FindSimilar(itemID string, n int, sameCategory bool, minSimilarity float64) []Result {
	target, ok := ix.embeddings[itemID]
	if !ok {
		return nil
	}
	targetCategory := ix.meta[itemID].Category

	results := make([]Result, 0, len(ix.ids))
	for _, id := range ix.ids {
		if id == itemID {
			continue
		}
		meta := ix.meta[id]
		if sameCategory && meta.Category != targetCategory {
			continue
		}

		sim := CosineSimilarity(target, ix.embeddings[id])
		if sim < minSimilarity {
			continue
		}
		results = append(results, Result{Item: meta, Similarity: sim})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if n > 0 && len(results) > n {
		results = results[:n]
	}
	return results
}
