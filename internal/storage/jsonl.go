// Package storage handles data persistence in JSONL and SQLite formats.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fitfast/fitfast/internal/catalog"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
// This constant is shared across all JSONL file readers.
const MaxJSONLLineCapacity = 1024 * 1024

// ReadCatalog reads all catalog items from a JSONL file. Items without an
// ID are assigned a positional one, matching the order they appear in.
func ReadCatalog(path string) ([]catalog.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Missing file returns empty slice
		}
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	var items []catalog.Item
	scanner := bufio.NewScanner(f)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var item catalog.Item
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("parsing catalog line %d: %w", lineNum, err)
		}
		if err := item.ValidateForLoad(); err != nil {
			return nil, fmt.Errorf("invalid item at catalog line %d: %w", lineNum, err)
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("item_%d", len(items)+1)
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return items, nil
}

// WriteCatalog writes all catalog items to a JSONL file, replacing existing content.
func WriteCatalog(path string, items []catalog.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	for i, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding item %d: %w", i, err)
		}

		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing item %d: %w", i, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}

// AppendItem adds a catalog item to the end of a JSONL file.
func AppendItem(path string, item catalog.Item) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening catalog file for append: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding item: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing item: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}

// FindItemByID searches for a catalog item by ID.
func FindItemByID(items []catalog.Item, id string) (int, bool) {
	for i, item := range items {
		if item.ID == id {
			return i, true
		}
	}
	return -1, false
}

// GenerateUniqueItemID returns an ID that doesn't conflict with existing items.
// If the base ID exists, appends -2, -3, etc.
func GenerateUniqueItemID(items []catalog.Item, baseID string) string {
	if _, found := FindItemByID(items, baseID); !found {
		return baseID
	}

	// Start at 2: baseID is taken, so first duplicate becomes baseID-2
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", baseID, i)
		if _, found := FindItemByID(items, candidate); !found {
			return candidate
		}
	}
}

// ReadSizeRecords reads all size records from a JSONL file.
func ReadSizeRecords(path string) ([]catalog.SizeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening sizes file: %w", err)
	}
	defer f.Close()

	var records []catalog.SizeRecord
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec catalog.SizeRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("parsing sizes line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sizes file: %w", err)
	}

	return records, nil
}

// WriteSizeRecords writes all size records to a JSONL file, replacing existing content.
func WriteSizeRecords(path string, records []catalog.SizeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating sizes file: %w", err)
	}
	defer f.Close()

	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding size record %d: %w", i, err)
		}

		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing size record %d: %w", i, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}

// embeddingLine is the JSONL form of one item embedding.
type embeddingLine struct {
	ItemID string    `json:"item_id"`
	Vector []float64 `json:"vector"`
}

// ReadEmbeddings reads item embeddings from a JSONL file. A line missing
// its item_id or vector is a dataset defect and fails the whole read.
func ReadEmbeddings(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]float64{}, nil
		}
		return nil, fmt.Errorf("opening embeddings file: %w", err)
	}
	defer f.Close()

	embeddings := make(map[string][]float64)
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var el embeddingLine
		if err := json.Unmarshal(line, &el); err != nil {
			return nil, fmt.Errorf("parsing embeddings line %d: %w", lineNum, err)
		}
		if el.ItemID == "" {
			return nil, fmt.Errorf("embedding at line %d has no item_id", lineNum)
		}
		if len(el.Vector) == 0 {
			return nil, fmt.Errorf("embedding at line %d has an empty vector", lineNum)
		}
		embeddings[el.ItemID] = el.Vector
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading embeddings file: %w", err)
	}

	return embeddings, nil
}

// WriteEmbeddings writes item embeddings to a JSONL file in item-ID order
// so repeated writes produce identical files.
func WriteEmbeddings(path string, embeddings map[string][]float64) error {
	ids := make([]string, 0, len(embeddings))
	for id := range embeddings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating embeddings file: %w", err)
	}
	defer f.Close()

	for _, id := range ids {
		data, err := json.Marshal(embeddingLine{ItemID: id, Vector: embeddings[id]})
		if err != nil {
			return fmt.Errorf("encoding embedding %s: %w", id, err)
		}

		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing embedding %s: %w", id, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}
