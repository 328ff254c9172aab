package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fitfast/fitfast/internal/catalog"
)

// setupTestDB creates a test database and JSONL file with test data
func setupTestDB(t *testing.T) (*DB, string, func()) {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	jsonlPath := filepath.Join(tmpDir, "catalog.jsonl")

	items := []catalog.Item{
		{
			ID:          "tee1",
			Name:        "Basic Cotton Tee",
			Price:       19.99,
			GarmentType: "t_shirt",
			Store:       "Basics Co",
			Description: "A soft everyday t-shirt.",
			Stock:       12,
		},
		{
			ID:          "jeans1",
			Name:        "Slim Fit Jeans",
			Price:       59.99,
			GarmentType: "jeans",
			Store:       "Denim World",
			Description: "Classic slim jeans in dark wash.",
			Stock:       5,
		},
		{
			ID:          "blazer1",
			Name:        "Wool Blazer",
			Price:       189.00,
			GarmentType: "blazer",
			Store:       "Tailor House",
			Description: "Structured wool blazer for the office.",
			Stock:       0,
		},
	}

	if err := WriteCatalog(jsonlPath, items); err != nil {
		t.Fatalf("Failed to write test JSONL: %v", err)
	}

	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	if _, err := db.RebuildFromJSONL(jsonlPath); err != nil {
		db.Close()
		t.Fatalf("Failed to rebuild DB: %v", err)
	}

	cleanup := func() {
		db.Close()
	}

	return db, tmpDir, cleanup
}

func TestOpenDB_CreatesSchema(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("OpenDB() did not create database file")
	}
}

func TestDB_RebuildFromJSONL(t *testing.T) {
	db, tmpDir, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}

	// Rebuild overwrites previous contents
	jsonlPath := filepath.Join(tmpDir, "catalog.jsonl")
	newItems := []catalog.Item{
		{ID: "dress1", Name: "Summer Dress", Price: 45, GarmentType: "dress"},
	}
	if err := WriteCatalog(jsonlPath, newItems); err != nil {
		t.Fatalf("WriteCatalog() error = %v", err)
	}

	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("RebuildFromJSONL() error = %v", err)
	}
	if n != 1 {
		t.Errorf("RebuildFromJSONL() = %d, want 1", n)
	}

	count, err = db.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("After rebuild, Count() = %d, want 1", count)
	}
}

func TestDB_GetByID(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	item, err := db.GetByID("tee1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if item == nil {
		t.Fatal("GetByID() returned nil for existing item")
	}
	if item.Name != "Basic Cotton Tee" {
		t.Errorf("Name = %q, want Basic Cotton Tee", item.Name)
	}
	if item.Price != 19.99 {
		t.Errorf("Price = %v, want 19.99", item.Price)
	}
	if item.GarmentType != "t_shirt" {
		t.Errorf("GarmentType = %q, want t_shirt", item.GarmentType)
	}

	missing, err := db.GetByID("nope")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if missing != nil {
		t.Errorf("GetByID() for missing item = %+v, want nil", missing)
	}
}

func TestDB_ListWithFilters_Category(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	// jeans is the only bottom in the fixture
	items, err := db.ListWithFilters(ItemFilters{Category: "bottom"}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListWithFilters(bottom) returned %d items, want 1", len(items))
	}
	if items[0].ID != "jeans1" {
		t.Errorf("ListWithFilters(bottom)[0].ID = %q, want jeans1", items[0].ID)
	}
}

func TestDB_ListWithFilters_Formality(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	// The blazer is the only formal item in the fixture
	items, err := db.ListWithFilters(ItemFilters{Formality: "formal"}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "blazer1" {
		t.Errorf("ListWithFilters(formal) = %v, want [blazer1]", itemIDs(items))
	}
}

func TestDB_ListWithFilters_MaxPrice(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	items, err := db.ListWithFilters(ItemFilters{MaxPrice: 60}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListWithFilters(max 60) returned %d items, want 2", len(items))
	}
	// Ordered by ID
	if items[0].ID != "jeans1" || items[1].ID != "tee1" {
		t.Errorf("ListWithFilters(max 60) = %v, want [jeans1 tee1]", itemIDs(items))
	}
}

func TestDB_ListWithFilters_Store(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	items, err := db.ListWithFilters(ItemFilters{Store: "Denim"}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "jeans1" {
		t.Errorf("ListWithFilters(store Denim) = %v, want [jeans1]", itemIDs(items))
	}
}

func TestDB_ListWithFilters_InStock(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	items, err := db.ListWithFilters(ItemFilters{InStock: true}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("ListWithFilters(in stock) returned %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.ID == "blazer1" {
			t.Error("ListWithFilters(in stock) included out-of-stock blazer1")
		}
	}
}

func TestDB_ListWithFilters_Keyword(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	items, err := db.ListWithFilters(ItemFilters{Keyword: "wool"}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "blazer1" {
		t.Errorf("ListWithFilters(keyword wool) = %v, want [blazer1]", itemIDs(items))
	}
}

func TestDB_ListWithFilters_Combined(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	items, err := db.ListWithFilters(ItemFilters{Category: "top", MaxPrice: 100}, 0)
	if err != nil {
		t.Fatalf("ListWithFilters() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != "tee1" {
		t.Errorf("ListWithFilters(top, max 100) = %v, want [tee1]", itemIDs(items))
	}
}

func TestDB_ListAll_Limit(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	items, err := db.ListAll(2)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("ListAll(2) returned %d items, want 2", len(items))
	}
}

func TestDB_CountByCategory(t *testing.T) {
	db, _, cleanup := setupTestDB(t)
	defer cleanup()

	counts, err := db.CountByCategory()
	if err != nil {
		t.Fatalf("CountByCategory() error = %v", err)
	}
	if counts["top"] != 1 {
		t.Errorf("counts[top] = %d, want 1", counts["top"])
	}
	if counts["bottom"] != 1 {
		t.Errorf("counts[bottom] = %d, want 1", counts["bottom"])
	}
	if counts["outerwear"] != 1 {
		t.Errorf("counts[outerwear] = %d, want 1", counts["outerwear"])
	}
}

func itemIDs(items []catalog.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
