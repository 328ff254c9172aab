package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/classify"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectItemFields contains the standard field list for SELECT queries.
const selectItemFields = `id, name, price, raw_category, store, description,
	stock, garment_type, formality, category, derived_formality`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set pragmas for better performance
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	// Create schema if needed
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main catalog table. category and derived_formality are the
		-- classifier outputs; raw_category and formality hold whatever
		-- the source data declared.
		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			price REAL NOT NULL,
			raw_category TEXT,
			store TEXT,
			description TEXT,
			stock INTEGER,
			garment_type TEXT,
			formality TEXT,
			category TEXT NOT NULL,
			derived_formality TEXT NOT NULL
		);

		-- Indexes for the common item filters
		CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
		CREATE INDEX IF NOT EXISTS idx_items_garment_type ON items(garment_type) WHERE garment_type IS NOT NULL AND garment_type != '';
		CREATE INDEX IF NOT EXISTS idx_items_store ON items(store) WHERE store IS NOT NULL AND store != '';

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS items_fts USING fts5(
			id,
			name,
			description,
			garment_type
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a catalog JSONL file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	items, err := ReadCatalog(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	if err := d.RebuildFromItems(items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// RebuildFromItems clears the database and reinserts the given items,
// classifying each one on the way in.
func (d *DB) RebuildFromItems(items []catalog.Item) error {
	if _, err := d.db.Exec("DELETE FROM items"); err != nil {
		return fmt.Errorf("clearing items table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM items_fts"); err != nil {
		return fmt.Errorf("clearing items_fts table: %w", err)
	}

	itemsStmt, err := d.db.Prepare(`
		INSERT INTO items (
			id, name, price, raw_category, store, description,
			stock, garment_type, formality, category, derived_formality
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing items insert: %w", err)
	}
	defer itemsStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO items_fts (id, name, description, garment_type)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, item := range items {
		meta := classify.Classify(item)

		_, err = itemsStmt.Exec(
			item.ID, item.Name, item.Price,
			nullableStringValue(item.Category), nullableStringValue(item.Store),
			nullableStringValue(item.Description), item.Stock,
			nullableStringValue(item.GarmentType), nullableStringValue(item.Formality),
			string(meta.Category), string(meta.Formality),
		)
		if err != nil {
			return fmt.Errorf("inserting item %s: %w", item.ID, err)
		}

		_, err = ftsStmt.Exec(item.ID, item.Name, item.Description, item.GarmentType)
		if err != nil {
			return fmt.Errorf("inserting fts for %s: %w", item.ID, err)
		}
	}

	return nil
}

// GetByID retrieves an item by its ID.
func (d *DB) GetByID(id string) (*catalog.Item, error) {
	row := d.db.QueryRow(`SELECT `+selectItemFields+` FROM items WHERE id = ?`, id)
	item, _, err := scanItem(row)
	return item, err
}

// ItemFilters contains optional filters for ListWithFilters.
type ItemFilters struct {
	Keyword     string  // General keyword search over name, description, garment type (FTS)
	Category    string  // Derived category (exact match)
	GarmentType string  // Declared garment type (exact match)
	Formality   string  // Derived formality (exact match)
	Store       string  // Store name (SQL LIKE, case-insensitive)
	MaxPrice    float64 // Maximum price (0 = no maximum)
	InStock     bool    // Only items with positive stock
}

// ListWithFilters returns items matching ALL specified criteria (AND logic),
// ordered by ID for stable output.
func (d *DB) ListWithFilters(filters ItemFilters, limit int) ([]catalog.Item, error) {
	var args []interface{}

	var query string
	if filters.Keyword != "" {
		query = `SELECT ` + selectItemFields + `
			FROM items
			WHERE id IN (SELECT id FROM items_fts WHERE items_fts MATCH ?)`
		args = append(args, prepareFTSQuery(filters.Keyword))
	} else {
		query = `SELECT ` + selectItemFields + ` FROM items WHERE 1=1`
	}

	if filters.Category != "" {
		query += " AND category = ?"
		args = append(args, filters.Category)
	}
	if filters.GarmentType != "" {
		query += " AND garment_type = ?"
		args = append(args, filters.GarmentType)
	}
	if filters.Formality != "" {
		query += " AND derived_formality = ?"
		args = append(args, filters.Formality)
	}
	if filters.Store != "" {
		query += " AND store LIKE ?"
		args = append(args, "%"+filters.Store+"%")
	}
	if filters.MaxPrice > 0 {
		query += " AND price <= ?"
		args = append(args, filters.MaxPrice)
	}
	if filters.InStock {
		query += " AND stock > 0"
	}

	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items with filters: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListAll returns all items ordered by ID, optionally limited.
func (d *DB) ListAll(limit int) ([]catalog.Item, error) {
	return d.ListWithFilters(ItemFilters{}, limit)
}

// Count returns the total number of items.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	return count, err
}

// CountByCategory returns item counts keyed by derived category.
func (d *DB) CountByCategory() (map[string]int, error) {
	rows, err := d.db.Query("SELECT category, COUNT(*) FROM items GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("counting by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanItem scans one row into an item plus its derived metadata.
func scanItem(s scanner) (*catalog.Item, *classify.ItemMetadata, error) {
	var item catalog.Item
	var rawCategory, store, description, garmentType, formality sql.NullString
	var category, derivedFormality string

	err := s.Scan(
		&item.ID, &item.Name, &item.Price, &rawCategory, &store, &description,
		&item.Stock, &garmentType, &formality, &category, &derivedFormality,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	item.Category = rawCategory.String
	item.Store = store.String
	item.Description = description.String
	item.GarmentType = garmentType.String
	item.Formality = formality.String

	meta := classify.ItemMetadata{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		GarmentType: item.GarmentType,
		Store:       item.Store,
		Category:    classify.Category(category),
		Formality:   classify.Formality(derivedFormality),
	}
	return &item, &meta, nil
}

func scanItems(rows *sql.Rows) ([]catalog.Item, error) {
	var items []catalog.Item
	for rows.Next() {
		item, _, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, *item)
		}
	}
	return items, rows.Err()
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
