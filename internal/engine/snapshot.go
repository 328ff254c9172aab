package engine

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fitfast/fitfast/internal/catalog"
)

// Errors returned by snapshot persistence.
var (
	ErrSnapshotNotFound   = errors.New("engine snapshot not found")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)

// CurrentSnapshotVersion is the snapshot format version, checked on
// load. Increment on breaking changes to the archived types.
const CurrentSnapshotVersion = 1

// snapshotArchive is the gob-encoded form of an engine snapshot: the raw
// datasets plus format metadata. Derived structures (classification,
// statistics, indexes) are rebuilt on load rather than persisted, so a
// load always answers queries exactly as the engine that saved it.
type snapshotArchive struct {
	Version     int
	CreatedAt   time.Time
	Items       []catalog.Item
	SizeRecords []catalog.SizeRecord
	Embeddings  map[string][]float64
}

// SnapshotInfo describes a saved snapshot without loading the engine.
type SnapshotInfo struct {
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	Items       int       `json:"items"`
	SizeRecords int       `json:"size_records"`
	Embeddings  int       `json:"embeddings"`
	SizeBytes   int64     `json:"size_bytes"`
}

// Save persists the engine's datasets to path using gob encoding,
// writing to a temp file and renaming for atomicity.
func (e *Engine) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	archive := snapshotArchive{
		Version:     CurrentSnapshotVersion,
		CreatedAt:   time.Now(),
		Items:       e.items,
		SizeRecords: e.sizeRecords,
		Embeddings:  e.embeddings,
	}
	if err := gob.NewEncoder(f).Encode(archive); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing snapshot file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Load reads a saved snapshot and rebuilds the engine from it. A load
// failure is fatal for the caller's initialization; it is never safe to
// serve queries from a partially loaded snapshot.
func Load(path string) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var archive snapshotArchive
	if err := gob.NewDecoder(f).Decode(&archive); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if archive.Version != CurrentSnapshotVersion {
		return nil, fmt.Errorf("%w: got %d, want %d (rebuild with 'ff snapshot build')",
			ErrUnsupportedVersion, archive.Version, CurrentSnapshotVersion)
	}

	return New(archive.Items, archive.SizeRecords, archive.Embeddings)
}

// Inspect reads snapshot metadata without building an engine.
func Inspect(path string) (SnapshotInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SnapshotInfo{}, ErrSnapshotNotFound
		}
		return SnapshotInfo{}, fmt.Errorf("inspecting snapshot: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return SnapshotInfo{}, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	var archive snapshotArchive
	if err := gob.NewDecoder(f).Decode(&archive); err != nil {
		return SnapshotInfo{}, fmt.Errorf("decoding snapshot: %w", err)
	}

	return SnapshotInfo{
		Version:     archive.Version,
		CreatedAt:   archive.CreatedAt,
		Items:       len(archive.Items),
		SizeRecords: len(archive.SizeRecords),
		Embeddings:  len(archive.Embeddings),
		SizeBytes:   stat.Size(),
	}, nil
}
