package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fitfast/fitfast/internal/catalog"
	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/engine"
	"github.com/fitfast/fitfast/internal/storage"
)

// mustFindRepository resolves the repository root or exits.
func mustFindRepository() string {
	return config.MustResolveRoot()
}

// loadEngine builds an engine from the repository's JSONL datasets.
// A saved snapshot is used instead when it is at least as new as every
// dataset file; a stale snapshot is skipped. Any failure reading an
// existing snapshot is fatal, never silently papered over by a rebuild.
func loadEngine(root string) (*engine.Engine, error) {
	if snapshotFresh(root) {
		eng, err := engine.Load(config.SnapshotPath(root))
		switch {
		case err == nil:
			return eng, nil
		case errors.Is(err, engine.ErrSnapshotNotFound):
			// Removed between the freshness check and the open; rebuild
		default:
			return nil, err
		}
	}

	items, err := storage.ReadCatalog(config.CatalogPath(root))
	if err != nil {
		return nil, err
	}
	sizeRecords, err := storage.ReadSizeRecords(config.SizesPath(root))
	if err != nil {
		return nil, err
	}
	embeddings, err := storage.ReadEmbeddings(config.EmbeddingsPath(root))
	if err != nil {
		return nil, err
	}
	return engine.New(items, sizeRecords, embeddings)
}

// snapshotFresh reports whether a saved snapshot exists and none of the
// dataset files were modified after it was written.
func snapshotFresh(root string) bool {
	snap, err := os.Stat(config.SnapshotPath(root))
	if err != nil {
		return false
	}
	for _, path := range []string{
		config.CatalogPath(root),
		config.SizesPath(root),
		config.EmbeddingsPath(root),
	} {
		data, err := os.Stat(path)
		if err != nil {
			continue
		}
		if data.ModTime().After(snap.ModTime()) {
			return false
		}
	}
	return true
}

// invalidateSnapshot removes a saved snapshot. Commands that rewrite
// the datasets call this so queries never answer from the old data.
func invalidateSnapshot(root string) error {
	if err := os.Remove(config.SnapshotPath(root)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	return nil
}

// mustLoadEngine builds the engine or exits with a data error.
func mustLoadEngine(root string) *engine.Engine {
	eng, err := loadEngine(root)
	if err != nil {
		exitWithError(ExitDataError, "loading engine: %v", err)
	}
	return eng
}

// parseMeasurementsFlag turns --measurements values into user measurements.
// A single value naming an existing file is parsed as a JSON object;
// otherwise every value must be a key=value pair.
func parseMeasurementsFlag(values []string) (catalog.UserMeasurements, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 {
		if data, err := os.ReadFile(values[0]); err == nil {
			return catalog.ParseUserMeasurementsJSON(data)
		}
	}
	return catalog.ParseUserMeasurementPairs(values)
}
