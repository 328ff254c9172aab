package main

import (
	"errors"

	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/engine"
	"github.com/fitfast/fitfast/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotBuildCmd)
	snapshotCmd.AddCommand(snapshotInfoCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage the engine snapshot",
	Long: `Manage the gob-encoded engine snapshot under .fitfast/cache/.

The snapshot captures the raw datasets; derived indexes are rebuilt on
load, so a loaded snapshot answers queries identically to one built
from the JSONL files.`,
}

// SnapshotBuildResponse reports what went into the snapshot.
type SnapshotBuildResponse struct {
	Status      string `json:"status"`
	Path        string `json:"path"`
	Items       int    `json:"items"`
	SizeRecords int    `json:"size_records"`
	Embeddings  int    `json:"embeddings"`
}

var snapshotBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and save the engine snapshot from the JSONL datasets",
	RunE:  runSnapshotBuild,
}

func runSnapshotBuild(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	items, err := storage.ReadCatalog(config.CatalogPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading catalog: %v", err)
	}
	sizeRecords, err := storage.ReadSizeRecords(config.SizesPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading sizes: %v", err)
	}
	embeddings, err := storage.ReadEmbeddings(config.EmbeddingsPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading embeddings: %v", err)
	}

	eng, err := engine.New(items, sizeRecords, embeddings)
	if err != nil {
		exitWithError(ExitDataError, "building engine: %v", err)
	}

	path := config.SnapshotPath(root)
	if err := eng.Save(path); err != nil {
		exitWithError(ExitError, "saving snapshot: %v", err)
	}

	nItems, nSizes, nEmbeddings := eng.Counts()
	if humanOutput {
		outputHuman("Saved snapshot to %s (%d items, %d size records, %d embeddings)\n",
			path, nItems, nSizes, nEmbeddings)
	} else {
		outputJSON(SnapshotBuildResponse{
			Status:      "saved",
			Path:        path,
			Items:       nItems,
			SizeRecords: nSizes,
			Embeddings:  nEmbeddings,
		})
	}

	return nil
}

var snapshotInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show snapshot metadata",
	RunE:  runSnapshotInfo,
}

func runSnapshotInfo(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	info, err := engine.Inspect(config.SnapshotPath(root))
	if err != nil {
		if errors.Is(err, engine.ErrSnapshotNotFound) {
			exitWithError(ExitNoSnapshot, "no snapshot found; run 'ff snapshot build' first")
		}
		exitWithError(ExitError, "inspecting snapshot: %v", err)
	}

	if humanOutput {
		outputHuman("version:      %d\n", info.Version)
		outputHuman("created:      %s\n", info.CreatedAt.Format("2006-01-02 15:04:05"))
		outputHuman("items:        %d\n", info.Items)
		outputHuman("size records: %d\n", info.SizeRecords)
		outputHuman("embeddings:   %d\n", info.Embeddings)
		outputHuman("size:         %d bytes\n", info.SizeBytes)
	} else {
		outputJSON(info)
	}

	return nil
}
