package main

import (
	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/storage"
	"github.com/spf13/cobra"
)

var (
	importCatalogFile    string
	importSizesFile      string
	importEmbeddingsFile string
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importCatalogFile, "catalog", "", "Catalog JSONL file to import")
	importCmd.Flags().StringVar(&importSizesFile, "sizes", "", "Size chart JSONL file to import")
	importCmd.Flags().StringVar(&importEmbeddingsFile, "embeddings", "", "Embeddings JSONL file to import")
}

// ImportResponse reports what landed in the workspace.
type ImportResponse struct {
	Status      string `json:"status"`
	Items       int    `json:"items"`
	SizeRecords int    `json:"size_records"`
	Embeddings  int    `json:"embeddings"`
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import datasets into the repository",
	Long: `Import catalog, size chart, and embedding datasets into the repository.

Each provided file is validated line by line, then copied into the
.fitfast/ workspace. The SQLite catalog cache is rebuilt afterwards and
any saved engine snapshot is removed; rebuild it with 'ff snapshot build'.
Files not provided leave the corresponding dataset untouched.`,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	if importCatalogFile == "" && importSizesFile == "" && importEmbeddingsFile == "" {
		exitWithError(ExitError, "nothing to import: provide --catalog, --sizes, or --embeddings")
	}

	if importCatalogFile != "" {
		items, err := storage.ReadCatalog(importCatalogFile)
		if err != nil {
			exitWithError(ExitDataError, "validating catalog: %v", err)
		}
		if err := storage.WriteCatalog(config.CatalogPath(root), items); err != nil {
			exitWithError(ExitError, "writing catalog: %v", err)
		}
	}

	if importSizesFile != "" {
		records, err := storage.ReadSizeRecords(importSizesFile)
		if err != nil {
			exitWithError(ExitDataError, "validating sizes: %v", err)
		}
		if err := storage.WriteSizeRecords(config.SizesPath(root), records); err != nil {
			exitWithError(ExitError, "writing sizes: %v", err)
		}
	}

	if importEmbeddingsFile != "" {
		embeddings, err := storage.ReadEmbeddings(importEmbeddingsFile)
		if err != nil {
			exitWithError(ExitDataError, "validating embeddings: %v", err)
		}
		if err := storage.WriteEmbeddings(config.EmbeddingsPath(root), embeddings); err != nil {
			exitWithError(ExitError, "writing embeddings: %v", err)
		}
	}

	// The datasets changed; a saved snapshot no longer matches them
	if err := invalidateSnapshot(root); err != nil {
		exitWithError(ExitError, "invalidating snapshot: %v", err)
	}

	// Rebuild the catalog cache from whatever is now in the workspace
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening catalog cache: %v", err)
	}
	defer db.Close()

	itemCount, err := db.RebuildFromJSONL(config.CatalogPath(root))
	if err != nil {
		exitWithError(ExitError, "rebuilding catalog cache: %v", err)
	}

	sizeRecords, err := storage.ReadSizeRecords(config.SizesPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading sizes: %v", err)
	}
	embeddings, err := storage.ReadEmbeddings(config.EmbeddingsPath(root))
	if err != nil {
		exitWithError(ExitDataError, "reading embeddings: %v", err)
	}

	if humanOutput {
		outputHuman("Imported %d items, %d size records, %d embeddings\n",
			itemCount, len(sizeRecords), len(embeddings))
	} else {
		outputJSON(ImportResponse{
			Status:      "imported",
			Items:       itemCount,
			SizeRecords: len(sizeRecords),
			Embeddings:  len(embeddings),
		})
	}

	return nil
}
