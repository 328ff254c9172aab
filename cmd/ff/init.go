package main

import (
	"os"

	"github.com/fitfast/fitfast/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new fitfast repository",
	Long: `Initialize a new fitfast repository in the current directory.

Creates:
  .fitfast/
  ├── catalog.jsonl     # Empty dataset
  ├── sizes.jsonl       # Empty dataset
  ├── embeddings.jsonl  # Empty dataset
  ├── config.json       # Default config
  └── cache/            # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a fitfast repository")
	}

	if err := os.MkdirAll(config.FitfastPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .fitfast directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	for _, path := range []string{
		config.CatalogPath(root),
		config.SizesPath(root),
		config.EmbeddingsPath(root),
	} {
		f, err := os.Create(path)
		if err != nil {
			exitWithError(ExitError, "creating %s: %v", path, err)
		}
		f.Close()
	}

	cfg := &config.Config{
		DefaultTheme:    "casual_everyday",
		DefaultMaxItems: 4,
	}
	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "creating config.json: %v", err)
	}

	if humanOutput {
		outputHuman("Initialized fitfast repository in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
