// Package main provides the ff CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ff",
	Short: "Wardrobe fit and outfit matching engine",
	Long: `ff scores garment fit against user measurements, finds visually similar
items via embeddings, and assembles themed outfits from a catalog.

Datasets live in git-versionable JSONL format with an ephemeral SQLite
cache for fast catalog queries. All commands output JSON by default for
easy integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
