// Package config handles repository configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .fitfast/config.json.
type Config struct {
	DefaultTheme    string  `json:"default_theme,omitempty"`     // Theme used when outfit commands omit --theme
	DefaultMaxItems int     `json:"default_max_items,omitempty"` // Item cap for outfit assembly
	DefaultBudget   float64 `json:"default_budget,omitempty"`    // Price ceiling for outfit assembly (0 = none)
	ServerAddr      string  `json:"server_addr,omitempty"`       // Listen address for ff serve
}

const (
	FitfastDir     = ".fitfast"
	ConfigFile     = "config.json"
	CatalogFile    = "catalog.jsonl"
	SizesFile      = "sizes.jsonl"
	EmbeddingsFile = "embeddings.jsonl"
	CacheDir       = "cache"
	DBFile         = "catalog.db"
	SnapshotFile   = "engine.gob"
)

// FitfastPath returns the path to the .fitfast directory from a root path.
func FitfastPath(root string) string {
	return filepath.Join(root, FitfastDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, FitfastDir, ConfigFile)
}

// CatalogPath returns the path to catalog.jsonl from a root path.
func CatalogPath(root string) string {
	return filepath.Join(root, FitfastDir, CatalogFile)
}

// SizesPath returns the path to sizes.jsonl from a root path.
func SizesPath(root string) string {
	return filepath.Join(root, FitfastDir, SizesFile)
}

// EmbeddingsPath returns the path to embeddings.jsonl from a root path.
func EmbeddingsPath(root string) string {
	return filepath.Join(root, FitfastDir, EmbeddingsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, FitfastDir, CacheDir)
}

// DBPath returns the path to catalog.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, FitfastDir, CacheDir, DBFile)
}

// SnapshotPath returns the path to engine.gob from a root path.
func SnapshotPath(root string) string {
	return filepath.Join(root, FitfastDir, CacheDir, SnapshotFile)
}

// IsRepository checks if the given path contains a fitfast repository.
func IsRepository(root string) bool {
	info, err := os.Stat(FitfastPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a fitfast repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a fitfast repository (no .fitfast directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root.
// A missing config file yields the zero config, not an error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ValidateMaxItems checks that the configured outfit item cap is sane.
func ValidateMaxItems(n int) error {
	if n < 0 {
		return fmt.Errorf("default_max_items must not be negative, got %d", n)
	}
	return nil
}

// ValidateBudget checks that the configured budget is sane.
func ValidateBudget(v float64) error {
	if v < 0 {
		return fmt.Errorf("default_budget must not be negative, got %v", v)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
