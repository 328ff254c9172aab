package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathFunctions(t *testing.T) {
	root := "/test/repo"

	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"FitfastPath", FitfastPath, "/test/repo/.fitfast"},
		{"ConfigPath", ConfigPath, "/test/repo/.fitfast/config.json"},
		{"CatalogPath", CatalogPath, "/test/repo/.fitfast/catalog.jsonl"},
		{"SizesPath", SizesPath, "/test/repo/.fitfast/sizes.jsonl"},
		{"EmbeddingsPath", EmbeddingsPath, "/test/repo/.fitfast/embeddings.jsonl"},
		{"CachePath", CachePath, "/test/repo/.fitfast/cache"},
		{"DBPath", DBPath, "/test/repo/.fitfast/cache/catalog.db"},
		{"SnapshotPath", SnapshotPath, "/test/repo/.fitfast/cache/engine.gob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(root)
			if got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, root, got, tt.want)
			}
		})
	}
}

func TestIsRepository(t *testing.T) {
	tmpDir := t.TempDir()

	// Not a repository initially
	if IsRepository(tmpDir) {
		t.Error("IsRepository() = true for non-repo directory")
	}

	ffDir := filepath.Join(tmpDir, FitfastDir)
	if err := os.Mkdir(ffDir, 0755); err != nil {
		t.Fatalf("Failed to create .fitfast: %v", err)
	}

	if !IsRepository(tmpDir) {
		t.Error("IsRepository() = false for repo directory")
	}
}

func TestIsRepository_FileNotDir(t *testing.T) {
	tmpDir := t.TempDir()

	// Create .fitfast as a file, not directory
	ffPath := filepath.Join(tmpDir, FitfastDir)
	if err := os.WriteFile(ffPath, []byte("not a dir"), 0644); err != nil {
		t.Fatalf("Failed to create .fitfast file: %v", err)
	}

	if IsRepository(tmpDir) {
		t.Error("IsRepository() = true when .fitfast is a file")
	}
}

func TestFindRepository(t *testing.T) {
	// Create nested structure: /tmp/xxx/repo/.fitfast
	tmpDir := t.TempDir()
	repoDir := filepath.Join(tmpDir, "repo")
	nestedDir := filepath.Join(repoDir, "data", "imports")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatalf("Failed to create nested dirs: %v", err)
	}
	if err := os.Mkdir(filepath.Join(repoDir, FitfastDir), 0755); err != nil {
		t.Fatalf("Failed to create .fitfast: %v", err)
	}

	// Find from nested dir should return repo root
	found, err := FindRepository(nestedDir)
	if err != nil {
		t.Fatalf("FindRepository() error = %v", err)
	}
	if found != repoDir {
		t.Errorf("FindRepository() = %q, want %q", found, repoDir)
	}

	// Find from repo root
	found, err = FindRepository(repoDir)
	if err != nil {
		t.Fatalf("FindRepository() error = %v", err)
	}
	if found != repoDir {
		t.Errorf("FindRepository() = %q, want %q", found, repoDir)
	}
}

func TestFindRepository_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := FindRepository(tmpDir)
	if err == nil {
		t.Error("FindRepository() should return error when no repo found")
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	ffDir := filepath.Join(tmpDir, FitfastDir)
	if err := os.Mkdir(ffDir, 0755); err != nil {
		t.Fatalf("Failed to create .fitfast: %v", err)
	}

	cfg := &Config{
		DefaultTheme:    "smart_casual",
		DefaultMaxItems: 5,
		DefaultBudget:   300,
		ServerAddr:      ":8080",
	}
	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.DefaultTheme != cfg.DefaultTheme {
		t.Errorf("DefaultTheme = %q, want %q", loaded.DefaultTheme, cfg.DefaultTheme)
	}
	if loaded.DefaultMaxItems != cfg.DefaultMaxItems {
		t.Errorf("DefaultMaxItems = %d, want %d", loaded.DefaultMaxItems, cfg.DefaultMaxItems)
	}
	if loaded.DefaultBudget != cfg.DefaultBudget {
		t.Errorf("DefaultBudget = %v, want %v", loaded.DefaultBudget, cfg.DefaultBudget)
	}
	if loaded.ServerAddr != cfg.ServerAddr {
		t.Errorf("ServerAddr = %q, want %q", loaded.ServerAddr, cfg.ServerAddr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	// Create .fitfast directory but no config
	ffDir := filepath.Join(tmpDir, FitfastDir)
	if err := os.Mkdir(ffDir, 0755); err != nil {
		t.Fatalf("Failed to create .fitfast: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v (missing config should yield zero config)", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()

	ffDir := filepath.Join(tmpDir, FitfastDir)
	if err := os.Mkdir(ffDir, 0755); err != nil {
		t.Fatalf("Failed to create .fitfast: %v", err)
	}

	if err := os.WriteFile(ConfigPath(tmpDir), []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write invalid config: %v", err)
	}

	_, err := Load(tmpDir)
	if err == nil {
		t.Error("Load() should return error for invalid JSON")
	}
}

func TestValidateMaxItems(t *testing.T) {
	if err := ValidateMaxItems(0); err != nil {
		t.Errorf("ValidateMaxItems(0) error = %v", err)
	}
	if err := ValidateMaxItems(4); err != nil {
		t.Errorf("ValidateMaxItems(4) error = %v", err)
	}
	if err := ValidateMaxItems(-1); err == nil {
		t.Error("ValidateMaxItems(-1) should return error")
	}
}

func TestValidateBudget(t *testing.T) {
	if err := ValidateBudget(0); err != nil {
		t.Errorf("ValidateBudget(0) error = %v", err)
	}
	if err := ValidateBudget(250.50); err != nil {
		t.Errorf("ValidateBudget(250.50) error = %v", err)
	}
	if err := ValidateBudget(-10); err == nil {
		t.Error("ValidateBudget(-10) should return error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q, want %q", got, filepath.Join(home, "data"))
	}
	if got := ExpandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("ExpandPath(/absolute/path) = %q, want unchanged", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want \"\"", got)
	}
}

func TestConstants(t *testing.T) {
	if FitfastDir != ".fitfast" {
		t.Errorf("FitfastDir = %q, want .fitfast", FitfastDir)
	}
	if ConfigFile != "config.json" {
		t.Errorf("ConfigFile = %q, want config.json", ConfigFile)
	}
	if CatalogFile != "catalog.jsonl" {
		t.Errorf("CatalogFile = %q, want catalog.jsonl", CatalogFile)
	}
	if CacheDir != "cache" {
		t.Errorf("CacheDir = %q, want cache", CacheDir)
	}
	if DBFile != "catalog.db" {
		t.Errorf("DBFile = %q, want catalog.db", DBFile)
	}
}
