// Package config handles repository and global configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/ff/config.yml.
type GlobalConfig struct {
	RootPath   string `yaml:"root_path,omitempty"`   // Default fitfast repository root
	ServerAddr string `yaml:"server_addr,omitempty"` // Default listen address for ff serve
	RateLimit  int    `yaml:"rate_limit,omitempty"`  // Requests per second per client for ff serve
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "ff"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// RootEnvVar overrides repository discovery when set.
	RootEnvVar = "FF_ROOT"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/ff/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.RootPath != "" {
		cfg.RootPath = ExpandPath(cfg.RootPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetRootPath returns the configured default repository root from global config.
func GetRootPath() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.RootPath
}

// GetServerAddr returns the configured serve address from global config.
func GetServerAddr() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.ServerAddr
}

// GetRateLimit returns the configured serve rate limit from global config.
func GetRateLimit() int {
	cfg, _ := LoadGlobalConfig()
	return cfg.RateLimit
}

// ErrRootNotConfigured is returned when no repository root can be resolved.
var ErrRootNotConfigured = errors.New("repository root not configured")

// ErrRootNotExist is returned when the configured root doesn't exist.
var ErrRootNotExist = errors.New("repository root does not exist")

// ResolveRoot resolves the repository root for a command invocation.
// Precedence: FF_ROOT environment variable, then walking up from the
// working directory, then root_path from the global config.
// This is the testable version - use MustResolveRoot for CLI commands.
func ResolveRoot() (string, error) {
	if env := os.Getenv(RootEnvVar); env != "" {
		expanded := ExpandPath(env)
		if !IsRepository(expanded) {
			return "", fmt.Errorf("%w: %s (no %s directory)", ErrRootNotExist, expanded, FitfastDir)
		}
		return expanded, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		if root, err := FindRepository(cwd); err == nil {
			return root, nil
		}
	}

	path := GetRootPath()
	if path == "" {
		return "", ErrRootNotConfigured
	}
	if !IsRepository(path) {
		return "", fmt.Errorf("%w: %s", ErrRootNotExist, path)
	}
	return path, nil
}

// MustResolveRoot resolves the repository root for a command invocation.
// Prints helpful message and exits if no repository can be found.
// For testable code, use ResolveRoot instead.
func MustResolveRoot() string {
	root, err := ResolveRoot()
	if err != nil {
		if errors.Is(err, ErrRootNotConfigured) {
			fmt.Fprintln(os.Stderr, HelpfulConfigMessage())
		} else {
			fmt.Fprintf(os.Stderr, "%v\n\n%s\n", err, HelpfulConfigMessage())
		}
		os.Exit(2)
	}
	return root
}

// HelpfulConfigMessage returns a helpful message when no repository is found.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`No fitfast repository found.

Run 'ff init' inside a directory to create one, or create %s
to set a default root:
  mkdir -p %s
  echo 'root_path: /path/to/your/repo' > %s

FF_ROOT overrides both when set.`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
