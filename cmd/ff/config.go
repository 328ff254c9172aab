package main

import (
	"strconv"
	"strings"

	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/outfit"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	DefaultTheme    string  `json:"default_theme,omitempty"`
	DefaultMaxItems int     `json:"default_max_items,omitempty"`
	DefaultBudget   float64 `json:"default_budget,omitempty"`
	ServerAddr      string  `json:"server_addr,omitempty"`
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  ff config                          # Show all config
  ff config default-theme            # Get specific value
  ff config default-theme smart_casual
  ff config default-budget 250

Keys:
  default-theme      Theme used when outfit commands omit --theme
  default-max-items  Item cap for outfit assembly
  default-budget     Price ceiling for outfit assembly (0 = none)
  server-addr        Listen address for ff serve`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			outputHuman("default-theme:     %s\n", cfg.DefaultTheme)
			outputHuman("default-max-items: %d\n", cfg.DefaultMaxItems)
			outputHuman("default-budget:    %.2f\n", cfg.DefaultBudget)
			outputHuman("server-addr:       %s\n", cfg.ServerAddr)
		} else {
			outputJSON(ConfigResponse{
				DefaultTheme:    cfg.DefaultTheme,
				DefaultMaxItems: cfg.DefaultMaxItems,
				DefaultBudget:   cfg.DefaultBudget,
				ServerAddr:      cfg.ServerAddr,
			})
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch key {
		case "default-theme":
			value = cfg.DefaultTheme
		case "default-max-items":
			value = strconv.Itoa(cfg.DefaultMaxItems)
		case "default-budget":
			value = strconv.FormatFloat(cfg.DefaultBudget, 'f', -1, 64)
		case "server-addr":
			value = cfg.ServerAddr
		default:
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		if humanOutput {
			outputHuman("%s\n", value)
		} else {
			outputJSON(map[string]string{strings.ReplaceAll(key, "-", "_"): value})
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch key {
	case "default-theme":
		if !knownTheme(value) {
			exitWithError(ExitError, "unknown theme: %s (valid: %s)", value, themeNames())
		}
		cfg.DefaultTheme = value

	case "default-max-items":
		n, err := strconv.Atoi(value)
		if err != nil {
			exitWithError(ExitError, "default-max-items must be an integer, got %q", value)
		}
		if err := config.ValidateMaxItems(n); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.DefaultMaxItems = n

	case "default-budget":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			exitWithError(ExitError, "default-budget must be a number, got %q", value)
		}
		if err := config.ValidateBudget(v); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.DefaultBudget = v

	case "server-addr":
		cfg.ServerAddr = value

	default:
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		outputHuman("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  value,
		})
	}

	return nil
}

// normalizeKey converts key formats (default_theme, DefaultTheme) to kebab-case.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}

func knownTheme(name string) bool {
	for _, theme := range outfit.Themes {
		if theme.Name == name {
			return true
		}
	}
	return false
}

func themeNames() string {
	names := make([]string, len(outfit.Themes))
	for i, theme := range outfit.Themes {
		names[i] = theme.Name
	}
	return strings.Join(names, ", ")
}
