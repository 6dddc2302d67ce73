package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"trivia/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads an explicit config, the nearest one above CWD, or the
// built-in defaults.
func loadConfig(configPath string) (config.Config, string, error) {
	explicit := ""
	if strings.TrimSpace(configPath) != "" {
		abs, err := resolveConfigPath(configPath)
		if err != nil {
			return config.Config{}, "", err
		}
		explicit = abs
	}
	return config.LoadOrDefault(explicit, "")
}
