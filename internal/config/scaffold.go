package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trivia/internal/session"
)

const scaffoldTemplate = `version: 1
provider:
  name: "%s"
  model: "%s"
  timeout_seconds: %d
  temperature: 0.7

defaults:
  categories: []
  difficulty: "%s"
  question_count: %d

categories:
%s`

// ScaffoldConfig renders the starter config file.
func ScaffoldConfig() string {
	var categories strings.Builder
	for _, label := range session.DefaultCategories {
		fmt.Fprintf(&categories, "  - %q\n", label)
	}
	return fmt.Sprintf(scaffoldTemplate,
		DefaultProvider, DefaultModel, DefaultTimeoutSeconds,
		session.DefaultDifficulty, session.DefaultQuestionCount,
		categories.String())
}

// Scaffold writes a starter config to path, refusing to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(ScaffoldConfig()), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
