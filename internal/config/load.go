package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"trivia/internal/question"
	"trivia/internal/session"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the explicit path when set, otherwise the nearest
// config above startDir, falling back to Default when none exists. The
// returned path is empty for the built-in defaults.
func LoadOrDefault(explicitPath, startDir string) (Config, string, error) {
	path := explicitPath
	if path == "" {
		found, err := FindConfigPath(startDir)
		if errors.Is(err, ErrConfigNotFound) {
			return Default(), "", nil
		}
		if err != nil {
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// LoadDotEnv loads dir/.env into the environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Timeout returns the provider timeout. Zero disables it.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// SessionConfig builds the Setup configuration described by the defaults.
func (c Config) SessionConfig() (session.Config, error) {
	cfg := session.NewConfig(c.Categories)
	for _, label := range c.Defaults.Categories {
		if cfg.Selected(label) {
			continue
		}
		next, err := cfg.ToggleCategory(label)
		if err != nil {
			return cfg, err
		}
		cfg = next
	}
	difficulty, err := question.ParseDifficulty(c.Defaults.Difficulty)
	if err != nil {
		return cfg, err
	}
	if cfg, err = cfg.SetDifficulty(difficulty); err != nil {
		return cfg, err
	}
	return cfg.SetQuestionCount(c.Defaults.QuestionCount)
}
