package config

import (
	"slices"
	"strings"

	"trivia/internal/session"
)

// Built-in provider defaults.
const (
	DefaultProvider       = "openrouter"
	DefaultModel          = "openai/gpt-4.1-mini"
	DefaultTimeoutSeconds = 60
)

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills unset fields with built-in defaults.
func Normalize(cfg *Config) {
	cfg.Provider.Name = strings.ToLower(strings.TrimSpace(cfg.Provider.Name))
	if cfg.Provider.Name == "" {
		cfg.Provider.Name = DefaultProvider
	}
	cfg.Provider.Model = strings.TrimSpace(cfg.Provider.Model)
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = DefaultModel
	}
	cfg.Provider.BaseURL = strings.TrimSpace(cfg.Provider.BaseURL)
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = DefaultTimeoutSeconds
	}

	cfg.Categories = trimAll(cfg.Categories)
	if len(cfg.Categories) == 0 {
		cfg.Categories = slices.Clone(session.DefaultCategories)
	}
	cfg.Defaults.Categories = trimAll(cfg.Defaults.Categories)
	cfg.Defaults.Difficulty = strings.ToLower(strings.TrimSpace(cfg.Defaults.Difficulty))
	if cfg.Defaults.Difficulty == "" {
		cfg.Defaults.Difficulty = string(session.DefaultDifficulty)
	}
	if cfg.Defaults.QuestionCount == 0 {
		cfg.Defaults.QuestionCount = session.DefaultQuestionCount
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
