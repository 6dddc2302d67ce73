package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"trivia/internal/question"
	"trivia/internal/session"
)

// Issue is one invalid field in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError lists every invalid field found in one pass.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "invalid config"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "invalid config (%d issues)", len(err.Issues))
	for _, issue := range err.Issues {
		fmt.Fprintf(&b, "\n  %s: %s", issue.Field, issue.Message)
	}
	return b.String()
}

type issueCollector []Issue

func (c *issueCollector) add(field, message string) {
	*c = append(*c, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(*c) == 0 {
		return nil
	}
	return &ValidationError{Issues: slices.Clone(*c)}
}

// Validate checks a normalized config.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateProvider(cfg.Provider, collector)
	catalog := validateCatalog(cfg.Categories, collector)
	validateDefaults(cfg.Defaults, catalog, collector)

	return collector.result()
}

func validateProvider(provider ProviderConfig, collector *issueCollector) {
	if provider.Name != DefaultProvider {
		collector.add("provider.name", fmt.Sprintf("unsupported provider %q", provider.Name))
	}
	if provider.BaseURL != "" {
		parsed, err := url.Parse(provider.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			collector.add("provider.base_url", fmt.Sprintf("invalid url %q", provider.BaseURL))
		}
	}
	if provider.TimeoutSeconds < 0 {
		collector.add("provider.timeout_seconds", "must be >= 0")
	}
	if provider.Temperature != nil && (*provider.Temperature < 0 || *provider.Temperature > 2) {
		collector.add("provider.temperature", "must be between 0 and 2")
	}
}

// validateCatalog returns the normalized labels it accepted.
func validateCatalog(categories []string, collector *issueCollector) map[string]bool {
	seen := make(map[string]bool, len(categories))
	if len(categories) == 0 {
		collector.add("categories", "must list at least one category")
	}
	for i, label := range categories {
		key := question.NormalizeLabel(label)
		if seen[key] {
			collector.add(fmt.Sprintf("categories[%d]", i), fmt.Sprintf("duplicate category %q", label))
			continue
		}
		seen[key] = true
	}
	return seen
}

func validateDefaults(defaults DefaultsConfig, catalog map[string]bool, collector *issueCollector) {
	for i, label := range defaults.Categories {
		if !catalog[question.NormalizeLabel(label)] {
			collector.add(fmt.Sprintf("defaults.categories[%d]", i), fmt.Sprintf("%q is not in categories", label))
		}
	}
	if _, err := question.ParseDifficulty(defaults.Difficulty); err != nil {
		collector.add("defaults.difficulty", err.Error())
	}
	if !slices.Contains(session.AllowedQuestionCounts, defaults.QuestionCount) {
		collector.add("defaults.question_count", fmt.Sprintf("must be one of %v", session.AllowedQuestionCounts))
	}
}
