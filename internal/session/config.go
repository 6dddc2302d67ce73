package session

import (
	"fmt"
	"slices"
	"strings"

	"trivia/internal/question"
)

// DefaultCategories is the built-in category catalog.
var DefaultCategories = []string{
	"Science", "History", "Geography", "Sports", "Movies", "Music",
	"Literature", "Art", "Technology", "Food", "Animals", "Space",
}

// AllowedQuestionCounts lists the legal question counts.
var AllowedQuestionCounts = []int{5, 10, 15, 20}

const (
	DefaultDifficulty    = question.Medium
	DefaultQuestionCount = 5
)

// Config holds the player's choices made during Setup.
//
// Methods never mutate shared slices, so a copied Config is independent.
type Config struct {
	catalog    []string
	selected   []string
	difficulty question.Difficulty
	count      int
}

// NewConfig builds a Config over a category catalog. A nil catalog uses
// DefaultCategories.
func NewConfig(catalog []string) Config {
	if len(catalog) == 0 {
		catalog = DefaultCategories
	}
	return Config{
		catalog:    slices.Clone(catalog),
		difficulty: DefaultDifficulty,
		count:      DefaultQuestionCount,
	}
}

// Catalog returns the selectable category labels.
func (c Config) Catalog() []string {
	return slices.Clone(c.catalog)
}

// Categories returns the selected labels in selection order.
func (c Config) Categories() []string {
	return slices.Clone(c.selected)
}

// Selected reports whether label is currently selected.
func (c Config) Selected(label string) bool {
	_, ok := c.indexOf(c.selected, label)
	return ok
}

// Difficulty returns the chosen difficulty.
func (c Config) Difficulty() question.Difficulty {
	return c.difficulty
}

// QuestionCount returns the chosen number of questions.
func (c Config) QuestionCount() int {
	return c.count
}

// ToggleCategory adds label when absent and removes it when present.
func (c Config) ToggleCategory(label string) (Config, error) {
	canonical, ok := c.indexOf(c.catalog, label)
	if !ok {
		return c, validationError(ErrUnknownCategory, fmt.Sprintf("%q", strings.TrimSpace(label)))
	}
	name := c.catalog[canonical]
	if index, selected := c.indexOf(c.selected, name); selected {
		c.selected = slices.Delete(slices.Clone(c.selected), index, index+1)
		return c, nil
	}
	c.selected = append(slices.Clone(c.selected), name)
	return c, nil
}

// SetDifficulty replaces the difficulty.
func (c Config) SetDifficulty(value question.Difficulty) (Config, error) {
	if !value.Valid() {
		return c, validationError(ErrInvalidDifficulty, fmt.Sprintf("%q", value))
	}
	c.difficulty = value
	return c, nil
}

// SetQuestionCount replaces the question count.
func (c Config) SetQuestionCount(value int) (Config, error) {
	if !slices.Contains(AllowedQuestionCounts, value) {
		return c, validationError(ErrInvalidQuestionCount, fmt.Sprintf("%d (allowed: %v)", value, AllowedQuestionCounts))
	}
	c.count = value
	return c, nil
}

// Request converts the configuration into a generation request.
func (c Config) Request() question.Request {
	return question.Request{
		Categories: c.Categories(),
		Difficulty: c.difficulty,
		Count:      c.count,
	}
}

func (c Config) indexOf(labels []string, label string) (int, bool) {
	needle := question.NormalizeLabel(label)
	if needle == "" {
		return -1, false
	}
	for i, candidate := range labels {
		if question.NormalizeLabel(candidate) == needle {
			return i, true
		}
	}
	return -1, false
}
