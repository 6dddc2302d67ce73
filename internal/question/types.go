package question

import (
	"fmt"
	"strings"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Difficulty is the requested question difficulty.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the legal difficulty values in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty converts user input into a Difficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	normalized := Difficulty(strings.ToLower(strings.TrimSpace(value)))
	if !normalized.Valid() {
		return "", fmt.Errorf("invalid difficulty %q (expected easy|medium|hard)", value)
	}
	return normalized, nil
}

// Valid reports whether d is one of the enumerated difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	default:
		return false
	}
}

// Question is a single multiple-choice trivia question.
type Question struct {
	Prompt   string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correctAnswer"`
	Category string   `json:"category"`
}

// Request describes the question set asked of a generator.
type Request struct {
	Categories []string
	Difficulty Difficulty
	Count      int
}

// IsCorrect reports whether the selected option index is the correct one.
func (q Question) IsCorrect(selected int) bool {
	return selected == q.Correct
}

// Option returns the option text at index, or an empty string when out of range.
func (q Question) Option(index int) string {
	if index < 0 || index >= len(q.Options) {
		return ""
	}
	return q.Options[index]
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.Option(q.Correct)
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	q.Options = options
	return q
}

// CloneAll deep-copies a question sequence.
func CloneAll(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q.Clone()
	}
	return out
}

// OptionLetter returns the display letter for an option index (A-D).
func OptionLetter(index int) string {
	if index < 0 || index >= 26 {
		return "?"
	}
	return string(rune('A' + index))
}
