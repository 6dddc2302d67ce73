package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a generated question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeQuestions trims whitespace and validates every question in the set.
// A single malformed entry fails the whole set. When want is positive the set
// must contain exactly that many entries.
func NormalizeQuestions(questions []Question, want int) ([]Question, error) {
	collector := &issueCollector{}
	if len(questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}
	if want > 0 && len(questions) != want {
		collector.add("questions", fmt.Sprintf("expected %d entries, got %d", want, len(questions)))
	}

	normalized := make([]Question, 0, len(questions))
	for i, question := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		question.Category = strings.TrimSpace(question.Category)

		question.Options = normalizeStringSlice(question.Options)
		if len(question.Options) != OptionCount {
			collector.add(prefix+".options", fmt.Sprintf("must include exactly %d entries, got %d", OptionCount, len(question.Options)))
		}
		for optionIndex, option := range question.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}

		if question.Correct < 0 || question.Correct >= OptionCount {
			collector.add(prefix+".correctAnswer", fmt.Sprintf("must be between 0 and %d, got %d", OptionCount-1, question.Correct))
		}

		normalized = append(normalized, question)
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return normalized, nil
}

func normalizeStringSlice(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, strings.TrimSpace(value))
	}
	return out
}
