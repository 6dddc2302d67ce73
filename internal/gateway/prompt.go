package gateway

import (
	"fmt"
	"strings"

	"trivia/internal/question"
)

// Request is the generation request derived from a session configuration.
type Request = question.Request

const responseExample = `{
  "questions": [
    {
      "question": "What is the chemical symbol for gold?",
      "options": ["Au", "Ag", "Go", "Gd"],
      "correctAnswer": 0,
      "category": "Science"
    }
  ]
}`

// BuildPrompt renders the natural-language instruction for a request.
func BuildPrompt(req Request) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Generate exactly %d trivia questions with the following specifications:\n", req.Count)
	fmt.Fprintf(&builder, "- Categories: %s\n", strings.Join(req.Categories, ", "))
	fmt.Fprintf(&builder, "- Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&builder, "- Format: Multiple choice with %d options\n\n", question.OptionCount)
	builder.WriteString("Respond ONLY with a valid JSON object in this exact format:\n")
	builder.WriteString(responseExample)
	builder.WriteString("\n\n")
	fmt.Fprintf(&builder, "Make sure each question has exactly %d plausible options and the correctAnswer is the index (0-%d) of the correct option.\n",
		question.OptionCount, question.OptionCount-1)
	builder.WriteString("DO NOT OUTPUT ANYTHING OTHER THAN VALID JSON. Your entire response must be a single, valid JSON object.")
	return builder.String()
}

// validateRequest rejects requests that cannot yield a usable batch.
func validateRequest(req Request) error {
	if len(req.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidRequest)
	}
	if req.Count <= 0 {
		return fmt.Errorf("%w: question count must be positive", ErrInvalidRequest)
	}
	if !req.Difficulty.Valid() {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidRequest, req.Difficulty)
	}
	return nil
}
