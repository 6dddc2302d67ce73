package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
)

// WireQuestion mirrors the generator wire shape of a single question.
type WireQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Category      string   `json:"category"`
}

// SampleQuestions builds count well-formed questions whose correct answer
// cycles through the option indices.
func SampleQuestions(count int) []WireQuestion {
	questions := make([]WireQuestion, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, WireQuestion{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"Alpha", "Bravo", "Charlie", "Delta"},
			CorrectAnswer: i % 4,
			Category:      "Science",
		})
	}
	return questions
}

// QuestionsJSON encodes questions as a generator response payload.
func QuestionsJSON(t testing.TB, questions []WireQuestion) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal questions: %v", err)
	}
	return string(data)
}
