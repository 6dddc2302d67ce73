package question

import (
	"errors"
	"strings"
	"testing"

	"trivia/internal/testutil"
)

// TestParseResponseValid verifies a well-formed payload parses in order.
func TestParseResponseValid(t *testing.T) {
	payload := testutil.QuestionsJSON(t, testutil.SampleQuestions(3))
	questions, err := ParseResponse(payload, 3)
	if err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[1].Prompt != "Question 2?" || questions[1].Correct != 1 {
		t.Fatalf("unexpected second question: %+v", questions[1])
	}
	if questions[2].CorrectOption() != "Charlie" {
		t.Fatalf("expected Charlie, got %q", questions[2].CorrectOption())
	}
}

// TestParseResponseTrimsFenceAndWhitespace verifies fenced output is accepted.
func TestParseResponseTrimsFenceAndWhitespace(t *testing.T) {
	raw := `{"questions":[{"question":"  What is Au? ","options":[" Gold","Silver","Copper","Iron "],"correctAnswer":0,"category":" Science "}]}`
	questions, err := ParseResponse("```json\n"+raw+"\n```", 1)
	if err != nil {
		t.Fatalf("parse response: %v", err)
	}
	q := questions[0]
	if q.Prompt != "What is Au?" || q.Options[0] != "Gold" || q.Options[3] != "Iron" || q.Category != "Science" {
		t.Fatalf("expected trimmed question, got %+v", q)
	}
}

// TestParseResponseMalformed verifies non-JSON output is rejected.
func TestParseResponseMalformed(t *testing.T) {
	cases := []string{
		"",
		"Sure! Here are your questions.",
		`{"questions": [}`,
		`[{"question":"x"}]`,
		`{"questions": []} trailing`,
	}
	for _, raw := range cases {
		_, err := ParseResponse(raw, 1)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("%q: expected malformed response error, got %v", raw, err)
		}
	}
}

// TestParseResponseMissingQuestions verifies the questions field is required.
func TestParseResponseMissingQuestions(t *testing.T) {
	for _, raw := range []string{`{"items": []}`, `{"questions": "none"}`} {
		_, err := ParseResponse(raw, 5)
		if !errors.Is(err, ErrMissingQuestions) {
			t.Fatalf("%q: expected missing questions error, got %v", raw, err)
		}
	}
}

// TestParseResponseRejectsWrongShape verifies schema violations fail the batch.
func TestParseResponseRejectsWrongShape(t *testing.T) {
	raw := `{"questions":[{"question":"Q","options":["a","b","c","d"],"correctAnswer":"0","category":"Art"}]}`
	_, err := ParseResponse(raw, 1)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// TestParseResponseRejectsMalformedItems verifies one bad entry fails the set.
func TestParseResponseRejectsMalformedItems(t *testing.T) {
	questions := testutil.SampleQuestions(3)
	questions[1].Options = []string{"a", "b", "c"}
	questions[2].CorrectAnswer = 4
	questions[0].Question = "   "
	_, err := ParseResponse(testutil.QuestionsJSON(t, questions), 3)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := make([]string, 0, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		fields = append(fields, issue.Field)
	}
	joined := strings.Join(fields, ",")
	for _, want := range []string{"questions[0].question", "questions[1].options", "questions[2].correctAnswer"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected issue for %s, got %s", want, joined)
		}
	}
}

// TestParseResponseCountMismatch verifies the set size must match the request.
func TestParseResponseCountMismatch(t *testing.T) {
	_, err := ParseResponse(testutil.QuestionsJSON(t, testutil.SampleQuestions(4)), 5)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "expected 5 entries, got 4") {
		t.Fatalf("unexpected message: %v", err)
	}
}
