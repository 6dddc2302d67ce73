package session

import (
	"fmt"
	"testing"

	"trivia/internal/question"
)

// sampleQuestions builds n questions whose correct option cycles 0..3.
func sampleQuestions(n int) []question.Question {
	questions := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, question.Question{
			Prompt:   fmt.Sprintf("Question %d?", i+1),
			Options:  []string{"A1", "B1", "C1", "D1"},
			Correct:  i % question.OptionCount,
			Category: "Science",
		})
	}
	return questions
}

// playingSession returns a session that just entered Playing with questions.
func playingSession(t *testing.T, questions []question.Question) Session {
	t.Helper()
	s := New(NewConfig(nil))
	s = mustReduce(t, s, ToggleCategory("Science"))
	s = mustReduce(t, s, StartRequested())
	return mustReduce(t, s, GenerationSucceeded("session-1", questions))
}

// answer selects an option and advances twice (reveal, then commit).
func answer(t *testing.T, s Session, option int) Session {
	t.Helper()
	s = mustReduce(t, s, SelectAnswer(option))
	s = mustReduce(t, s, Advance())
	if !s.Revealed {
		t.Fatalf("expected answer to be revealed before commit")
	}
	return mustReduce(t, s, Advance())
}

// mustReduce applies an event and fails the test on error.
func mustReduce(t *testing.T, s Session, event Event) Session {
	t.Helper()
	next, err := Reduce(s, event)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", event.Kind, err)
	}
	checkInvariants(t, next)
	return next
}

// checkInvariants asserts the session-wide invariants.
func checkInvariants(t *testing.T, s Session) {
	t.Helper()
	if s.State == StatePlaying {
		if s.Current < 0 || s.Current >= len(s.Questions) {
			t.Fatalf("current index %d out of range [0,%d)", s.Current, len(s.Questions))
		}
		if len(s.Answers) != s.Current {
			t.Fatalf("expected %d answers at index %d, got %d", s.Current, s.Current, len(s.Answers))
		}
	}
	if s.Score != Tally(s.Answers) {
		t.Fatalf("score %d drifted from tally %d", s.Score, Tally(s.Answers))
	}
	if s.State == StateResults && len(s.Answers) != len(s.Questions) {
		t.Fatalf("expected %d answers in results, got %d", len(s.Questions), len(s.Answers))
	}
	if s.State == StateSetup && (len(s.Questions) != 0 || len(s.Answers) != 0) {
		t.Fatalf("expected no runtime data in setup")
	}
}
