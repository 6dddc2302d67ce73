package session

import (
	"errors"
	"math/rand"
	"testing"

	"trivia/internal/question"
)

// TestStartWithoutCategoriesStaysInSetup verifies the category guard.
func TestStartWithoutCategoriesStaysInSetup(t *testing.T) {
	s := New(NewConfig(nil))
	next, err := Reduce(s, StartRequested())
	if !errors.Is(err, ErrNoCategories) {
		t.Fatalf("expected no categories error, got %v", err)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error type, got %T", err)
	}
	if next.State != StateSetup {
		t.Fatalf("expected setup, got %s", next.State)
	}
}

// TestGenerationInstallsQuestions verifies the Loading -> Playing side effects.
func TestGenerationInstallsQuestions(t *testing.T) {
	s := playingSession(t, sampleQuestions(3))
	if s.State != StatePlaying || s.Current != 0 || s.Score != 0 || s.Revealed || s.HasPending() {
		t.Fatalf("unexpected playing session: %+v", s)
	}
	if s.ID != "session-1" {
		t.Fatalf("expected session id, got %q", s.ID)
	}
	if s.Answers == nil || len(s.Answers) != 0 {
		t.Fatalf("expected empty answer log")
	}
}

// TestGenerationFailureReturnsToSetup verifies failures keep no session data.
func TestGenerationFailureReturnsToSetup(t *testing.T) {
	s := New(NewConfig(nil))
	s = mustReduce(t, s, ToggleCategory("History"))
	s = mustReduce(t, s, StartRequested())
	s = mustReduce(t, s, GenerationFailed(errors.New("boom")))
	if s.State != StateSetup {
		t.Fatalf("expected setup, got %s", s.State)
	}
	if len(s.Questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(s.Questions))
	}
	if s.LastError == "" {
		t.Fatalf("expected surfaced error")
	}
	if !s.Config.Selected("History") {
		t.Fatalf("expected configuration to survive the failure")
	}
}

// TestAdvanceWithoutSelection verifies the select-an-answer guard.
func TestAdvanceWithoutSelection(t *testing.T) {
	s := playingSession(t, sampleQuestions(2))
	next, err := Reduce(s, Advance())
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected no selection error, got %v", err)
	}
	if next.State != StatePlaying || next.Revealed || next.Current != 0 {
		t.Fatalf("expected no transition, got %+v", next)
	}
}

// TestRevealPrecedesRecord verifies the first advance only reveals.
func TestRevealPrecedesRecord(t *testing.T) {
	s := playingSession(t, sampleQuestions(2))
	s = mustReduce(t, s, SelectAnswer(0))
	s = mustReduce(t, s, Advance())
	if !s.Revealed {
		t.Fatalf("expected revealed after first advance")
	}
	if len(s.Answers) != 0 || s.Current != 0 {
		t.Fatalf("expected no record before commit, got %d answers", len(s.Answers))
	}
	s = mustReduce(t, s, Advance())
	if s.Revealed || s.Current != 1 || len(s.Answers) != 1 || s.HasPending() {
		t.Fatalf("expected commit and move to next question, got %+v", s)
	}
}

// TestSelectIsOverwrittenUntilReveal verifies only the last selection counts.
func TestSelectIsOverwrittenUntilReveal(t *testing.T) {
	s := playingSession(t, sampleQuestions(1))
	s = mustReduce(t, s, SelectAnswer(3))
	s = mustReduce(t, s, SelectAnswer(1))
	s = mustReduce(t, s, SelectAnswer(0))
	s = mustReduce(t, s, Advance())
	if _, err := Reduce(s, SelectAnswer(2)); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected selection after reveal to be rejected, got %v", err)
	}
	s = mustReduce(t, s, Advance())
	if s.Answers[0].Selected != 0 || !s.Answers[0].Correct {
		t.Fatalf("expected last selection recorded, got %+v", s.Answers[0])
	}
}

// TestSelectOutOfRange verifies option bounds are enforced.
func TestSelectOutOfRange(t *testing.T) {
	s := playingSession(t, sampleQuestions(1))
	for _, option := range []int{-1, 4} {
		if _, err := Reduce(s, SelectAnswer(option)); !errors.Is(err, ErrOptionOutOfRange) {
			t.Fatalf("option %d: expected out of range, got %v", option, err)
		}
	}
}

// TestAllCorrectFiveQuestions verifies a perfect run reaches Results with full score.
func TestAllCorrectFiveQuestions(t *testing.T) {
	questions := sampleQuestions(5)
	s := playingSession(t, questions)
	for _, q := range questions {
		s = answer(t, s, q.Correct)
	}
	if s.State != StateResults {
		t.Fatalf("expected results, got %s", s.State)
	}
	if s.Score != 5 || len(s.Answers) != 5 {
		t.Fatalf("expected score 5 over 5 answers, got %d/%d", s.Score, len(s.Answers))
	}
}

// TestMixedAnswers verifies one wrong answer is recorded at its index.
func TestMixedAnswers(t *testing.T) {
	questions := sampleQuestions(3)
	s := playingSession(t, questions)
	s = answer(t, s, (questions[0].Correct+1)%4)
	s = answer(t, s, questions[1].Correct)
	s = answer(t, s, questions[2].Correct)
	if s.Score != 2 {
		t.Fatalf("expected score 2, got %d", s.Score)
	}
	incorrect := 0
	for i, record := range s.Answers {
		if record.QuestionIndex != i {
			t.Fatalf("expected record %d to reference question %d", i, record.QuestionIndex)
		}
		if !record.Correct {
			incorrect++
			if i != 0 {
				t.Fatalf("expected the incorrect record at index 0, got %d", i)
			}
		}
	}
	if incorrect != 1 {
		t.Fatalf("expected exactly one incorrect record, got %d", incorrect)
	}
}

// TestResetKeepsConfiguration verifies reset clears only runtime fields.
func TestResetKeepsConfiguration(t *testing.T) {
	s := New(NewConfig(nil))
	s = mustReduce(t, s, ToggleCategory("Space"))
	s = mustReduce(t, s, SetDifficulty(question.Hard))
	s = mustReduce(t, s, SetQuestionCount(10))
	s = mustReduce(t, s, StartRequested())
	s = mustReduce(t, s, GenerationSucceeded("id", sampleQuestions(1)))
	s = answer(t, s, 0)
	s = mustReduce(t, s, Reset())
	if s.State != StateSetup || s.ID != "" || s.Score != 0 || s.Questions != nil || s.Answers != nil {
		t.Fatalf("expected cleared runtime, got %+v", s)
	}
	if !s.Config.Selected("Space") || s.Config.Difficulty() != question.Hard || s.Config.QuestionCount() != 10 {
		t.Fatalf("expected configuration retained, got %+v", s.Config)
	}
}

// TestInvalidTransitions verifies intents outside their state are rejected.
func TestInvalidTransitions(t *testing.T) {
	setup := New(NewConfig(nil))
	loading := mustReduce(t, mustReduce(t, setup, ToggleCategory("Art")), StartRequested())
	playing := playingSession(t, sampleQuestions(1))
	results := answer(t, playingSession(t, sampleQuestions(1)), 0)

	cases := []struct {
		name  string
		state Session
		event Event
	}{
		{name: "advance in setup", state: setup, event: Advance()},
		{name: "select in setup", state: setup, event: SelectAnswer(0)},
		{name: "reset in setup", state: setup, event: Reset()},
		{name: "success in setup", state: setup, event: GenerationSucceeded("x", sampleQuestions(1))},
		{name: "start while loading", state: loading, event: StartRequested()},
		{name: "toggle while loading", state: loading, event: ToggleCategory("Art")},
		{name: "reset while loading", state: loading, event: Reset()},
		{name: "toggle while playing", state: playing, event: ToggleCategory("Art")},
		{name: "difficulty while playing", state: playing, event: SetDifficulty(question.Easy)},
		{name: "reset while playing", state: playing, event: Reset()},
		{name: "advance in results", state: results, event: Advance()},
		{name: "start in results", state: results, event: StartRequested()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Reduce(tc.state, tc.event)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected invalid transition, got %v", err)
			}
			if next.State != tc.state.State {
				t.Fatalf("expected state %s, got %s", tc.state.State, next.State)
			}
		})
	}
}

// TestEmptyGenerationRejected verifies an empty set never enters Playing.
func TestEmptyGenerationRejected(t *testing.T) {
	s := mustReduce(t, mustReduce(t, New(NewConfig(nil)), ToggleCategory("Art")), StartRequested())
	next, err := Reduce(s, GenerationSucceeded("x", nil))
	if err == nil || next.State != StateLoading {
		t.Fatalf("expected rejection in loading, got %v (%s)", err, next.State)
	}
}

// TestReduceDoesNotMutateInput verifies earlier snapshots are unaffected.
func TestReduceDoesNotMutateInput(t *testing.T) {
	questions := sampleQuestions(3)
	s := playingSession(t, questions)
	s = answer(t, s, questions[0].Correct)
	snapshot := s
	s = mustReduce(t, s, SelectAnswer(0))
	s = mustReduce(t, s, Advance())
	s = mustReduce(t, s, Advance())
	if len(snapshot.Answers) != 1 || snapshot.Current != 1 || snapshot.HasPending() {
		t.Fatalf("expected snapshot unchanged, got %+v", snapshot)
	}
	questions[0].Options[0] = "mutated"
	if s.Questions[0].Options[0] == "mutated" {
		t.Fatalf("expected installed questions to be isolated from the caller")
	}
}

// TestRandomWalkKeepsInvariants applies random intents and checks invariants after each.
func TestRandomWalkKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog := DefaultCategories
	for run := 0; run < 50; run++ {
		s := New(NewConfig(nil))
		for step := 0; step < 200; step++ {
			var event Event
			switch rng.Intn(8) {
			case 0:
				event = ToggleCategory(catalog[rng.Intn(len(catalog))])
			case 1:
				event = StartRequested()
			case 2:
				if rng.Intn(4) == 0 {
					event = GenerationFailed(errors.New("transport"))
				} else {
					event = GenerationSucceeded("walk", sampleQuestions(1+rng.Intn(6)))
				}
			case 3, 4:
				event = SelectAnswer(rng.Intn(5) - 1)
			case 5, 6:
				event = Advance()
			default:
				event = Reset()
			}
			next, err := Reduce(s, event)
			if err != nil && next.State != s.State {
				t.Fatalf("run %d step %d: state changed on error %v", run, step, err)
			}
			checkInvariants(t, next)
			s = next
		}
	}
}
