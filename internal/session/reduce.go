package session

import (
	"errors"
	"fmt"

	"trivia/internal/question"
)

// Reduce applies an event to a session and returns the next session.
//
// Reduce is pure: the input session is never modified, and on error the
// returned session equals the input.
func Reduce(s Session, event Event) (Session, error) {
	switch event.Kind {
	case EventToggleCategory, EventSetDifficulty, EventSetQuestionCount:
		return reduceConfig(s, event)
	case EventStartRequested:
		return reduceStart(s, event)
	case EventGenerationSucceeded:
		return reduceGenerated(s, event)
	case EventGenerationFailed:
		return reduceGenerationFailed(s, event)
	case EventSelectAnswer:
		return reduceSelect(s, event)
	case EventAdvance:
		return reduceAdvance(s, event)
	case EventReset:
		return reduceReset(s, event)
	default:
		return s, fmt.Errorf("%w: unknown event %d", ErrInvalidTransition, event.Kind)
	}
}

// reduceConfig applies configuration edits, which are legal only in Setup.
func reduceConfig(s Session, event Event) (Session, error) {
	if s.State != StateSetup {
		return s, transitionError(s.State, event.Kind)
	}
	var (
		cfg Config
		err error
	)
	switch event.Kind {
	case EventToggleCategory:
		cfg, err = s.Config.ToggleCategory(event.Category)
	case EventSetDifficulty:
		cfg, err = s.Config.SetDifficulty(event.Difficulty)
	default:
		cfg, err = s.Config.SetQuestionCount(event.Count)
	}
	if err != nil {
		return s, err
	}
	s.Config = cfg
	s.LastError = ""
	return s, nil
}

// reduceStart moves Setup to Loading when at least one category is selected.
func reduceStart(s Session, event Event) (Session, error) {
	if s.State != StateSetup {
		return s, transitionError(s.State, event.Kind)
	}
	if len(s.Config.selected) == 0 {
		return s, validationError(ErrNoCategories, "")
	}
	s = s.clearRuntime()
	s.State = StateLoading
	s.LastError = ""
	return s, nil
}

// reduceGenerated installs the question set atomically and starts play.
func reduceGenerated(s Session, event Event) (Session, error) {
	if s.State != StateLoading {
		return s, transitionError(s.State, event.Kind)
	}
	if len(event.Questions) == 0 {
		return s, fmt.Errorf("%w: empty question set", ErrInvalidTransition)
	}
	s.ID = event.SessionID
	s.Questions = question.CloneAll(event.Questions)
	s.Current = 0
	s.Pending = noSelection
	s.Revealed = false
	s.Answers = []AnswerRecord{}
	s.Score = 0
	s.State = StatePlaying
	return s, nil
}

// reduceGenerationFailed returns to Setup without keeping any session data.
func reduceGenerationFailed(s Session, event Event) (Session, error) {
	if s.State != StateLoading {
		return s, transitionError(s.State, event.Kind)
	}
	s = s.clearRuntime()
	s.State = StateSetup
	s.LastError = generationMessage(event.Err)
	return s, nil
}

// reduceSelect overwrites the pending selection before reveal.
func reduceSelect(s Session, event Event) (Session, error) {
	if s.State != StatePlaying || s.Revealed {
		return s, transitionError(s.State, event.Kind)
	}
	current, _ := s.CurrentQuestion()
	if event.Option < 0 || event.Option >= len(current.Options) {
		return s, validationError(ErrOptionOutOfRange, fmt.Sprintf("%d", event.Option))
	}
	s.Pending = event.Option
	s.LastError = ""
	return s, nil
}

// reduceAdvance reveals the answer first and commits the record second.
func reduceAdvance(s Session, event Event) (Session, error) {
	if s.State != StatePlaying {
		return s, transitionError(s.State, event.Kind)
	}
	if !s.HasPending() {
		return s, validationError(ErrNoSelection, "")
	}
	if !s.Revealed {
		s.Revealed = true
		return s, nil
	}

	current, _ := s.CurrentQuestion()
	record := Evaluate(current, s.Current, s.Pending)
	// full slice expression forces a copy so earlier snapshots keep their log
	s.Answers = append(s.Answers[:len(s.Answers):len(s.Answers)], record)
	if record.Correct {
		s.Score++
	}
	s.Pending = noSelection
	s.Revealed = false
	if s.Current+1 < len(s.Questions) {
		s.Current++
		return s, nil
	}
	s.State = StateResults
	return s, nil
}

// reduceReset clears runtime fields and keeps the configuration.
func reduceReset(s Session, event Event) (Session, error) {
	if s.State != StateResults {
		return s, transitionError(s.State, event.Kind)
	}
	s = s.clearRuntime()
	s.State = StateSetup
	s.LastError = ""
	return s, nil
}

func generationMessage(err error) string {
	if err == nil {
		return "failed to generate questions, please try again"
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Error()
	}
	return (&GenerationError{Cause: err}).Error()
}
