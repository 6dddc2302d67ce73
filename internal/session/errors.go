package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCategories is returned when starting without any selected category.
	ErrNoCategories = errors.New("select at least one category")
	// ErrNoSelection is returned when advancing without a selected answer.
	ErrNoSelection = errors.New("select an answer")
	// ErrUnknownCategory is returned when toggling a label outside the catalog.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInvalidDifficulty is returned for difficulties outside easy|medium|hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrInvalidQuestionCount is returned for counts outside the allowed set.
	ErrInvalidQuestionCount = errors.New("invalid question count")
	// ErrOptionOutOfRange is returned when selecting a non-existent option.
	ErrOptionOutOfRange = errors.New("answer option out of range")

	// ErrInvalidTransition is returned for intents not legal in the current state.
	ErrInvalidTransition = errors.New("invalid transition")
)

// ValidationError is a recoverable, user-facing input error. The session
// state is unchanged when it is returned.
type ValidationError struct {
	Reason error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Reason }

func validationError(reason error, detail string) error {
	return &ValidationError{Reason: reason, Detail: detail}
}

// GenerationError reports a failed question generation. The session is back
// in Setup when it is returned.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate questions: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// transitionError wraps ErrInvalidTransition with the offending state and intent.
func transitionError(state State, kind EventKind) error {
	return fmt.Errorf("%w: %s not allowed in %s", ErrInvalidTransition, kind, state)
}
