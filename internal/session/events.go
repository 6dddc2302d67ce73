package session

import "trivia/internal/question"

// EventKind identifies a session event.
type EventKind int

const (
	// EventToggleCategory flips a category in the selection.
	EventToggleCategory EventKind = iota
	// EventSetDifficulty replaces the difficulty.
	EventSetDifficulty
	// EventSetQuestionCount replaces the question count.
	EventSetQuestionCount
	// EventStartRequested asks to generate questions and begin.
	EventStartRequested
	// EventGenerationSucceeded installs a generated question set.
	EventGenerationSucceeded
	// EventGenerationFailed abandons a generation attempt.
	EventGenerationFailed
	// EventSelectAnswer records a pending selection for the current question.
	EventSelectAnswer
	// EventAdvance reveals the answer or moves past the current question.
	EventAdvance
	// EventReset returns from Results to Setup.
	EventReset
)

// String returns the intent name used in error messages.
func (k EventKind) String() string {
	switch k {
	case EventToggleCategory:
		return "toggle category"
	case EventSetDifficulty:
		return "set difficulty"
	case EventSetQuestionCount:
		return "set question count"
	case EventStartRequested:
		return "start game"
	case EventGenerationSucceeded:
		return "generation succeeded"
	case EventGenerationFailed:
		return "generation failed"
	case EventSelectAnswer:
		return "select answer"
	case EventAdvance:
		return "advance"
	case EventReset:
		return "reset game"
	default:
		return "unknown event"
	}
}

// Event carries an intent or a generator outcome.
type Event struct {
	Kind       EventKind
	Category   string
	Difficulty question.Difficulty
	Count      int
	Option     int
	SessionID  string
	Questions  []question.Question
	Err        error
}

// ToggleCategory builds a toggle event.
func ToggleCategory(label string) Event {
	return Event{Kind: EventToggleCategory, Category: label}
}

// SetDifficulty builds a difficulty event.
func SetDifficulty(value question.Difficulty) Event {
	return Event{Kind: EventSetDifficulty, Difficulty: value}
}

// SetQuestionCount builds a question count event.
func SetQuestionCount(value int) Event {
	return Event{Kind: EventSetQuestionCount, Count: value}
}

// StartRequested builds a start event.
func StartRequested() Event {
	return Event{Kind: EventStartRequested}
}

// GenerationSucceeded builds the event installing a question set.
func GenerationSucceeded(sessionID string, questions []question.Question) Event {
	return Event{Kind: EventGenerationSucceeded, SessionID: sessionID, Questions: questions}
}

// GenerationFailed builds the event abandoning a generation attempt.
func GenerationFailed(err error) Event {
	return Event{Kind: EventGenerationFailed, Err: err}
}

// SelectAnswer builds a selection event.
func SelectAnswer(option int) Event {
	return Event{Kind: EventSelectAnswer, Option: option}
}

// Advance builds an advance event.
func Advance() Event {
	return Event{Kind: EventAdvance}
}

// Reset builds a reset event.
func Reset() Event {
	return Event{Kind: EventReset}
}
