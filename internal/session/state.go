package session

import "trivia/internal/question"

// State is the coarse lifecycle phase of a session.
type State int

const (
	// StateSetup accepts configuration changes and start requests.
	StateSetup State = iota
	// StateLoading waits for the generator to return a question set.
	StateLoading
	// StatePlaying walks through the question sequence.
	StatePlaying
	// StateResults shows the final summary until reset.
	StateResults
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// noSelection marks the absence of a pending answer.
const noSelection = -1

// AnswerRecord is the immutable outcome of one answered question.
type AnswerRecord struct {
	QuestionIndex int  `json:"questionIndex"`
	Selected      int  `json:"selectedAnswer"`
	Correct       bool `json:"isCorrect"`
}

// Session is the single aggregate owned by the state machine.
//
// Questions, Answers, Current, Pending, Revealed and Score are runtime fields
// cleared on reset; Config survives a reset.
type Session struct {
	ID        string
	State     State
	Config    Config
	Questions []question.Question
	Current   int
	Pending   int
	Revealed  bool
	Answers   []AnswerRecord
	Score     int
	LastError string
}

// New returns a session in Setup with the given configuration.
func New(cfg Config) Session {
	return Session{State: StateSetup, Config: cfg, Pending: noSelection}
}

// HasPending reports whether an answer is selected for the current question.
func (s Session) HasPending() bool {
	return s.Pending != noSelection
}

// CurrentQuestion returns the question being played.
func (s Session) CurrentQuestion() (question.Question, bool) {
	if s.State != StatePlaying || s.Current < 0 || s.Current >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.Current], true
}

// IsLastQuestion reports whether the current question is the final one.
func (s Session) IsLastQuestion() bool {
	return s.State == StatePlaying && s.Current+1 == len(s.Questions)
}

// clearRuntime drops everything belonging to a play-through.
func (s Session) clearRuntime() Session {
	s.ID = ""
	s.Questions = nil
	s.Current = 0
	s.Pending = noSelection
	s.Revealed = false
	s.Answers = nil
	s.Score = 0
	return s
}
