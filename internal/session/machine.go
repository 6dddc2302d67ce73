package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"trivia/internal/question"
)

// Generator produces a question set for a request.
type Generator interface {
	Generate(ctx context.Context, req question.Request) ([]question.Question, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req question.Request) ([]question.Question, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req question.Request) ([]question.Question, error) {
	return f(ctx, req)
}

// MachineOptions configures a Machine.
type MachineOptions struct {
	// Timeout bounds a generation request; zero means no timeout.
	Timeout time.Duration
	// NewID assigns session ids; defaults to random UUIDs.
	NewID func() string
}

// Machine owns one session and serializes every transition on it.
type Machine struct {
	mu        sync.Mutex
	session   Session
	generator Generator
	timeout   time.Duration
	newID     func() string
}

// NewMachine creates a machine in Setup.
func NewMachine(generator Generator, cfg Config, opts MachineOptions) *Machine {
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Machine{
		session:   New(cfg),
		generator: generator,
		timeout:   opts.Timeout,
		newID:     newID,
	}
}

// ToggleCategory flips a category while in Setup.
func (m *Machine) ToggleCategory(label string) error {
	return m.apply(ToggleCategory(label))
}

// SetDifficulty replaces the difficulty while in Setup.
func (m *Machine) SetDifficulty(value question.Difficulty) error {
	return m.apply(SetDifficulty(value))
}

// SetQuestionCount replaces the question count while in Setup.
func (m *Machine) SetQuestionCount(value int) error {
	return m.apply(SetQuestionCount(value))
}

// SelectAnswer records a pending selection for the current question.
func (m *Machine) SelectAnswer(option int) error {
	return m.apply(SelectAnswer(option))
}

// Advance reveals the current answer or moves to the next question.
func (m *Machine) Advance() error {
	return m.apply(Advance())
}

// ResetGame returns from Results to Setup.
func (m *Machine) ResetGame() error {
	return m.apply(Reset())
}

// StartGame requests a question set and blocks until it arrives or fails.
// The session stays in Loading for the duration and rejects other intents,
// so at most one request is in flight.
func (m *Machine) StartGame(ctx context.Context) error {
	m.mu.Lock()
	next, err := Reduce(m.session, StartRequested())
	if err != nil {
		m.noteValidation(err)
		m.mu.Unlock()
		return err
	}
	m.session = next
	req := next.Config.Request()
	m.mu.Unlock()

	questions, genErr := m.generate(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	if genErr == nil {
		installed, err := Reduce(m.session, GenerationSucceeded(m.newID(), questions))
		if err == nil {
			m.session = installed
			return nil
		}
		genErr = err
	}
	failed, err := Reduce(m.session, GenerationFailed(genErr))
	if err != nil {
		return err
	}
	m.session = failed
	return &GenerationError{Cause: genErr}
}

// Snapshot returns a deep copy of the session.
func (m *Machine) Snapshot() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session
	s.Questions = question.CloneAll(s.Questions)
	s.Answers = slices.Clone(s.Answers)
	return s
}

// View returns the read model for the presentation layer.
func (m *Machine) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return BuildView(m.session)
}

func (m *Machine) apply(event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := Reduce(m.session, event)
	if err != nil {
		m.noteValidation(err)
		return err
	}
	m.session = next
	return nil
}

// noteValidation surfaces a validation error in the read model. Callers hold mu.
func (m *Machine) noteValidation(err error) {
	var validation *ValidationError
	if errors.As(err, &validation) {
		m.session.LastError = validation.Error()
	}
}

func (m *Machine) generate(ctx context.Context, req question.Request) (questions []question.Question, err error) {
	if m.generator == nil {
		return nil, fmt.Errorf("no question generator configured")
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			questions = nil
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	questions, err = m.generator.Generate(ctx, req)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return questions, err
}
