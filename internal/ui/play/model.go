// Package play is the Bubble Tea front end for a trivia session.
package play

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/question"
	"trivia/internal/results"
	"trivia/internal/session"
)

// Options configures the play UI model.
type Options struct {
	NoColor bool
	// Context bounds question generation; defaults to context.Background.
	Context context.Context
	// OnFinish is called each time a game reaches Results.
	OnFinish func(results.Summary)
}

// Model renders a session and forwards key presses to its machine.
type Model struct {
	machine  *session.Machine
	view     session.View
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	table    table.Model
	summary  *results.Summary
	cursor   int
	starting bool
	notice   string
	lastErr  error
	width    int
	noColor  bool
	ctx      context.Context
	onFinish func(results.Summary)
}

// generationDoneMsg reports the outcome of StartGame.
type generationDoneMsg struct {
	err error
}

// NewModel constructs a UI model for machine.
func NewModel(machine *session.Machine, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !opts.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	}
	t := table.New(
		table.WithColumns(reviewColumns(80)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		machine:  machine,
		view:     machine.View(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		table:    t,
		width:    80,
		noColor:  opts.NoColor,
		ctx:      ctx,
		onFinish: opts.OnFinish,
	}
}

// Init has no startup work; the session begins in Setup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error from the most recent generation attempt.
func (m Model) Err() error {
	return m.lastErr
}

// Summary returns the most recent finished game, if any.
func (m Model) Summary() (results.Summary, bool) {
	if m.summary == nil {
		return results.Summary{}, false
	}
	return *m.summary, true
}

// Update maps messages to machine intents and refreshes the read model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.table.SetColumns(reviewColumns(typed.Width))
		m.table.SetHeight(max(typed.Height-8, 3))
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case generationDoneMsg:
		m.starting = false
		m.lastErr = typed.err
		return m.refresh(), nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) && (typed.String() == "ctrl+c" || !m.loading()) {
			return m, tea.Quit
		}
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view.State {
	case session.StateSetup:
		return m.handleSetupKey(msg)
	case session.StatePlaying:
		return m.handlePlayingKey(msg)
	case session.StateResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.starting {
		return m, nil
	}
	categories := m.view.Categories
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(categories)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(categories) {
			_ = m.machine.ToggleCategory(categories[m.cursor].Label)
		}
	case key.Matches(msg, m.keys.Difficulty):
		_ = m.machine.SetDifficulty(nextDifficulty(m.view.Difficulty))
	case key.Matches(msg, m.keys.Count):
		_ = m.machine.SetQuestionCount(nextCount(m.view.QuestionCount))
	case key.Matches(msg, m.keys.Start):
		m.notice = ""
		if !hasSelection(categories) {
			// Rejected synchronously without contacting the generator.
			_ = m.machine.StartGame(m.ctx)
			return m.refresh(), nil
		}
		m.starting = true
		return m.refresh(), tea.Batch(m.spinner.Tick, startGame(m.ctx, m.machine))
	}
	return m.refresh(), nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Advance):
		_ = m.machine.Advance()
	case key.Matches(msg, m.keys.Select):
		if option, ok := optionForKey(msg.String()); ok {
			_ = m.machine.SelectAnswer(option)
		}
	}
	return m.refresh(), nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Reset) {
		_ = m.machine.ResetGame()
		return m.refresh(), nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refresh pulls the read model and reacts to entering Results.
func (m Model) refresh() Model {
	previous := m.view.State
	m.view = m.machine.View()
	if m.view.State == session.StateResults && previous != session.StateResults {
		summary, err := results.FromView(m.view)
		if err != nil {
			m.notice = err.Error()
			return m
		}
		m.summary = &summary
		m.table.SetRows(reviewRows(summary))
		m.table.GotoTop()
		if m.onFinish != nil {
			m.onFinish(summary)
		}
	}
	return m
}

func (m Model) loading() bool {
	return m.starting || m.view.State == session.StateLoading
}

func startGame(ctx context.Context, machine *session.Machine) tea.Cmd {
	return func() tea.Msg {
		return generationDoneMsg{err: machine.StartGame(ctx)}
	}
}

func hasSelection(categories []session.CategoryView) bool {
	return slices.ContainsFunc(categories, func(c session.CategoryView) bool { return c.Selected })
}

func nextDifficulty(current question.Difficulty) question.Difficulty {
	index := slices.Index(question.Difficulties, current)
	return question.Difficulties[(index+1)%len(question.Difficulties)]
}

func nextCount(current int) int {
	index := slices.Index(session.AllowedQuestionCounts, current)
	return session.AllowedQuestionCounts[(index+1)%len(session.AllowedQuestionCounts)]
}
