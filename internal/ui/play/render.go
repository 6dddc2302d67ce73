package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trivia/internal/session"
)

var (
	colorTitle    = lipgloss.Color("63")
	colorMuted    = lipgloss.Color("244")
	colorSelected = lipgloss.Color("39")
	colorCorrect  = lipgloss.Color("42")
	colorWrong    = lipgloss.Color("196")
	colorError    = lipgloss.Color("203")
)

// View renders the current state.
func (m Model) View() string {
	var body string
	switch {
	case m.loading():
		body = m.renderLoading()
	case m.view.State == session.StatePlaying:
		body = m.renderPlaying()
	case m.view.State == session.StateResults:
		body = m.renderResults()
	default:
		body = m.renderSetup()
	}
	parts := []string{m.style(colorTitle, true).Render("Trivia"), body}
	if msg := m.errorLine(); msg != "" {
		parts = append(parts, m.style(colorError, true).Render(msg))
	}
	parts = append(parts, m.help.View(m.helpFor()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) renderSetup() string {
	var b strings.Builder
	b.WriteString("Choose categories:\n")
	for i, category := range m.view.Categories {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		box := "[ ]"
		if category.Selected {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, box, category.Label)
		if category.Selected {
			line = m.style(colorSelected, false).Render(line)
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "\nDifficulty: %s   Questions: %d\n", m.view.Difficulty, m.view.QuestionCount)
	return b.String()
}

func (m Model) renderLoading() string {
	return fmt.Sprintf("\n%s Generating %d %s questions...\n", m.spinner.View(), m.view.QuestionCount, m.view.Difficulty)
}

func (m Model) renderPlaying() string {
	q := m.view.Question
	if q == nil {
		return ""
	}
	var b strings.Builder
	header := fmt.Sprintf("Question %d of %d", q.Number, q.Total)
	if q.Category != "" {
		header += " | " + q.Category
	}
	header += fmt.Sprintf(" | Score: %d", m.view.Score)
	b.WriteString(m.style(colorMuted, false).Render(header) + "\n\n")
	b.WriteString(q.Prompt + "\n\n")
	for _, option := range q.Options {
		b.WriteString(m.renderOption(option) + "\n")
	}
	fmt.Fprintf(&b, "\n[enter] %s\n", m.view.AdvanceLabel)
	return b.String()
}

func (m Model) renderOption(option session.OptionView) string {
	line := fmt.Sprintf("%s. %s", option.Letter, option.Text)
	switch option.Mark {
	case session.MarkSelected:
		return m.style(colorSelected, true).Render("> " + line)
	case session.MarkCorrect:
		if option.Checkmark {
			line += " ✓"
		}
		return m.style(colorCorrect, true).Render("  " + line)
	case session.MarkWrong:
		return m.style(colorWrong, true).Render("  " + line + " ✗")
	case session.MarkDimmed:
		return m.style(colorMuted, false).Render("  " + line)
	default:
		return "  " + line
	}
}

func (m Model) renderResults() string {
	if m.summary == nil {
		return "Game over.\n"
	}
	s := *m.summary
	headline := fmt.Sprintf("Score: %d/%d (%d%%) %s", s.Score, s.Total, s.Percentage, s.Band)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.style(colorTitle, true).Render(headline),
		"",
		m.table.View(),
	) + "\n"
}

func (m Model) errorLine() string {
	if m.notice != "" {
		return m.notice
	}
	return m.view.Error
}

func (m Model) helpFor() stateHelp {
	switch {
	case m.loading():
		return stateHelp{}
	case m.view.State == session.StatePlaying:
		return stateHelp{m.keys.Select, m.keys.Advance, m.keys.Quit}
	case m.view.State == session.StateResults:
		return stateHelp{m.keys.Up, m.keys.Down, m.keys.Reset, m.keys.Quit}
	default:
		return stateHelp{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Difficulty, m.keys.Count, m.keys.Start, m.keys.Quit}
	}
}

func (m Model) style(color lipgloss.Color, bold bool) lipgloss.Style {
	if m.noColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold)
}
