package play

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"trivia/internal/results"
)

// reviewColumns sizes the review table to the terminal width.
func reviewColumns(width int) []table.Column {
	fixed := 4 + 8 + 10
	flexible := max(width-fixed-10, 30)
	questionWidth := flexible / 2
	answerWidth := max((flexible-questionWidth)/2, 10)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: questionWidth},
		{Title: "Your answer", Width: answerWidth},
		{Title: "Correct answer", Width: answerWidth},
		{Title: "Result", Width: 8},
	}
}

// reviewRows lists every question; the correct answer column is filled
// only when the player was wrong.
func reviewRows(summary results.Summary) []table.Row {
	rows := make([]table.Row, 0, len(summary.Entries))
	for _, entry := range summary.Entries {
		verdict := "correct"
		correctAnswer := ""
		if !entry.Correct {
			verdict = "wrong"
			correctAnswer = entry.CorrectAnswer
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", entry.Index+1),
			entry.Question,
			entry.YourAnswer,
			correctAnswer,
			verdict,
		})
	}
	return rows
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}
