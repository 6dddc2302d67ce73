package verbose

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// Style selects how a verbose line is styled.
type Style int

const (
	StyleDefault Style = iota
	StyleDim
	StyleHeadingPrompt
	StyleHeadingOutput
	StyleHeadingMetrics
	StyleHeadingState
	StyleHeadingError
)

// palette renders styles for one writer.
type palette struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// paletteFor selects a palette based on the writer and color settings.
func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor || !shouldUseStyling(writer) {
		return palette{}
	}
	return palette{enabled: true, renderer: lipgloss.NewRenderer(writer)}
}

// shouldUseStyling reports whether ANSI styling should be enabled.
func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return isTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return isTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	base := p.renderer.NewStyle()
	switch style {
	case StyleDim:
		return base.Faint(true).Foreground(lipgloss.Color("244")).Render(text)
	case StyleHeadingPrompt:
		return base.Bold(true).Foreground(lipgloss.Color("6")).Render(text)
	case StyleHeadingOutput:
		return base.Bold(true).Foreground(lipgloss.Color("5")).Render(text)
	case StyleHeadingMetrics:
		return base.Bold(true).Foreground(lipgloss.Color("4")).Render(text)
	case StyleHeadingState:
		return base.Bold(true).Foreground(lipgloss.Color("2")).Render(text)
	case StyleHeadingError:
		return base.Bold(true).Foreground(lipgloss.Color("1")).Render(text)
	default:
		return text
	}
}
