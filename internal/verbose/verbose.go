// Package verbose writes prefixed diagnostic lines to one or more sinks.
package verbose

import (
	"fmt"
	"io"
	"strings"
)

const (
	prefix           = "[verbose]"
	truncationMarker = "\n... [truncated]"
	// DefaultMaxBytes bounds a block written to the console sink.
	DefaultMaxBytes = 4096
)

// Options configures a Logger.
type Options struct {
	// Writer receives console output when Enabled is set.
	Writer  io.Writer
	Enabled bool
	NoColor bool
	// LogWriter receives every line, uncolored and untruncated.
	LogWriter io.Writer
	MaxBytes  int
}

type sink struct {
	writer   io.Writer
	palette  palette
	maxBytes int
}

// Logger fans verbose lines out to its sinks. A nil Logger is silent.
type Logger struct {
	sinks []sink
}

// New builds a logger. It returns nil when no sink is active.
func New(opts Options) *Logger {
	maxBytes := opts.MaxBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxBytes
	}
	var sinks []sink
	if opts.Enabled && opts.Writer != nil {
		sinks = append(sinks, sink{
			writer:   opts.Writer,
			palette:  paletteFor(opts.Writer, opts.NoColor),
			maxBytes: maxBytes,
		})
	}
	if opts.LogWriter != nil {
		sinks = append(sinks, sink{writer: opts.LogWriter})
	}
	if len(sinks) == 0 {
		return nil
	}
	return &Logger{sinks: sinks}
}

// Enabled reports whether any sink is active.
func (l *Logger) Enabled() bool {
	return l != nil && len(l.sinks) > 0
}

// Printf writes one styled line.
func (l *Logger) Printf(style Style, format string, args ...any) {
	if !l.Enabled() {
		return
	}
	message := fmt.Sprintf(format, args...)
	for _, s := range l.sinks {
		writeLine(s, style, message)
	}
}

// Block writes a header followed by a multi-line body.
func (l *Logger) Block(header, body string, headerStyle, bodyStyle Style) {
	if !l.Enabled() {
		return
	}
	for _, s := range l.sinks {
		writeLine(s, headerStyle, header)
		trimmed := truncate(body, s.maxBytes)
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		for _, line := range strings.Split(trimmed, "\n") {
			writeLine(s, bodyStyle, line)
		}
	}
}

func writeLine(s sink, style Style, line string) {
	lead := prefix
	if s.palette.enabled {
		lead = s.palette.apply(StyleDim, lead)
	}
	fmt.Fprintf(s.writer, "%s %s\n", lead, s.palette.apply(style, line))
}

func truncate(value string, maxBytes int) string {
	if maxBytes <= 0 || len(value) <= maxBytes {
		return value
	}
	if maxBytes <= len(truncationMarker) {
		return truncationMarker[:maxBytes]
	}
	return value[:maxBytes-len(truncationMarker)] + truncationMarker
}
