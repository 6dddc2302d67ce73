package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

func parseUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", value)
	}
}

// uiChoice is the outcome of ui mode resolution for one play run.
type uiChoice struct {
	live    bool
	warning string
}

// isTerminal is swapped in tests to fake a TTY.
var isTerminal = func(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveUIMode picks the live UI or plain mode. Live needs both streams to
// be terminals. Verbose output steers only the auto mode to plain.
func resolveUIMode(value string, verbose bool, stdin io.Reader, stdout io.Writer) (uiChoice, error) {
	mode, err := parseUIMode(value)
	if err != nil {
		return uiChoice{}, err
	}
	tty := isTerminal(stdin) && isTerminal(stdout)
	switch {
	case mode == uiPlain:
		return uiChoice{}, nil
	case mode == uiAuto:
		return uiChoice{live: tty && !verbose}, nil
	case !tty:
		return uiChoice{warning: "Live UI requested but the terminal is not interactive; falling back to plain mode."}, nil
	default:
		return uiChoice{live: true}, nil
	}
}
