package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineReader yields trimmed input lines for interactive prompts.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the next line. ok is false once input is exhausted.
func (l *lineReader) next() (line string, ok bool, err error) {
	if l.scanner.Scan() {
		return strings.TrimSpace(l.scanner.Text()), true, nil
	}
	return "", false, l.scanner.Err()
}

// confirm asks a yes/no question until it gets an answer. An empty answer,
// or end of input, picks the default.
func confirm(in *lineReader, out io.Writer, question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", question, hint)
		answer, ok, err := in.next()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			return defaultYes, nil
		}
		if !ok {
			return false, fmt.Errorf("invalid response %q", answer)
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}
