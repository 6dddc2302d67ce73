package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"trivia/internal/config"
)

// initInput overrides stdin for the init confirmation prompt.
var initInput io.Reader

// runInit writes a starter config after a confirmation prompt (skipped by
// --yes). An existing file is never replaced.
func runInit(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to config file (default: ./.trivia/config.yml)")
	yes := flags.Bool("yes", false, "Skip the confirmation prompt")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}

	target := strings.TrimSpace(*configPath)
	if target == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		target = config.ConfigPath(wd)
	}
	target, err := filepath.Abs(target)
	if err != nil {
		fmt.Fprintf(stderr, "Init failed: %v\n", err)
		return ExitError
	}
	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", target)
			return ExitError
		}
		fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", target)
		return ExitError
	}

	if !*yes {
		in := initInput
		if in == nil {
			in = os.Stdin
		}
		ok, err := confirm(newLineReader(in), stdout, fmt.Sprintf("Write trivia config to %s?", target), true)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		if !ok {
			fmt.Fprintln(stderr, "Init cancelled.")
			return ExitError
		}
	}

	if err := config.Scaffold(target); err != nil {
		fmt.Fprintf(stderr, "Init failed: %v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Wrote %s\n", target)
	fmt.Fprintln(stdout, "Set LLM_API_KEY in your environment or a .env file, then run \"trivia play\".")
	return ExitOK
}
