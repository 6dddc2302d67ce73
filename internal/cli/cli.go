package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
)

// Process exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one trivia subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	run     func(cmd *Command, args []string, stdout, stderr io.Writer) int
}

var commands = []*Command{
	{
		Name:    "init",
		Summary: "Scaffold .trivia/config.yml",
		Usage:   []string{"trivia init [--config <path>] [--yes]"},
		run:     runInit,
	},
	{
		Name:    "validate",
		Summary: "Validate .trivia/config.yml",
		Usage:   []string{"trivia validate [--config <path>]"},
		run:     runValidate,
	},
	{
		Name:    "categories",
		Summary: "List the category catalog",
		Usage:   []string{"trivia categories [--config <path>]"},
		run:     runCategories,
	},
	{
		Name:    "play",
		Summary: "Play a trivia game",
		Usage: []string{
			"trivia play [--categories a,b] [--difficulty easy|medium|hard] [--count 5|10|15|20]",
			"            [--ui auto|live|plain] [--verbose] [--log <path>] [--no-color]",
			"            [--results-out <path>] [--config <path>]",
		},
		run: runPlay,
	},
}

// Run dispatches args to a subcommand and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	switch args[0] {
	case "-h", "--help", "help":
		printUsage(stdout)
		return ExitOK
	}

	idx := slices.IndexFunc(commands, func(cmd *Command) bool { return cmd.Name == args[0] })
	if idx < 0 {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
	cmd := commands[idx]
	if slices.Contains(args[1:], "-h") || slices.Contains(args[1:], "--help") {
		printCommandUsage(cmd, stdout)
		return ExitOK
	}
	return cmd.run(cmd, args[1:], stdout, stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, "Usage:\n  trivia <command> [options]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name, cmd.Summary)
	}
	tw.Flush()
	fmt.Fprintln(w, "\nRun \"trivia <command> --help\" for command options.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "\n%s\n", cmd.Summary)
}
