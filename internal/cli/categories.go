package cli

import (
	"flag"
	"fmt"
	"io"
	"slices"

	"trivia/internal/question"
)

// runCategories prints the catalog, starring the default selection.
func runCategories(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to config file (default: search for .trivia/config.yml)")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return ExitError
	}
	for _, label := range cfg.Categories {
		marker := " "
		if slices.ContainsFunc(cfg.Defaults.Categories, func(selected string) bool {
			return question.NormalizeLabel(selected) == question.NormalizeLabel(label)
		}) {
			marker = "*"
		}
		fmt.Fprintf(stdout, "%s %s\n", marker, label)
	}
	return ExitOK
}
