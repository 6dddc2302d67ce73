package cli

import (
	"flag"
	"fmt"
	"io"

	"trivia/internal/config"
)

// runValidate loads a config file and lists every issue it has.
// Unlike play, it never falls back to built-in defaults.
func runValidate(cmd *Command, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to config file (default: search for .trivia/config.yml)")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}

	path, err := resolveConfigPath(*configPath)
	if err == nil {
		_, err = config.Load(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
		return ExitError
	}
	fmt.Fprintf(stdout, "Config OK: %s\n", path)
	return ExitOK
}
