package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"trivia/internal/config"
	"trivia/internal/gateway"
	"trivia/internal/llm"
	"trivia/internal/question"
	"trivia/internal/results"
	"trivia/internal/session"
	"trivia/internal/ui/play"
	"trivia/internal/verbose"
)

// Seams replaced in tests.
var (
	playInput   io.Reader
	newProvider = defaultProvider
	runLiveUI   = defaultRunLiveUI
)

type playOptions struct {
	configPath string
	categories string
	difficulty string
	count      int
	uiMode     string
	verbose    bool
	logPath    string
	noColor    bool
	resultsOut string
}

// runPlay loads config, wires the provider and gateway, and runs one game
// in the resolved ui mode.
func runPlay(cmd *Command, args []string, stdout, stderr io.Writer) int {
	var opts playOptions
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search for .trivia/config.yml)")
	flags.StringVar(&opts.categories, "categories", "", "Comma-separated categories to preselect")
	flags.StringVar(&opts.difficulty, "difficulty", "", "Difficulty: easy|medium|hard")
	flags.IntVar(&opts.count, "count", 0, "Number of questions: 5|10|15|20")
	flags.StringVar(&opts.uiMode, "ui", "auto", "UI mode: auto|live|plain")
	flags.BoolVar(&opts.verbose, "verbose", false, "Write provider diagnostics to stderr")
	flags.StringVar(&opts.logPath, "log", "", "Write provider diagnostics to a file")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.resultsOut, "results-out", "", "Write the finished game summary as JSON")
	if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
		return code
	}

	if err := config.LoadDotEnv("."); err != nil {
		fmt.Fprintf(stderr, "Failed to load .env: %v\n", err)
		return ExitError
	}
	cfg, _, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return ExitError
	}
	setup, err := cfg.SessionConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Invalid defaults: %v\n", err)
		return ExitError
	}
	setup, err = applyPlayFlags(setup, opts)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return ExitUsage
	}

	in := playInput
	if in == nil {
		in = os.Stdin
	}
	choice, err := resolveUIMode(opts.uiMode, opts.verbose, in, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return ExitUsage
	}
	if choice.warning != "" {
		fmt.Fprintln(stderr, choice.warning)
	}

	provider, err := newProvider(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to configure question provider: %v\n", err)
		if errors.Is(err, llm.ErrMissingAPIKey) {
			fmt.Fprintln(stderr, "Set LLM_API_KEY in your environment or a .env file.")
		}
		return ExitError
	}

	logger, closeLog, err := buildLogger(opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return ExitError
	}
	defer closeLog()

	gw := gateway.New(provider, gateway.Options{
		Timeout:     cfg.Timeout(),
		Temperature: cfg.Provider.Temperature,
		Logger:      logger,
	})
	machine := session.NewMachine(gw, setup, session.MachineOptions{})
	logger.Printf(verbose.StyleHeadingState, "model=%s timeout=%s", cfg.Provider.Model, cfg.Timeout())

	var exportErr error
	onFinish := func(summary results.Summary) {
		logger.Printf(verbose.StyleHeadingState, "session %s finished: %d/%d", summary.SessionID, summary.Score, summary.Total)
		if opts.resultsOut == "" {
			return
		}
		if err := results.WriteFile(opts.resultsOut, summary); err != nil {
			exportErr = err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if choice.live {
		err = runLiveUI(ctx, machine, in, stdout, play.Options{NoColor: opts.noColor, Context: ctx, OnFinish: onFinish})
	} else {
		err = runPlain(ctx, machine, in, stdout, onFinish)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Play failed: %v\n", err)
		return ExitError
	}
	if exportErr != nil {
		fmt.Fprintf(stderr, "Failed to write results: %v\n", exportErr)
		return ExitError
	}
	return ExitOK
}

// applyPlayFlags layers command-line choices over the configured defaults.
func applyPlayFlags(setup session.Config, opts playOptions) (session.Config, error) {
	if strings.TrimSpace(opts.categories) != "" {
		for _, label := range strings.Split(opts.categories, ",") {
			if strings.TrimSpace(label) == "" || setup.Selected(label) {
				continue
			}
			next, err := setup.ToggleCategory(label)
			if err != nil {
				return setup, err
			}
			setup = next
		}
	}
	if opts.difficulty != "" {
		difficulty, err := question.ParseDifficulty(opts.difficulty)
		if err != nil {
			return setup, err
		}
		if setup, err = setup.SetDifficulty(difficulty); err != nil {
			return setup, err
		}
	}
	if opts.count != 0 {
		next, err := setup.SetQuestionCount(opts.count)
		if err != nil {
			return setup, err
		}
		setup = next
	}
	return setup, nil
}

func buildLogger(opts playOptions, stderr io.Writer) (*verbose.Logger, func(), error) {
	var logFile *os.File
	if opts.logPath != "" {
		file, err := os.Create(opts.logPath)
		if err != nil {
			return nil, func() {}, err
		}
		logFile = file
	}
	logOpts := verbose.Options{Writer: stderr, Enabled: opts.verbose, NoColor: opts.noColor}
	if logFile != nil {
		logOpts.LogWriter = logFile
	}
	closeLog := func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}
	return verbose.New(logOpts), closeLog, nil
}

// defaultProvider builds the provider named in the config. LLM_MODEL
// overrides the configured model.
func defaultProvider(cfg config.Config) (llm.Provider, error) {
	model := cfg.Provider.Model
	if env := llm.SettingsFromEnv(); env.Model != "" {
		model = env.Model
	}
	return llm.ProviderFromEnv(cfg.Provider.Name, model, cfg.Provider.BaseURL, nil)
}

func defaultRunLiveUI(ctx context.Context, machine *session.Machine, in io.Reader, out io.Writer, opts play.Options) error {
	program := tea.NewProgram(play.NewModel(machine, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
