package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trivia/internal/question"
	"trivia/internal/results"
	"trivia/internal/session"
)

const setupCommands = `Commands: toggle <number|name>, difficulty <easy|medium|hard>, count <5|10|15|20>, start, quit`

// runPlain drives the machine with typed commands, one per line, until
// quit or end of input.
func runPlain(ctx context.Context, machine *session.Machine, in io.Reader, out io.Writer, onFinish func(results.Summary)) error {
	input := newLineReader(in)
	lastScreen := ""
	for {
		view := machine.View()
		if screen := screenKey(view); screen != lastScreen {
			renderPlainView(out, view)
			lastScreen = screen
		}
		fmt.Fprint(out, "> ")
		line, ok, err := input.next()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		quit, cmdErr := handlePlainLine(ctx, machine, view, line, out)
		if cmdErr != nil {
			fmt.Fprintf(out, "! %v\n", cmdErr)
		}
		if next := machine.View(); next.State == session.StateResults && view.State != session.StateResults {
			summary, err := results.FromView(next)
			if err != nil {
				return err
			}
			if onFinish != nil {
				onFinish(summary)
			}
		}
		if quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
	}
}

func handlePlainLine(ctx context.Context, machine *session.Machine, view session.View, line string, out io.Writer) (bool, error) {
	verb, arg, _ := strings.Cut(line, " ")
	verb = strings.ToLower(verb)
	arg = strings.TrimSpace(arg)
	if verb == "quit" || verb == "q" || verb == "exit" {
		return true, nil
	}

	switch view.State {
	case session.StateSetup:
		switch verb {
		case "toggle", "t":
			return false, machine.ToggleCategory(categoryArg(view, arg))
		case "difficulty", "d":
			difficulty, err := question.ParseDifficulty(arg)
			if err != nil {
				return false, err
			}
			return false, machine.SetDifficulty(difficulty)
		case "count", "n":
			count, err := strconv.Atoi(arg)
			if err != nil {
				return false, fmt.Errorf("invalid count %q", arg)
			}
			return false, machine.SetQuestionCount(count)
		case "start", "s":
			fmt.Fprintf(out, "Generating %d %s questions...\n", view.QuestionCount, view.Difficulty)
			return false, machine.StartGame(ctx)
		case "", "help", "?":
			fmt.Fprintln(out, setupCommands)
			return false, nil
		}
		if _, err := strconv.Atoi(verb); err == nil {
			return false, machine.ToggleCategory(categoryArg(view, verb))
		}
	case session.StatePlaying:
		switch verb {
		case "", "next", "enter":
			return false, machine.Advance()
		}
		if option, ok := optionArg(verb); ok {
			return false, machine.SelectAnswer(option)
		}
	case session.StateResults:
		switch verb {
		case "again", "r", "reset":
			return false, machine.ResetGame()
		case "":
			return false, nil
		}
	}
	return false, fmt.Errorf("unknown command %q", line)
}

// categoryArg resolves a 1-based catalog number to its label.
func categoryArg(view session.View, arg string) string {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(view.Categories) {
		return view.Categories[n-1].Label
	}
	return arg
}

// optionArg maps 1-4 and a-d to an option index.
func optionArg(value string) (int, bool) {
	if len(value) != 1 {
		return 0, false
	}
	switch c := value[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}

// screenKey changes whenever the rendered screen would.
func screenKey(view session.View) string {
	key := fmt.Sprintf("%s|%d|%s|%d|%d|%t", view.State, view.Selected, view.Difficulty, view.QuestionCount, view.Score, view.Revealed)
	for _, category := range view.Categories {
		if category.Selected {
			key += "|" + category.Label
		}
	}
	if view.Question != nil {
		key += fmt.Sprintf("|q%d", view.Question.Number)
	}
	return key
}

func renderPlainView(out io.Writer, view session.View) {
	switch view.State {
	case session.StateSetup:
		renderPlainSetup(out, view)
	case session.StatePlaying:
		renderPlainQuestion(out, view)
	case session.StateResults:
		summary, err := results.FromView(view)
		if err != nil {
			fmt.Fprintf(out, "! %v\n", err)
			return
		}
		renderPlainResults(out, summary)
	}
}

func renderPlainSetup(out io.Writer, view session.View) {
	fmt.Fprintln(out, "Categories:")
	for i, category := range view.Categories {
		box := "[ ]"
		if category.Selected {
			box = "[x]"
		}
		fmt.Fprintf(out, "%3d. %s %s\n", i+1, box, category.Label)
	}
	fmt.Fprintf(out, "Difficulty: %s  Questions: %d\n", view.Difficulty, view.QuestionCount)
	if view.Error != "" {
		fmt.Fprintf(out, "! %s\n", view.Error)
	}
	fmt.Fprintln(out, setupCommands)
}

func renderPlainQuestion(out io.Writer, view session.View) {
	q := view.Question
	if q == nil {
		return
	}
	fmt.Fprintf(out, "\nQuestion %d of %d (%s)  Score: %d\n", q.Number, q.Total, q.Category, view.Score)
	fmt.Fprintln(out, q.Prompt)
	for _, option := range q.Options {
		lead := "  "
		suffix := ""
		switch option.Mark {
		case session.MarkSelected:
			lead = "> "
		case session.MarkCorrect:
			suffix = "  (correct)"
			if option.Checkmark {
				suffix = "  ✓ correct"
			}
		case session.MarkWrong:
			lead = "> "
			suffix = "  ✗ your answer"
		}
		fmt.Fprintf(out, "%s%s. %s%s\n", lead, option.Letter, option.Text, suffix)
	}
	fmt.Fprintf(out, "[enter] %s\n", view.AdvanceLabel)
}

func renderPlainResults(out io.Writer, summary results.Summary) {
	fmt.Fprintf(out, "\nScore: %d/%d (%d%%) %s\n", summary.Score, summary.Total, summary.Percentage, summary.Band)
	for _, entry := range summary.Entries {
		verdict := "correct"
		if !entry.Correct {
			verdict = "wrong"
		}
		fmt.Fprintf(out, "%3d. %-7s %s\n", entry.Index+1, verdict, entry.Question)
		fmt.Fprintf(out, "     Your answer: %s\n", entry.YourAnswer)
		if !entry.Correct {
			fmt.Fprintf(out, "     Correct answer: %s\n", entry.CorrectAnswer)
		}
	}
	fmt.Fprintln(out, `Type "again" to play again or "quit" to exit.`)
}
