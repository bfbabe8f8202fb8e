package calc

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"github.com/govalues/i64"
	"github.com/govalues/i64/internal/logging"
)

const replHelpMessage = `
Enter expressions in prefix notation to evaluate them, e.g. "* 10 + 1 2".
Use "_" to refer to the previous result.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the calculator
.help     Print this help message
.ops      List the supported operators

Press ^C to abort the current line, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

// REPL reads expressions line by line and prints their values.
type REPL struct {
	Calculator

	// Prompt is printed before each line, "> " by default.
	Prompt string
	// HistoryFile keeps the entered lines between sessions, if set.
	HistoryFile string
	// Format renders results, [i64.Int64.String] by default.
	Format func(i64.Int64) string
	// Color enables colorized results and errors.
	Color bool

	// Stdin and Stdout default to the process streams.
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// Run starts the loop and returns when the input ends or the user exits.
func (r *REPL) Run() error {
	prompt := r.Prompt
	if prompt == "" {
		prompt = "> "
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: r.HistoryFile,
		Stdin:       r.Stdin,
		Stdout:      r.Stdout,
	})
	if err != nil {
		return errors.Wrap(err, "starting readline")
	}
	defer l.Close()

	fmt.Fprintf(l.Stdout(), "Welcome to i64!\n%s\n\n", replAssistanceMessage)
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return errors.Wrap(err, "reading line")
		}
		if r.Exec(l.Stdout(), line) {
			return nil
		}
	}
}

// Exec handles a single line of input, writing the outcome to w.
// It reports whether the session should end.
func (r *REPL) Exec(w io.Writer, line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, "."):
		return r.handleCommand(w, line)
	}
	x, err := r.Evaluate(line)
	if err != nil {
		logging.Debugf("evaluating %q: %v", line, err)
		fmt.Fprintln(w, r.colorizeError(err.Error()))
		return false
	}
	fmt.Fprintln(w, r.colorizeResult(r.format(x)))
	return false
}

func (r *REPL) handleCommand(w io.Writer, command string) bool {
	switch command {
	case ".exit":
		return true
	case ".help":
		fmt.Fprintln(w, replHelpMessage)
	case ".ops":
		fmt.Fprintln(w, strings.Join(Operators(), " "))
	default:
		fmt.Fprintln(w, r.colorizeError(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
	return false
}

func (r *REPL) format(x i64.Int64) string {
	if r.Format == nil {
		return x.String()
	}
	return r.Format(x)
}

func (r *REPL) colorizeResult(str string) string {
	if !r.Color {
		return str
	}
	return colorizeResult(str)
}

func (r *REPL) colorizeError(message string) string {
	if !r.Color {
		return message
	}
	return colorizeError(message)
}
