/*
File    : monkey/repl/repl.go

Package repl implements the interactive read-eval-print loop. It reads one
line at a time, parses and evaluates it against an Environment that is
kept alive for the whole session (so a `let` on one line is visible on the
next), and prints either the parse-error banner, the evaluation error, or
the result's display form.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/asha-lang/monkey/eval"
	"github.com/asha-lang/monkey/lexer"
	"github.com/asha-lang/monkey/object"
	"github.com/asha-lang/monkey/parser"
)

// Prompt is the exact prompt string written before each line of input.
const Prompt = ">> "

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
)

// Repl configures an interactive session: its prompt and whether output is
// colored. The environment is created by Start and persists across every
// line read during that call.
type Repl struct {
	Prompt  string
	NoColor bool
}

// New returns a Repl with the standard ">> " prompt.
func New() *Repl {
	return &Repl{Prompt: Prompt}
}

// Start runs the read-eval-print loop against reader/writer until a blank
// (or whitespace-only) line is entered or input is exhausted. Line editing
// and history are provided by readline, which reads its input from reader
// and writes prompts and echo to writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.promptText(),
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		if strings.TrimSpace(line) == "" {
			return nil
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

func (r *Repl) promptText() string {
	if r.Prompt != "" {
		return r.Prompt
	}
	return Prompt
}

// evalLine lexes, parses, and evaluates one line, printing the parser
// error banner, the evaluation error, or the result's display form.
func (r *Repl) evalLine(writer io.Writer, line string, env *object.Environment) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		r.colorize(errorColor).Fprintf(writer, "Woops! parser got %d errors!\n", len(errs))
		for _, e := range errs {
			r.colorize(errorColor).Fprintf(writer, "\t[%d:%d] %s\n", e.Line, e.Column, e.Message)
		}
		return
	}

	result, evalErr := eval.Eval(program, env)
	if evalErr != nil {
		r.colorize(errorColor).Fprintf(writer, "%s\n", evalErr.Error())
		return
	}

	r.colorize(resultColor).Fprintf(writer, "%s\n", Display(result))
}

// Display renders an object.Object per the reference display rules:
// Integer/Boolean/Null print via Inspect(), and a ReturnValue is unwrapped
// rather than shown with its wrapper tag.
func Display(obj object.Object) string {
	if rv, ok := obj.(*object.ReturnValue); ok {
		return Display(rv.Value)
	}
	return obj.Inspect()
}

func (r *Repl) colorize(c *color.Color) *color.Color {
	if r.NoColor {
		return color.New()
	}
	return c
}
