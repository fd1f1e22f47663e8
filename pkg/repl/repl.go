package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"imp/interpreter-go/pkg/interpreter"
	"imp/interpreter-go/pkg/parser"
	"imp/interpreter-go/pkg/runtime"
)

// Loop is the read-eval-print driver. Each turn reads one line, parses it,
// evaluates the program against a fresh state, and reports either the final
// bindings or an error. Turns are fully independent: no state survives from
// one line to the next.
type Loop struct {
	reader LineReader
	out    io.Writer
	errOut io.Writer
	interp *interpreter.Interpreter
}

// NewLoop wires a line reader to the evaluator. Output and error streams are
// usually os.Stdout and os.Stderr.
func NewLoop(reader LineReader, out, errOut io.Writer) *Loop {
	return &Loop{
		reader: reader,
		out:    out,
		errOut: errOut,
		interp: interpreter.New(),
	}
}

// Run drives the loop until the reader reports interrupt or end of input
// (both clean terminations) or fails outright (returned as an error after
// being reported).
func (l *Loop) Run() error {
	for {
		line, err := l.reader.ReadLine()
		switch {
		case errors.Is(err, ErrInterrupted):
			fmt.Fprintln(l.out, "interrupted")
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.out, "end of input")
			return nil
		case err != nil:
			fmt.Fprintf(l.errOut, "read failure: %v\n", err)
			return err
		}
		l.evaluateLine(line)
	}
}

// evaluateLine runs a single turn. Syntax and evaluation errors are reported
// and the loop moves on; neither is fatal.
func (l *Loop) evaluateLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	prog, err := parser.Parse(line)
	if err != nil {
		fmt.Fprintf(l.out, "syntax error: %v\n", err)
		return
	}
	state, err := l.interp.EvaluateProgram(prog)
	if err != nil {
		fmt.Fprintf(l.out, "evaluation error: %v\n", err)
		return
	}
	fmt.Fprintln(l.out, FormatBindings(state))
}

// FormatBindings renders a state as `{x = 1, y = 2}` with names sorted.
func FormatBindings(state *runtime.State) string {
	var b strings.Builder
	b.WriteString("{")
	for idx, name := range state.Keys() {
		if idx > 0 {
			b.WriteString(", ")
		}
		value, _ := state.Get(name)
		fmt.Fprintf(&b, "%s = %d", name, value)
	}
	b.WriteString("}")
	return b.String()
}
