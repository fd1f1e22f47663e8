package repl

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"imp/interpreter-go/pkg/runtime"
)

// scriptedReader feeds predetermined lines, then reports finalErr.
type scriptedReader struct {
	lines    []string
	finalErr error
}

func (r *scriptedReader) ReadLine() (string, error) {
	if len(r.lines) == 0 {
		return "", r.finalErr
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) Close() error { return nil }

func runScript(t *testing.T, lines ...string) (string, error) {
	t.Helper()
	reader := &scriptedReader{lines: lines, finalErr: io.EOF}
	var out, errOut bytes.Buffer
	err := NewLoop(reader, &out, &errOut).Run()
	return out.String(), err
}

func outputLines(t *testing.T, raw string) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(raw, "\n"), "\n")
}

func TestTurnReportsBindings(t *testing.T) {
	out, err := runScript(t, "x := 3; y := x + 4")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	lines := outputLines(t, out)
	if lines[0] != "{x = 3, y = 7}" {
		t.Fatalf("turn output = %q", lines[0])
	}
}

func TestTurnRunsWhileLoop(t *testing.T) {
	out, err := runScript(t, "x := 10; while x > 0 do x := x - 1")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	if lines := outputLines(t, out); lines[0] != "{x = 0}" {
		t.Fatalf("turn output = %q", lines[0])
	}
}

func TestTurnReportsUnboundVariable(t *testing.T) {
	out, err := runScript(t, "y := x + 1")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	lines := outputLines(t, out)
	if want := `evaluation error: unbound variable "x"`; lines[0] != want {
		t.Fatalf("turn output = %q, want %q", lines[0], want)
	}
}

func TestTurnReportsDivisionByZero(t *testing.T) {
	out, err := runScript(t, "x := 1 / 0")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	lines := outputLines(t, out)
	if want := "evaluation error: division by zero"; lines[0] != want {
		t.Fatalf("turn output = %q, want %q", lines[0], want)
	}
}

func TestTurnEvaluatesConditional(t *testing.T) {
	out, err := runScript(t, "if 1 = 1 then x := 1 else x := 2")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	if lines := outputLines(t, out); lines[0] != "{x = 1}" {
		t.Fatalf("turn output = %q", lines[0])
	}
}

func TestTurnsDoNotShareState(t *testing.T) {
	out, err := runScript(t, "x := 5", "y := x + 1")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	lines := outputLines(t, out)
	if lines[0] != "{x = 5}" {
		t.Fatalf("first turn = %q", lines[0])
	}
	if want := `evaluation error: unbound variable "x"`; lines[1] != want {
		t.Fatalf("second turn = %q, want %q", lines[1], want)
	}
}

func TestSyntaxErrorDoesNotStopLoop(t *testing.T) {
	out, err := runScript(t, "x := ", "x := 1")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	lines := outputLines(t, out)
	if !strings.HasPrefix(lines[0], "syntax error:") {
		t.Fatalf("first turn = %q, want syntax error", lines[0])
	}
	if lines[1] != "{x = 1}" {
		t.Fatalf("loop did not continue after syntax error: %q", lines[1])
	}
}

func TestBlankLinesAreSkipped(t *testing.T) {
	out, err := runScript(t, "", "   ", "x := 1")
	if err != nil {
		t.Fatalf("loop error: %v", err)
	}
	lines := outputLines(t, out)
	if lines[0] != "{x = 1}" {
		t.Fatalf("blank lines produced output: %q", out)
	}
}

func TestInterruptTerminatesCleanly(t *testing.T) {
	reader := &scriptedReader{finalErr: ErrInterrupted}
	var out, errOut bytes.Buffer
	if err := NewLoop(reader, &out, &errOut).Run(); err != nil {
		t.Fatalf("interrupt must terminate with success, got %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "interrupted" {
		t.Fatalf("acknowledgment = %q", got)
	}
}

func TestEndOfInputTerminatesCleanly(t *testing.T) {
	out, err := runScript(t)
	if err != nil {
		t.Fatalf("EOF must terminate with success, got %v", err)
	}
	if got := strings.TrimSpace(out); got != "end of input" {
		t.Fatalf("acknowledgment = %q", got)
	}
}

func TestReadFailureIsFatal(t *testing.T) {
	readErr := errors.New("tty went away")
	reader := &scriptedReader{finalErr: readErr}
	var out, errOut bytes.Buffer
	err := NewLoop(reader, &out, &errOut).Run()
	if !errors.Is(err, readErr) {
		t.Fatalf("expected the read failure back, got %v", err)
	}
	if !strings.Contains(errOut.String(), "tty went away") {
		t.Fatalf("failure not reported: %q", errOut.String())
	}
}

func TestFormatBindings(t *testing.T) {
	state := runtime.NewState()
	if got := FormatBindings(state); got != "{}" {
		t.Fatalf("empty state = %q", got)
	}
	state.Set("y", 7)
	state.Set("x", 3)
	if got := FormatBindings(state); got != "{x = 3, y = 7}" {
		t.Fatalf("bindings = %q", got)
	}
}
