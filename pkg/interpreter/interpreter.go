package interpreter

import (
	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of IMP syntax trees. It holds no state of
// its own: every program execution gets its own runtime.State, passed
// explicitly through the evaluation methods.
type Interpreter struct{}

// New returns an interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// EvaluateProgram executes a program root against a fresh state and returns
// it. The root may be a single statement or a Sequence; both are walked as a
// flat list of top-level statements, left to right, stopping at the first
// failure. On failure the state is still returned so callers can observe the
// mutations that preceded the error; there is no rollback.
func (i *Interpreter) EvaluateProgram(prog ast.Stmt) (*runtime.State, error) {
	state := runtime.NewState()
	for _, stmt := range ast.Statements(prog) {
		if err := i.evaluateStatement(stmt, state); err != nil {
			return state, err
		}
	}
	return state, nil
}
