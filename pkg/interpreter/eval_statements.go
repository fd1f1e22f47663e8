package interpreter

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

// evaluateStatement executes one statement against the state. Sequences are
// fail-fast: members run left to right and the first error stops the walk,
// leaving earlier mutations in place.
func (i *Interpreter) evaluateStatement(stmt ast.Stmt, state *runtime.State) error {
	switch n := stmt.(type) {
	case *ast.SkipStatement:
		return nil
	case *ast.Assignment:
		value, err := i.evaluateArithmetic(n.Value, state)
		if err != nil {
			return err
		}
		state.Set(n.Name, value)
		return nil
	case *ast.Sequence:
		for _, member := range n.Statements {
			if err := i.evaluateStatement(member, state); err != nil {
				return err
			}
		}
		return nil
	case *ast.IfStatement:
		cond, err := i.evaluateBoolean(n.Condition, state)
		if err != nil {
			return err
		}
		if cond {
			return i.evaluateStatement(n.Then, state)
		}
		return i.evaluateStatement(n.Else, state)
	case *ast.WhileLoop:
		for {
			cond, err := i.evaluateBoolean(n.Condition, state)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := i.evaluateStatement(n.Body, state); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported statement type: %s", stmt.NodeType())
	}
}
