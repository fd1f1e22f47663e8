package interpreter

import (
	"fmt"

	"imp/interpreter-go/pkg/ast"
	"imp/interpreter-go/pkg/runtime"
)

// evaluateArithmetic computes an integer from an arithmetic expression.
// Operands evaluate left to right and the first error short-circuits the
// whole expression. Arithmetic is two's-complement int64: overflow wraps and
// division truncates toward zero, both Go-defined behaviours.
func (i *Interpreter) evaluateArithmetic(expr ast.AExpr, state *runtime.State) (int64, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return n.Value, nil
	case *ast.Variable:
		value, ok := state.Get(n.Name)
		if !ok {
			return 0, &UnboundVariableError{Name: n.Name}
		}
		return value, nil
	case *ast.ArithmeticBinary:
		left, err := i.evaluateArithmetic(n.Left, state)
		if err != nil {
			return 0, err
		}
		right, err := i.evaluateArithmetic(n.Right, state)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case ast.OpAdd:
			return left + right, nil
		case ast.OpSub:
			return left - right, nil
		case ast.OpMult:
			return left * right, nil
		case ast.OpDiv:
			if right == 0 {
				return 0, &DivisionByZeroError{}
			}
			// MinInt64 / -1 wraps to MinInt64 per the Go spec.
			return left / right, nil
		default:
			return 0, fmt.Errorf("unsupported arithmetic operator: %s", n.Op)
		}
	case *ast.ArithmeticNegate:
		value, err := i.evaluateArithmetic(n.Operand, state)
		if err != nil {
			return 0, err
		}
		return -value, nil
	default:
		return 0, fmt.Errorf("unsupported arithmetic node: %s", expr.NodeType())
	}
}

// evaluateBoolean computes a truth value from a boolean expression. The
// connectives are non-short-circuiting: both operands are evaluated before
// the result is combined, and a left-operand error propagates before the
// right operand runs.
func (i *Interpreter) evaluateBoolean(expr ast.BExpr, state *runtime.State) (bool, error) {
	switch n := expr.(type) {
	case *ast.BooleanLiteral:
		return n.Value, nil
	case *ast.LogicalAnd:
		left, err := i.evaluateBoolean(n.Left, state)
		if err != nil {
			return false, err
		}
		right, err := i.evaluateBoolean(n.Right, state)
		if err != nil {
			return false, err
		}
		return left && right, nil
	case *ast.LogicalOr:
		left, err := i.evaluateBoolean(n.Left, state)
		if err != nil {
			return false, err
		}
		right, err := i.evaluateBoolean(n.Right, state)
		if err != nil {
			return false, err
		}
		return left || right, nil
	case *ast.LogicalNot:
		value, err := i.evaluateBoolean(n.Operand, state)
		if err != nil {
			return false, err
		}
		return !value, nil
	case *ast.Comparison:
		left, err := i.evaluateArithmetic(n.Left, state)
		if err != nil {
			return false, err
		}
		right, err := i.evaluateArithmetic(n.Right, state)
		if err != nil {
			return false, err
		}
		return n.Op.Compare(left, right), nil
	default:
		return false, fmt.Errorf("unsupported boolean node: %s", expr.NodeType())
	}
}
