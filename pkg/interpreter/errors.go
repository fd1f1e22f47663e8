package interpreter

import "fmt"

// UnboundVariableError reports a read of a name with no binding in the
// current execution.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// DivisionByZeroError reports a division whose right operand evaluated to
// zero.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}
