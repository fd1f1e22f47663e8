package ast

// Shorthand constructors so construction sites read declaratively.

// Arithmetic helpers.

func Val(value int64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

func Var(name string) *Variable {
	return NewVariable(name)
}

func Add(left, right AExpr) *ArithmeticBinary {
	return NewArithmeticBinary(OpAdd, left, right)
}

func Sub(left, right AExpr) *ArithmeticBinary {
	return NewArithmeticBinary(OpSub, left, right)
}

func Mult(left, right AExpr) *ArithmeticBinary {
	return NewArithmeticBinary(OpMult, left, right)
}

func Div(left, right AExpr) *ArithmeticBinary {
	return NewArithmeticBinary(OpDiv, left, right)
}

func Neg(operand AExpr) *ArithmeticNegate {
	return NewArithmeticNegate(operand)
}

// Boolean helpers.

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func And(left, right BExpr) *LogicalAnd {
	return NewLogicalAnd(left, right)
}

func Or(left, right BExpr) *LogicalOr {
	return NewLogicalOr(left, right)
}

func Not(operand BExpr) *LogicalNot {
	return NewLogicalNot(operand)
}

func Cmp(op ComparisonOp, left, right AExpr) *Comparison {
	return NewComparison(op, left, right)
}

func Eq(left, right AExpr) *Comparison {
	return NewComparison(CmpEq, left, right)
}

func Neq(left, right AExpr) *Comparison {
	return NewComparison(CmpNeq, left, right)
}

func Le(left, right AExpr) *Comparison {
	return NewComparison(CmpLe, left, right)
}

func Lt(left, right AExpr) *Comparison {
	return NewComparison(CmpLt, left, right)
}

func Ge(left, right AExpr) *Comparison {
	return NewComparison(CmpGe, left, right)
}

func Gt(left, right AExpr) *Comparison {
	return NewComparison(CmpGt, left, right)
}

// Statement helpers.

func Skip() *SkipStatement {
	return NewSkipStatement()
}

func Asgn(name string, value AExpr) *Assignment {
	return NewAssignment(name, value)
}

func Seq(statements ...Stmt) *Sequence {
	return NewSequence(statements)
}

func Ite(condition BExpr, then, els Stmt) *IfStatement {
	return NewIfStatement(condition, then, els)
}

func While(condition BExpr, body Stmt) *WhileLoop {
	return NewWhileLoop(condition, body)
}
