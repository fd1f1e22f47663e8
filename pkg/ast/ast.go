package ast

// NodeType identifies the syntactic kind of a node.
type NodeType string

const (
	NodeIntegerLiteral   NodeType = "IntegerLiteral"
	NodeVariable         NodeType = "Variable"
	NodeArithmeticBinary NodeType = "ArithmeticBinary"
	NodeArithmeticNegate NodeType = "ArithmeticNegate"
	NodeBooleanLiteral   NodeType = "BooleanLiteral"
	NodeLogicalAnd       NodeType = "LogicalAnd"
	NodeLogicalOr        NodeType = "LogicalOr"
	NodeLogicalNot       NodeType = "LogicalNot"
	NodeComparison       NodeType = "Comparison"
	NodeSkipStatement    NodeType = "SkipStatement"
	NodeAssignment       NodeType = "Assignment"
	NodeSequence         NodeType = "Sequence"
	NodeIfStatement      NodeType = "IfStatement"
	NodeWhileLoop        NodeType = "WhileLoop"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces, one per syntax category.

// AExpr is an arithmetic expression evaluating to an integer.
type AExpr interface {
	Node
	arithmeticNode()
}

type arithmeticMarker struct{}

func (arithmeticMarker) arithmeticNode() {}

// BExpr is a boolean expression evaluating to a truth value.
type BExpr interface {
	Node
	booleanNode()
}

type booleanMarker struct{}

func (booleanMarker) booleanNode() {}

// Stmt is the unit of imperative execution.
type Stmt interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Operators

// ArithmeticOp enumerates the binary arithmetic operators.
type ArithmeticOp string

const (
	OpAdd  ArithmeticOp = "+"
	OpSub  ArithmeticOp = "-"
	OpMult ArithmeticOp = "*"
	OpDiv  ArithmeticOp = "/"
)

// ComparisonOp enumerates the integer comparison operators.
type ComparisonOp string

const (
	CmpEq  ComparisonOp = "="
	CmpNeq ComparisonOp = "!="
	CmpLe  ComparisonOp = "<="
	CmpLt  ComparisonOp = "<"
	CmpGe  ComparisonOp = ">="
	CmpGt  ComparisonOp = ">"
)

// Compare applies the operator to two integers.
func (op ComparisonOp) Compare(left, right int64) bool {
	switch op {
	case CmpEq:
		return left == right
	case CmpNeq:
		return left != right
	case CmpLe:
		return left <= right
	case CmpLt:
		return left < right
	case CmpGe:
		return left >= right
	case CmpGt:
		return left > right
	default:
		return false
	}
}

// Arithmetic expressions

type IntegerLiteral struct {
	nodeImpl
	arithmeticMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type Variable struct {
	nodeImpl
	arithmeticMarker

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

type ArithmeticBinary struct {
	nodeImpl
	arithmeticMarker

	Op    ArithmeticOp `json:"op"`
	Left  AExpr        `json:"left"`
	Right AExpr        `json:"right"`
}

func NewArithmeticBinary(op ArithmeticOp, left, right AExpr) *ArithmeticBinary {
	return &ArithmeticBinary{nodeImpl: newNodeImpl(NodeArithmeticBinary), Op: op, Left: left, Right: right}
}

type ArithmeticNegate struct {
	nodeImpl
	arithmeticMarker

	Operand AExpr `json:"operand"`
}

func NewArithmeticNegate(operand AExpr) *ArithmeticNegate {
	return &ArithmeticNegate{nodeImpl: newNodeImpl(NodeArithmeticNegate), Operand: operand}
}

// Boolean expressions

type BooleanLiteral struct {
	nodeImpl
	booleanMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type LogicalAnd struct {
	nodeImpl
	booleanMarker

	Left  BExpr `json:"left"`
	Right BExpr `json:"right"`
}

func NewLogicalAnd(left, right BExpr) *LogicalAnd {
	return &LogicalAnd{nodeImpl: newNodeImpl(NodeLogicalAnd), Left: left, Right: right}
}

type LogicalOr struct {
	nodeImpl
	booleanMarker

	Left  BExpr `json:"left"`
	Right BExpr `json:"right"`
}

func NewLogicalOr(left, right BExpr) *LogicalOr {
	return &LogicalOr{nodeImpl: newNodeImpl(NodeLogicalOr), Left: left, Right: right}
}

type LogicalNot struct {
	nodeImpl
	booleanMarker

	Operand BExpr `json:"operand"`
}

func NewLogicalNot(operand BExpr) *LogicalNot {
	return &LogicalNot{nodeImpl: newNodeImpl(NodeLogicalNot), Operand: operand}
}

// Comparison relates two arithmetic expressions; its operands are always
// arithmetic, never boolean.
type Comparison struct {
	nodeImpl
	booleanMarker

	Op    ComparisonOp `json:"op"`
	Left  AExpr        `json:"left"`
	Right AExpr        `json:"right"`
}

func NewComparison(op ComparisonOp, left, right AExpr) *Comparison {
	return &Comparison{nodeImpl: newNodeImpl(NodeComparison), Op: op, Left: left, Right: right}
}

// Statements

type SkipStatement struct {
	nodeImpl
	statementMarker
}

func NewSkipStatement() *SkipStatement {
	return &SkipStatement{nodeImpl: newNodeImpl(NodeSkipStatement)}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Name  string `json:"name"`
	Value AExpr  `json:"value"`
}

func NewAssignment(name string, value AExpr) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

type Sequence struct {
	nodeImpl
	statementMarker

	Statements []Stmt `json:"statements"`
}

func NewSequence(statements []Stmt) *Sequence {
	return &Sequence{nodeImpl: newNodeImpl(NodeSequence), Statements: statements}
}

// IfStatement always carries both branches; the parser supplies an explicit
// else, never an implicit empty one.
type IfStatement struct {
	nodeImpl
	statementMarker

	Condition BExpr `json:"condition"`
	Then      Stmt  `json:"then"`
	Else      Stmt  `json:"else"`
}

func NewIfStatement(condition BExpr, then, els Stmt) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: els}
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition BExpr `json:"condition"`
	Body      Stmt  `json:"body"`
}

func NewWhileLoop(condition BExpr, body Stmt) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

// Statements flattens a program root into its top-level statements in source
// order. A Sequence yields its members; any other statement is viewed as a
// single-element program, so callers can treat both shapes identically.
func Statements(stmt Stmt) []Stmt {
	if stmt == nil {
		return nil
	}
	if seq, ok := stmt.(*Sequence); ok {
		return seq.Statements
	}
	return []Stmt{stmt}
}
