package ast

import "testing"

func TestStatementsFlattensSequence(t *testing.T) {
	first := Asgn("x", Val(1))
	second := Asgn("y", Val(2))
	third := Skip()

	got := Statements(Seq(first, second, third))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != Stmt(first) || got[1] != Stmt(second) || got[2] != Stmt(third) {
		t.Fatalf("statements out of source order: %v", got)
	}
}

func TestStatementsWrapsSingleStatement(t *testing.T) {
	stmt := Asgn("x", Val(1))
	got := Statements(stmt)
	if len(got) != 1 || got[0] != Stmt(stmt) {
		t.Fatalf("single statement view = %v", got)
	}
}

func TestStatementsNil(t *testing.T) {
	if got := Statements(nil); got != nil {
		t.Fatalf("nil root yielded %v", got)
	}
}

func TestNodeTypes(t *testing.T) {
	cases := []struct {
		node Node
		want NodeType
	}{
		{Val(1), NodeIntegerLiteral},
		{Var("x"), NodeVariable},
		{Add(Val(1), Val(2)), NodeArithmeticBinary},
		{Neg(Val(1)), NodeArithmeticNegate},
		{Bool(true), NodeBooleanLiteral},
		{And(Bool(true), Bool(false)), NodeLogicalAnd},
		{Or(Bool(true), Bool(false)), NodeLogicalOr},
		{Not(Bool(true)), NodeLogicalNot},
		{Eq(Val(1), Val(1)), NodeComparison},
		{Skip(), NodeSkipStatement},
		{Asgn("x", Val(1)), NodeAssignment},
		{Seq(Skip()), NodeSequence},
		{Ite(Bool(true), Skip(), Skip()), NodeIfStatement},
		{While(Bool(false), Skip()), NodeWhileLoop},
	}
	for _, tc := range cases {
		if got := tc.node.NodeType(); got != tc.want {
			t.Fatalf("NodeType = %s, want %s", got, tc.want)
		}
	}
}

func TestComparisonOpCompare(t *testing.T) {
	cases := []struct {
		op          ComparisonOp
		left, right int64
		want        bool
	}{
		{CmpEq, 1, 1, true},
		{CmpEq, 1, 2, false},
		{CmpNeq, 1, 2, true},
		{CmpLe, 2, 2, true},
		{CmpLt, 2, 2, false},
		{CmpGe, 3, 2, true},
		{CmpGt, 2, 3, false},
	}
	for _, tc := range cases {
		if got := tc.op.Compare(tc.left, tc.right); got != tc.want {
			t.Fatalf("%d %s %d = %t, want %t", tc.left, tc.op, tc.right, got, tc.want)
		}
	}
}

func TestDSLOperatorShapes(t *testing.T) {
	bin := Sub(Val(1), Var("x"))
	if bin.Op != OpSub {
		t.Fatalf("op = %s, want %s", bin.Op, OpSub)
	}
	if _, ok := bin.Left.(*IntegerLiteral); !ok {
		t.Fatalf("left operand has wrong type %T", bin.Left)
	}
	if _, ok := bin.Right.(*Variable); !ok {
		t.Fatalf("right operand has wrong type %T", bin.Right)
	}

	ite := Ite(Lt(Var("x"), Val(1)), Skip(), Asgn("x", Val(0)))
	if ite.Then == nil || ite.Else == nil {
		t.Fatalf("conditional must carry both branches")
	}
}
