package parser

import (
	"strconv"

	"imp/interpreter-go/pkg/ast"
)

// Parse turns one program of IMP source into a statement tree. The result is
// a single statement, or a Sequence when the source contains more than one
// top-level statement.
func Parse(source string) (ast.Stmt, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, errorAt(tok, "unexpected %s after statement", tok.describe())
	}
	return prog, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) matchSymbol(text string) bool {
	if tok := p.peek(); tok.kind == tokenSymbol && tok.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) matchKeyword(text string) bool {
	if tok := p.peek(); tok.kind == tokenKeyword && tok.text == text {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectSymbol(text string) error {
	if !p.matchSymbol(text) {
		return errorAt(p.peek(), "expected %q, found %s", text, p.peek().describe())
	}
	return nil
}

func (p *parser) expectKeyword(text string) error {
	if !p.matchKeyword(text) {
		return errorAt(p.peek(), "expected %q, found %s", text, p.peek().describe())
	}
	return nil
}

func (t token) describe() string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

// program := stmt (';' stmt)*
func (p *parser) parseProgram() (ast.Stmt, error) {
	first, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	statements := []ast.Stmt{first}
	for p.matchSymbol(";") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if len(statements) == 1 {
		return statements[0], nil
	}
	return ast.NewSequence(statements), nil
}

// stmt := 'skip' | IDENT ':=' aexpr | 'if' bexpr 'then' stmt 'else' stmt
//       | 'while' bexpr 'do' stmt | '(' program ')'
func (p *parser) parseStatement() (ast.Stmt, error) {
	tok := p.peek()
	switch {
	case p.matchKeyword("skip"):
		return ast.NewSkipStatement(), nil
	case p.matchKeyword("if"):
		condition, err := p.parseBoolean()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("then"); err != nil {
			return nil, err
		}
		then, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("else"); err != nil {
			return nil, err
		}
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return ast.NewIfStatement(condition, then, els), nil
	case p.matchKeyword("while"):
		condition, err := p.parseBoolean()
		if err != nil {
			return nil, err
		}
		if err := p.expectKeyword("do"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return ast.NewWhileLoop(condition, body), nil
	case p.matchSymbol("("):
		inner, err := p.parseProgram()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.kind == tokenIdent:
		p.next()
		if err := p.expectSymbol(":="); err != nil {
			return nil, err
		}
		value, err := p.parseArithmetic()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignment(tok.text, value), nil
	default:
		return nil, errorAt(tok, "expected statement, found %s", tok.describe())
	}
}

// bexpr := bterm ('or' bterm)*
func (p *parser) parseBoolean() (ast.BExpr, error) {
	left, err := p.parseBooleanTerm()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("or") {
		right, err := p.parseBooleanTerm()
		if err != nil {
			return nil, err
		}
		left = ast.NewLogicalOr(left, right)
	}
	return left, nil
}

// bterm := bfactor ('and' bfactor)*
func (p *parser) parseBooleanTerm() (ast.BExpr, error) {
	left, err := p.parseBooleanFactor()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("and") {
		right, err := p.parseBooleanFactor()
		if err != nil {
			return nil, err
		}
		left = ast.NewLogicalAnd(left, right)
	}
	return left, nil
}

// bfactor := 'true' | 'false' | 'not' bfactor
//          | aexpr cmp aexpr | '(' bexpr ')'
//
// A leading '(' is ambiguous between a parenthesized boolean and the left
// operand of a comparison, so the comparison form is tried first and the
// token position is rewound before falling back to the boolean group.
func (p *parser) parseBooleanFactor() (ast.BExpr, error) {
	tok := p.peek()
	switch {
	case p.matchKeyword("true"):
		return ast.NewBooleanLiteral(true), nil
	case p.matchKeyword("false"):
		return ast.NewBooleanLiteral(false), nil
	case p.matchKeyword("not"):
		operand, err := p.parseBooleanFactor()
		if err != nil {
			return nil, err
		}
		return ast.NewLogicalNot(operand), nil
	default:
		save := p.pos
		if left, err := p.parseArithmetic(); err == nil {
			if op, ok := p.comparisonOp(); ok {
				right, err := p.parseArithmetic()
				if err != nil {
					return nil, err
				}
				return ast.NewComparison(op, left, right), nil
			}
		}
		p.pos = save
		if p.matchSymbol("(") {
			inner, err := p.parseBoolean()
			if err != nil {
				return nil, err
			}
			if err := p.expectSymbol(")"); err != nil {
				return nil, err
			}
			return inner, nil
		}
		return nil, errorAt(tok, "expected boolean expression, found %s", tok.describe())
	}
}

func (p *parser) comparisonOp() (ast.ComparisonOp, bool) {
	tok := p.peek()
	if tok.kind != tokenSymbol {
		return "", false
	}
	switch tok.text {
	case "=", "!=", "<=", "<", ">=", ">":
		p.pos++
		return ast.ComparisonOp(tok.text), true
	default:
		return "", false
	}
}

// aexpr := term (('+'|'-') term)*
func (p *parser) parseArithmetic() (ast.AExpr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.matchSymbol("+"):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = ast.NewArithmeticBinary(ast.OpAdd, left, right)
		case p.matchSymbol("-"):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = ast.NewArithmeticBinary(ast.OpSub, left, right)
		default:
			return left, nil
		}
	}
}

// term := factor (('*'|'/') factor)*
func (p *parser) parseTerm() (ast.AExpr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.matchSymbol("*"):
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = ast.NewArithmeticBinary(ast.OpMult, left, right)
		case p.matchSymbol("/"):
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = ast.NewArithmeticBinary(ast.OpDiv, left, right)
		default:
			return left, nil
		}
	}
}

// factor := INT | IDENT | '-' factor | '(' aexpr ')'
func (p *parser) parseFactor() (ast.AExpr, error) {
	tok := p.peek()
	switch {
	case tok.kind == tokenInt:
		p.next()
		value, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, errorAt(tok, "integer literal %s out of range", tok.text)
		}
		return ast.NewIntegerLiteral(value), nil
	case tok.kind == tokenIdent:
		p.next()
		return ast.NewVariable(tok.text), nil
	case p.matchSymbol("-"):
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return ast.NewArithmeticNegate(operand), nil
	case p.matchSymbol("("):
		inner, err := p.parseArithmetic()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, errorAt(tok, "expected arithmetic expression, found %s", tok.describe())
	}
}
