package parser

import "fmt"

// SourceLocation captures the 1-based position of a parser diagnostic.
type SourceLocation struct {
	Line   int
	Column int
}

// ParseError includes a message plus a best-effort source location.
type ParseError struct {
	Message  string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	if e.Location.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Location.Line, e.Location.Column)
	}
	return e.Message
}

func errorAt(tok token, format string, args ...any) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf(format, args...),
		Location: SourceLocation{Line: tok.line, Column: tok.column},
	}
}
