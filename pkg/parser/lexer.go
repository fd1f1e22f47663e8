package parser

import "unicode"

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenInt
	tokenIdent
	tokenKeyword
	tokenSymbol
)

type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}

var keywords = map[string]bool{
	"skip":  true,
	"if":    true,
	"then":  true,
	"else":  true,
	"while": true,
	"do":    true,
	"true":  true,
	"false": true,
	"and":   true,
	"or":    true,
	"not":   true,
}

// tokenize splits source into a token stream terminated by a tokenEOF entry.
func tokenize(source string) ([]token, error) {
	runes := []rune(source)
	tokens := make([]token, 0, len(runes)/2)
	line, column := 1, 1

	pos := 0
	for pos < len(runes) {
		r := runes[pos]
		startLine, startColumn := line, column

		advance := func(n int) {
			for j := 0; j < n; j++ {
				if runes[pos+j] == '\n' {
					line++
					column = 1
				} else {
					column++
				}
			}
			pos += n
		}

		switch {
		case unicode.IsSpace(r):
			advance(1)
		case unicode.IsDigit(r):
			end := pos
			for end < len(runes) && unicode.IsDigit(runes[end]) {
				end++
			}
			text := string(runes[pos:end])
			tokens = append(tokens, token{kind: tokenInt, text: text, line: startLine, column: startColumn})
			advance(end - pos)
		case unicode.IsLetter(r) || r == '_':
			end := pos
			for end < len(runes) && (unicode.IsLetter(runes[end]) || unicode.IsDigit(runes[end]) || runes[end] == '_') {
				end++
			}
			text := string(runes[pos:end])
			kind := tokenIdent
			if keywords[text] {
				kind = tokenKeyword
			}
			tokens = append(tokens, token{kind: kind, text: text, line: startLine, column: startColumn})
			advance(end - pos)
		default:
			text := ""
			switch r {
			case '+', '-', '*', '/', '(', ')', ';', '=':
				text = string(r)
			case ':':
				if pos+1 < len(runes) && runes[pos+1] == '=' {
					text = ":="
				}
			case '!':
				if pos+1 < len(runes) && runes[pos+1] == '=' {
					text = "!="
				}
			case '<':
				text = "<"
				if pos+1 < len(runes) && runes[pos+1] == '=' {
					text = "<="
				}
			case '>':
				text = ">"
				if pos+1 < len(runes) && runes[pos+1] == '=' {
					text = ">="
				}
			}
			if text == "" {
				return nil, &ParseError{
					Message:  "unexpected character " + string(r),
					Location: SourceLocation{Line: startLine, Column: startColumn},
				}
			}
			tokens = append(tokens, token{kind: tokenSymbol, text: text, line: startLine, column: startColumn})
			advance(len(text))
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, text: "", line: line, column: column})
	return tokens, nil
}
