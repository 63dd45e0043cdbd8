package tape

import (
	"strings"
	"unicode"
)

// Lexer splits a tape script into tokens. Comments run from # to the end
// of the line.
type Lexer struct {
	input  []rune
	pos    int
	line   int
	column int
}

// New creates a lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input), line: 1, column: 1}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() rune {
	r := l.peek()
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipBlank() {
	for {
		switch r := l.peek(); {
		case r == '#':
			for l.peek() != '\n' && l.peek() != 0 {
				l.advance()
			}
		case r == ' ' || r == '\t' || r == '\r':
			l.advance()
		default:
			return
		}
	}
}

// NextToken returns the next token, TokenEOF at the end of input.
func (l *Lexer) NextToken() Token {
	l.skipBlank()
	tok := Token{Line: l.line, Column: l.column}

	r := l.peek()
	switch {
	case r == 0:
		tok.Type = TokenEOF
	case r == '\n':
		l.advance()
		tok.Type, tok.Literal = TokenNewline, "\n"
	case r == '"':
		tok.Literal, tok.Type = l.readString()
	case r == '-' || r == '+' || unicode.IsDigit(r):
		tok.Literal, tok.Type = l.readNumber()
	case unicode.IsLetter(r) || r == '_':
		tok.Type, tok.Literal = TokenIdent, l.readWhile(func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
		})
	default:
		tok.Type, tok.Literal = TokenIllegal, string(l.advance())
	}
	return tok
}

func (l *Lexer) readWhile(ok func(rune) bool) string {
	var sb strings.Builder
	for r := l.peek(); r != 0 && ok(r); r = l.peek() {
		sb.WriteRune(l.advance())
	}
	return sb.String()
}

// readString reads a double-quoted string with \" and \\ escapes. An
// unterminated string is illegal.
func (l *Lexer) readString() (string, TokenType) {
	l.advance()
	var sb strings.Builder
	for {
		r := l.peek()
		switch r {
		case 0, '\n':
			return sb.String(), TokenIllegal
		case '"':
			l.advance()
			return sb.String(), TokenString
		case '\\':
			l.advance()
			if next := l.peek(); next == '"' || next == '\\' {
				sb.WriteRune(l.advance())
				continue
			}
			sb.WriteRune('\\')
		default:
			sb.WriteRune(l.advance())
		}
	}
}

// readNumber reads a signed integer, or a duration when a unit follows
// (500ms, 2s, 1m).
func (l *Lexer) readNumber() (string, TokenType) {
	var sb strings.Builder
	if r := l.peek(); r == '-' || r == '+' {
		sb.WriteRune(l.advance())
	}
	digits := l.readWhile(unicode.IsDigit)
	if digits == "" {
		return sb.String(), TokenIllegal
	}
	sb.WriteString(digits)

	if unit := l.readWhile(unicode.IsLetter); unit != "" {
		sb.WriteString(unit)
		return sb.String(), TokenDuration
	}
	return sb.String(), TokenNumber
}
