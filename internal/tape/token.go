// Package tape implements a small scripting language for driving a running
// desktop: each line is one host bridge command, for automation and demos.
package tape

import "fmt"

// TokenType classifies a lexed token.
type TokenType int

// Token types.
const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenNewline
	TokenIdent
	TokenNumber
	TokenString
	TokenDuration
)

var tokenNames = map[TokenType]string{
	TokenEOF:      "EOF",
	TokenIllegal:  "ILLEGAL",
	TokenNewline:  "NEWLINE",
	TokenIdent:    "IDENT",
	TokenNumber:   "NUMBER",
	TokenString:   "STRING",
	TokenDuration: "DURATION",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is one lexeme with its position.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}
