package tape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gaurav-Gosain/dockwm/internal/dock"
	"github.com/Gaurav-Gosain/dockwm/internal/geometry"
)

// ParseError reports a bad tape line.
type ParseError struct {
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Msg)
}

// Parser turns lexer tokens into commands, one per line. Bad lines are
// recorded in Errors and skipped.
type Parser struct {
	lexer  *Lexer
	errors []error
}

// NewParser creates a parser reading from l.
func NewParser(l *Lexer) *Parser {
	return &Parser{lexer: l}
}

// Parse lexes and parses src in one step. All line errors are joined.
func Parse(src string) ([]Command, error) {
	p := NewParser(New(src))
	commands := p.Parse()
	return commands, errors.Join(p.Errors()...)
}

// Errors returns the errors of the last Parse.
func (p *Parser) Errors() []error { return p.errors }

// Parse reads the whole script.
func (p *Parser) Parse() []Command {
	var commands []Command
	for {
		line, eof := p.readLine()
		if len(line) > 0 {
			if cmd, err := parseLine(line); err != nil {
				p.errors = append(p.errors, err)
			} else {
				commands = append(commands, cmd)
			}
		}
		if eof {
			return commands
		}
	}
}

func (p *Parser) readLine() ([]Token, bool) {
	var line []Token
	for {
		tok := p.lexer.NextToken()
		switch tok.Type {
		case TokenEOF:
			return line, true
		case TokenNewline:
			return line, false
		default:
			line = append(line, tok)
		}
	}
}

func errorAt(tok Token, format string, args ...any) error {
	return &ParseError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf(format, args...)}
}

func lookupCommand(name string) (CommandType, bool) {
	for _, t := range CommandTypes() {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	return "", false
}

func parseLine(line []Token) (Command, error) {
	head := line[0]
	for _, tok := range line {
		if tok.Type == TokenIllegal {
			return Command{}, errorAt(tok, "illegal token %q", tok.Literal)
		}
	}
	if head.Type != TokenIdent {
		return Command{}, errorAt(head, "expected a command, got %s", head.Type)
	}
	typ, ok := lookupCommand(head.Literal)
	if !ok {
		return Command{}, errorAt(head, "unknown command %q", head.Literal)
	}

	cmd := Command{Type: typ, Line: head.Line}
	args := line[1:]
	var err error
	switch typ {
	case CommandTypeNewWindow:
		cmd.Args, err = parseNewWindow(head, args)
	case CommandTypeMoveWindow:
		cmd.Args, err = expect(head, args, argID, argDock)
	case CommandTypeToggleWindow:
		cmd.Args, err = expect(head, args, argID)
	case CommandTypeResizeDock:
		cmd.Args, err = expect(head, args, argDock, argInt, argInt)
	case CommandTypeOpenSelector:
		cmd.Args, err = expect(head, args, argID, argInt, argInt)
	case CommandTypeResizeWindow:
		cmd.Args, err = expect(head, args, argID, argAnchor, argInt, argInt)
	case CommandTypeCloseSelector, CommandTypeResize:
		cmd.Args, err = expect(head, args)
	case CommandTypeSleep:
		cmd.Delay, err = parseSleep(head, args)
	}
	if err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// argCheck validates one argument and returns its canonical form.
type argCheck func(tok Token) (string, error)

func expect(head Token, args []Token, checks ...argCheck) ([]string, error) {
	if len(args) != len(checks) {
		return nil, errorAt(head, "%s takes %d argument(s), got %d", head.Literal, len(checks), len(args))
	}
	out := make([]string, len(args))
	for i, check := range checks {
		v, err := check(args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func argID(tok Token) (string, error) {
	if tok.Type != TokenNumber {
		return "", errorAt(tok, "expected a window id, got %q", tok.Literal)
	}
	id, err := dock.ParseID(tok.Literal)
	if err != nil {
		return "", errorAt(tok, "bad window id %q", tok.Literal)
	}
	return id.String(), nil
}

func argDock(tok Token) (string, error) {
	if tok.Type != TokenIdent && tok.Type != TokenNumber {
		return "", errorAt(tok, "expected a dock, got %q", tok.Literal)
	}
	d, err := dock.Parse(tok.Literal)
	if err != nil || d == dock.None {
		return "", errorAt(tok, "unknown dock %q", tok.Literal)
	}
	return d.String(), nil
}

func argInt(tok Token) (string, error) {
	if tok.Type != TokenNumber {
		return "", errorAt(tok, "expected a number, got %q", tok.Literal)
	}
	n, err := strconv.Atoi(tok.Literal)
	if err != nil {
		return "", errorAt(tok, "bad number %q", tok.Literal)
	}
	return strconv.Itoa(n), nil
}

func argAnchor(tok Token) (string, error) {
	if tok.Type != TokenIdent {
		return "", errorAt(tok, "expected an anchor, got %q", tok.Literal)
	}
	a, err := geometry.ParseAnchor(tok.Literal)
	if err != nil {
		return "", errorAt(tok, "unknown anchor %q", tok.Literal)
	}
	return a.String(), nil
}

// parseNewWindow accepts: NewWindow <dock> ["title" ["icon"]] [RequestCenter].
func parseNewWindow(head Token, args []Token) ([]string, error) {
	if len(args) == 0 {
		return nil, errorAt(head, "NewWindow needs a dock")
	}
	d, err := argDock(args[0])
	if err != nil {
		return nil, err
	}
	out := []string{d}
	center := false
	for _, tok := range args[1:] {
		switch {
		case tok.Type == TokenIdent && strings.EqualFold(tok.Literal, RequestCenterFlag) && !center:
			center = true
		case tok.Type == TokenString && !center && len(out) < 3:
			out = append(out, tok.Literal)
		default:
			return nil, errorAt(tok, "unexpected NewWindow argument %q", tok.Literal)
		}
	}
	if center {
		out = append(out, RequestCenterFlag)
	}
	return out, nil
}

// parseSleep accepts a Go duration (500ms, 2s) or a number of seconds.
func parseSleep(head Token, args []Token) (time.Duration, error) {
	if len(args) != 1 {
		return 0, errorAt(head, "Sleep takes 1 argument, got %d", len(args))
	}
	tok := args[0]
	switch tok.Type {
	case TokenDuration:
		d, err := time.ParseDuration(tok.Literal)
		if err != nil || d < 0 {
			return 0, errorAt(tok, "bad duration %q", tok.Literal)
		}
		return d, nil
	case TokenNumber:
		n, err := strconv.Atoi(tok.Literal)
		if err != nil || n < 0 {
			return 0, errorAt(tok, "bad duration %q", tok.Literal)
		}
		return time.Duration(n) * time.Second, nil
	default:
		return 0, errorAt(tok, "expected a duration, got %q", tok.Literal)
	}
}
