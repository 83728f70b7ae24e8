package warp

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	r *bufio.Reader
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	return c, nil
}

func (l *lexer) peek() rune {
	c, _ := l.read()
	if c != 0 {
		l.r.UnreadRune()
	}
	return c
}

// next returns the next token: a rune for punctuation, an Expr for atoms
// and pattern shorthands, or io.EOF.
func (l *lexer) next() (interface{}, error) {
	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}

		switch c {
		case 0:
			return nil, io.EOF
		case '(':
			if l.peek() == '*' {
				l.read()
				if err := l.blockComment(); err != nil {
					return nil, err
				}
				continue
			}
			return c, nil
		case ')', '[', ']', '{', '}', ',':
			return c, nil
		case '"':
			return l.string()
		case '-':
			if k := l.peek(); k >= '0' && k <= '9' || k == '.' {
				return l.num(c)
			}
			return nil, fmt.Errorf("unexpected character '-'")
		case '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return l.num(c)
		case '_':
			return l.blank("")
		default:
			if beginsIdentifier(c) {
				return l.identifier(c)
			}
			if !isSpace(c) {
				return nil, fmt.Errorf("unexpected character '%c'", c)
			}
		}
	}
}

func (l *lexer) blockComment() error {
	nest := 1
	for nest > 0 {
		c, err := l.read()
		if err != nil {
			return err
		}
		switch c {
		case 0:
			return errIncomplete
		case '(':
			if l.peek() == '*' {
				l.read()
				nest++
			}
		case '*':
			if l.peek() == ')' {
				l.read()
				nest--
			}
		}
	}
	return nil
}

func (l *lexer) num(c rune) (interface{}, error) {
	var text strings.Builder
	for {
		text.WriteRune(c)

		k, err := l.read()
		if err != nil {
			return nil, err
		}
		if !(k >= '0' && k <= '9' || k == '.' || k == 'e' || k == 'E') {
			if k != 0 {
				l.r.UnreadRune()
			}
			break
		}
		c = k
	}

	s := text.String()
	if !strings.ContainsAny(s, ".eE") {
		var i big.Int
		if _, ok := i.SetString(s, 10); !ok {
			return nil, fmt.Errorf("invalid number literal '%s'", s)
		}
		return Integer{&i}, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal '%s'", s)
	}
	return Real(f), nil
}

func (l *lexer) string() (interface{}, error) {
	var s strings.Builder
	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}
		switch c {
		case 0:
			return nil, errIncomplete
		case '"':
			return String(s.String()), nil
		case '\\':
			k, err := l.read()
			if err != nil {
				return nil, err
			}
			switch k {
			case '\\', '"':
				c = k
			case 't':
				c = '\t'
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 0:
				return nil, errIncomplete
			default:
				return nil, fmt.Errorf("invalid escape sequence '\\%c'", k)
			}
		}
		s.WriteRune(c)
	}
}

func (l *lexer) name(first rune) (string, error) {
	var id strings.Builder
	id.WriteRune(first)

	for {
		c, err := l.read()
		if err != nil {
			return "", err
		}
		if !continuesIdentifier(c) {
			if c != 0 {
				l.r.UnreadRune()
			}
			return id.String(), nil
		}
		id.WriteRune(c)
	}
}

// identifier reads a symbol name and any pattern shorthand that follows it:
// x_, x_h, x__, x___, and x_?test.
func (l *lexer) identifier(first rune) (interface{}, error) {
	name, err := l.name(first)
	if err != nil {
		return nil, err
	}
	if l.peek() != '_' {
		return Lookup(name), nil
	}
	l.read()
	return l.blank(name)
}

func (l *lexer) blank(name string) (interface{}, error) {
	head := SymbolBlank
	if l.peek() == '_' {
		l.read()
		head = SymbolBlankSequence
		if l.peek() == '_' {
			l.read()
			head = SymbolBlankNullSequence
		}
	}

	var blank Expr = NewExpr(head)
	if c := l.peek(); beginsIdentifier(c) {
		l.read()
		h, err := l.name(c)
		if err != nil {
			return nil, err
		}
		blank = NewExpr(head, Lookup(h))
	}

	var pattern = blank
	if name != "" {
		pattern = NewExpr(SymbolPattern, Lookup(name), blank)
	}

	if l.peek() == '?' {
		l.read()
		c, err := l.read()
		if err != nil {
			return nil, err
		}
		if !beginsIdentifier(c) {
			return nil, fmt.Errorf("expected a test name after '?'")
		}
		test, err := l.name(c)
		if err != nil {
			return nil, err
		}
		pattern = NewExpr(SymbolPatternTest, pattern, Lookup(test))
	}
	return pattern, nil
}

func beginsIdentifier(c rune) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '$' || c > 0x7f && unicode.IsLetter(c)
}

func continuesIdentifier(c rune) bool {
	return c >= '0' && c <= '9' || c == '`' || beginsIdentifier(c)
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
