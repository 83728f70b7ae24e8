package warp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errIncomplete = errors.New("incomplete expression")

// IsIncomplete reports whether err was caused by input that ended in the
// middle of an expression.
func IsIncomplete(err error) bool {
	return errors.Is(err, errIncomplete)
}

// ParseString reads a single FullForm expression from s.
func ParseString(s string) (Expr, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a single FullForm expression from r.
func Parse(r io.Reader) (Expr, error) {
	p := newParser(r)
	e, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok, err := p.next(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected token %v after expression", tokenString(tok))
	}
	return e, nil
}

// ParseAll reads a sequence of FullForm expressions from r.
func ParseAll(r io.Reader) ([]Expr, error) {
	p := newParser(r)

	var exprs []Expr
	for {
		if _, err := p.peek(); err == io.EOF {
			return exprs, nil
		}
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
}

// MustParse is like ParseString but panics on error. It is meant for
// literal patterns and expressions in Go source.
func MustParse(s string) Expr {
	e, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("parsing %q: %v", s, err))
	}
	return e
}

type parser struct {
	l   *lexer
	t   interface{}
	err error
}

func newParser(r io.Reader) *parser {
	return &parser{l: &lexer{r: bufio.NewReader(r)}}
}

func (p *parser) peek() (interface{}, error) {
	if p.t == nil && p.err == nil {
		p.t, p.err = p.l.next()
	}
	return p.t, p.err
}

func (p *parser) next() (interface{}, error) {
	tok, err := p.peek()
	p.t, p.err = nil, nil
	return tok, err
}

func (p *parser) parseExpression() (Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	// head[...][...]
	for {
		if tok, _ := p.peek(); tok != '[' {
			return e, nil
		}
		p.next()
		elements, err := p.parseSequence(']')
		if err != nil {
			return nil, err
		}
		e = NewExpr(e, elements...)
	}
}

func (p *parser) parsePrimary() (Expr, error) {
	tok, err := p.next()
	if err == io.EOF {
		return nil, errIncomplete
	}
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case Expr:
		return tok, nil
	case rune:
		switch tok {
		case '{':
			elements, err := p.parseSequence('}')
			if err != nil {
				return nil, err
			}
			return NewList(elements...), nil
		case '(':
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(')'); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tokenString(tok))
}

// parseSequence reads comma-separated expressions up to and including close.
func (p *parser) parseSequence(close rune) ([]Expr, error) {
	elements := []Expr{}
	if tok, _ := p.peek(); tok == close {
		p.next()
		return elements, nil
	}

	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)

		tok, err := p.next()
		if err == io.EOF {
			return nil, errIncomplete
		}
		if err != nil {
			return nil, err
		}
		switch tok {
		case ',':
			continue
		case close:
			return elements, nil
		default:
			return nil, fmt.Errorf("expected ',' or '%c', got %v", close, tokenString(tok))
		}
	}
}

func (p *parser) expect(r rune) error {
	tok, err := p.next()
	if err == io.EOF {
		return errIncomplete
	}
	if err != nil {
		return err
	}
	if tok != r {
		return fmt.Errorf("expected '%c', got %v", r, tokenString(tok))
	}
	return nil
}

func tokenString(tok interface{}) string {
	switch tok := tok.(type) {
	case rune:
		return fmt.Sprintf("'%c'", tok)
	case Expr:
		return EncodeToString(tok)
	default:
		return fmt.Sprintf("%v", tok)
	}
}
