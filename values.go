package warp

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Expr is a symbolic expression: an atom or a compound with a head and
// elements.
type Expr interface {
	Head() Expr

	write(w io.Writer) error
}

// Encode writes the FullForm text of e to w.
func Encode(w io.Writer, e Expr) error {
	if e == nil {
		_, err := io.WriteString(w, "Null")
		return err
	}
	return e.write(w)
}

// EncodeToString returns the FullForm text of e.
func EncodeToString(e Expr) string {
	var b strings.Builder
	Encode(&b, e)
	return b.String()
}

// Integer
type Integer struct {
	i *big.Int
}

func NewInt(x int64) Integer {
	return Integer{big.NewInt(x)}
}

// NewBigInt returns an Integer holding a copy of x.
func NewBigInt(x *big.Int) Integer {
	return Integer{new(big.Int).Set(x)}
}

func (n Integer) Head() Expr {
	return SymbolInteger
}

func (n Integer) write(w io.Writer) error {
	_, err := io.WriteString(w, n.i.String())
	return err
}

func (n Integer) String() string {
	return n.i.String()
}

// Int64 returns the value of n and whether it fits in an int64.
func (n Integer) Int64() (int64, bool) {
	return n.i.Int64(), n.i.IsInt64()
}

// Big returns a copy of the value of n.
func (n Integer) Big() *big.Int {
	return new(big.Int).Set(n.i)
}

func (n Integer) Sign() int {
	return n.i.Sign()
}

// Real
type Real float64

func (r Real) Head() Expr {
	return SymbolReal
}

func (r Real) write(w io.Writer) error {
	text := strconv.FormatFloat(float64(r), 'g', -1, 64)
	if !strings.ContainsAny(text, ".eEnN") {
		text += "."
	}
	_, err := io.WriteString(w, text)
	return err
}

// String
type String string

func (s String) Head() Expr {
	return SymbolString
}

func (s String) write(w io.Writer) error {
	_, err := io.WriteString(w, strconv.Quote(string(s)))
	return err
}

// Compound is an expression of the form head[e1, e2, ...]. Compounds are
// immutable once built.
type Compound struct {
	head     Expr
	elements []Expr
}

// NewExpr builds head[elements...]. The elements slice is retained.
func NewExpr(head Expr, elements ...Expr) *Compound {
	return &Compound{head: head, elements: elements}
}

// NewList builds List[elements...].
func NewList(elements ...Expr) *Compound {
	return NewExpr(SymbolList, elements...)
}

func (c *Compound) Head() Expr {
	return c.head
}

// Elements returns the elements of c. The result must not be modified.
func (c *Compound) Elements() []Expr {
	return c.elements
}

func (c *Compound) Len() int {
	return len(c.elements)
}

func (c *Compound) Element(i int) Expr {
	return c.elements[i]
}

func (c *Compound) String() string {
	return EncodeToString(c)
}

func (c *Compound) write(w io.Writer) error {
	if err := Encode(w, c.head); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, e := range c.elements {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := Encode(w, e); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// HeadSymbol returns the innermost head of e: e itself for a symbol, the
// symbol at the bottom of the head chain for a compound, and the type symbol
// for other atoms.
func HeadSymbol(e Expr) *Symbol {
	for {
		switch x := e.(type) {
		case *Symbol:
			return x
		case *Compound:
			e = x.head
		case nil:
			return nil
		default:
			return x.Head().(*Symbol)
		}
	}
}

// IsAtom reports whether e has no elements.
func IsAtom(e Expr) bool {
	_, ok := e.(*Compound)
	return !ok
}

func hasHead(e Expr, head *Symbol) (*Compound, bool) {
	c, ok := e.(*Compound)
	if !ok || c.head != Expr(head) {
		return nil, false
	}
	return c, true
}
