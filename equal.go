package warp

import (
	"math/big"
	"strings"
)

// Same reports whether two expressions are structurally identical, the
// relation SameQ tests.
func Same(e1, e2 Expr) bool {
	switch e1 := e1.(type) {
	case Integer:
		e2, ok := e2.(Integer)
		return ok && e1.i.Cmp(e2.i) == 0
	case Real:
		e2, ok := e2.(Real)
		return ok && e1 == e2
	case String:
		e2, ok := e2.(String)
		return ok && e1 == e2
	case *Symbol:
		e2, ok := e2.(*Symbol)
		return ok && e1 == e2
	case *Compound:
		e2, ok := e2.(*Compound)
		if !ok {
			return false
		}
		if e1 == e2 {
			return true
		}
		if len(e1.elements) != len(e2.elements) || !Same(e1.head, e2.head) {
			return false
		}
		for i, e := range e1.elements {
			if !Same(e, e2.elements[i]) {
				return false
			}
		}
		return true
	case nil:
		return e2 == nil
	default:
		return false
	}
}

// rank orders the kinds of expression for canonical sorting: numbers, then
// strings, then symbols, then compounds.
func rank(e Expr) int {
	switch e.(type) {
	case Integer, Real:
		return 0
	case String:
		return 1
	case *Symbol:
		return 2
	default:
		return 3
	}
}

// Compare defines the canonical order used for Orderless functions. It
// returns -1, 0 or +1.
func Compare(e1, e2 Expr) int {
	if r1, r2 := rank(e1), rank(e2); r1 != r2 {
		if r1 < r2 {
			return -1
		}
		return 1
	}

	switch e1 := e1.(type) {
	case Integer, Real:
		if c := numberCmp(e1, e2); c != 0 {
			return c
		}
		// Exact numbers sort before equal reals.
		_, isInt1 := e1.(Integer)
		_, isInt2 := e2.(Integer)
		switch {
		case isInt1 && !isInt2:
			return -1
		case !isInt1 && isInt2:
			return 1
		}
		return 0
	case String:
		return strings.Compare(string(e1), string(e2.(String)))
	case *Symbol:
		return strings.Compare(e1.name, e2.(*Symbol).name)
	case *Compound:
		e2 := e2.(*Compound)
		if c := Compare(e1.head, e2.head); c != 0 {
			return c
		}
		if len(e1.elements) != len(e2.elements) {
			if len(e1.elements) < len(e2.elements) {
				return -1
			}
			return 1
		}
		for i, e := range e1.elements {
			if c := Compare(e, e2.elements[i]); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

func toFloat(e Expr) *big.Float {
	switch e := e.(type) {
	case Integer:
		return new(big.Float).SetInt(e.i)
	case Real:
		return big.NewFloat(float64(e))
	default:
		return nil
	}
}

func numberCmp(e1, e2 Expr) int {
	if i1, ok := e1.(Integer); ok {
		if i2, ok := e2.(Integer); ok {
			return i1.i.Cmp(i2.i)
		}
	}

	// NaN sorts after every other number.
	nan1, nan2 := isNaN(e1), isNaN(e2)
	switch {
	case nan1 && nan2:
		return 0
	case nan1:
		return 1
	case nan2:
		return -1
	}
	return toFloat(e1).Cmp(toFloat(e2))
}

func isNaN(e Expr) bool {
	r, ok := e.(Real)
	return ok && r != r
}
