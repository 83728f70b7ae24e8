package warp

import "math"

// Pattern tests available to every store.
var standardGuards = map[*Symbol]Guard{
	system("AtomQ"):        IsAtom,
	system("IntegerQ"):     IntegerQ,
	system("EvenQ"):        EvenQ,
	system("OddQ"):         OddQ,
	system("ListQ"):        ListQ,
	SymbolNumberQ:          NumberQ,
	SymbolExactNumberQ:     IntegerQ,
	system("Positive"):     Positive,
	system("Negative"):     Negative,
	system("NonNegative"):  NonNegative,
	SymbolStringQ:          StringQ,
	system("SymbolQ"):      SymbolQ,
	system("MachineSizeQ"): machineSizeQ,
}

func IntegerQ(e Expr) bool {
	_, ok := e.(Integer)
	return ok
}

func NumberQ(e Expr) bool {
	switch e := e.(type) {
	case Integer:
		return true
	case Real:
		return !math.IsNaN(float64(e))
	default:
		return false
	}
}

func StringQ(e Expr) bool {
	_, ok := e.(String)
	return ok
}

func SymbolQ(e Expr) bool {
	_, ok := e.(*Symbol)
	return ok
}

func ListQ(e Expr) bool {
	_, ok := hasHead(e, SymbolList)
	return ok
}

func EvenQ(e Expr) bool {
	n, ok := e.(Integer)
	return ok && n.i.Bit(0) == 0
}

func OddQ(e Expr) bool {
	n, ok := e.(Integer)
	return ok && n.i.Bit(0) == 1
}

func Positive(e Expr) bool {
	return sign(e) > 0
}

func Negative(e Expr) bool {
	s := sign(e)
	return s < 0 && s != signNaN
}

func NonNegative(e Expr) bool {
	s := sign(e)
	return s >= 0 && s != signNaN
}

const signNaN = -2

// sign returns the sign of a number, or signNaN if e is not an ordered
// number.
func sign(e Expr) int {
	switch e := e.(type) {
	case Integer:
		return e.Sign()
	case Real:
		switch {
		case math.IsNaN(float64(e)):
			return signNaN
		case e > 0:
			return 1
		case e < 0:
			return -1
		default:
			return 0
		}
	default:
		return signNaN
	}
}

func machineSizeQ(e Expr) bool {
	n, ok := e.(Integer)
	if !ok {
		return false
	}
	_, ok = n.Int64()
	return ok
}
