package warp

import "math/big"

func numericBuiltins() []builtin {
	attrs := Flat | Listable | NumericFunction | OneIdentity | Orderless | Protected
	return []builtin{
		{
			symbol:     SymbolPlus,
			attributes: attrs,
			rules: []nativeRule{
				{"Plus[]", value(NewInt(0))},
				{"Plus[x_]", identity},
				{"Plus[x___]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return foldNumbers(SymbolPlus, b.Sequence("x"), 0, addNumbers), nil
				}},
			},
		},
		{
			symbol:     SymbolTimes,
			attributes: attrs,
			rules: []nativeRule{
				{"Times[]", value(NewInt(1))},
				{"Times[x_]", identity},
				{"Times[x___]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return foldNumbers(SymbolTimes, b.Sequence("x"), 1, mulNumbers), nil
				}},
			},
		},
	}
}

func identity(ev *Evaluation, b Bindings) (Expr, error) {
	return b.Get("x"), nil
}

// foldNumbers combines the numbers among args with op. It returns nil if
// there is nothing to combine.
func foldNumbers(head *Symbol, args []Expr, unit int64, op func(x, y Expr) Expr) Expr {
	var acc Expr
	var rest []Expr
	count := 0
	for _, arg := range args {
		if !NumberQ(arg) {
			rest = append(rest, arg)
			continue
		}
		count++
		if acc == nil {
			acc = arg
		} else {
			acc = op(acc, arg)
		}
	}

	switch {
	case count == 0:
		return nil
	case count == 1 && !isUnit(acc, unit):
		return nil
	case len(rest) == 0:
		return acc
	}

	if !isUnit(acc, unit) {
		rest = append([]Expr{acc}, rest...)
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return NewExpr(head, rest...)
}

// isUnit reports whether x is the exact integer unit. Reals are never
// dropped, since they make the result inexact.
func isUnit(x Expr, unit int64) bool {
	n, ok := x.(Integer)
	return ok && n.i.IsInt64() && n.i.Int64() == unit
}

func addNumbers(x, y Expr) Expr {
	if xi, ok := x.(Integer); ok {
		if yi, ok := y.(Integer); ok {
			return Integer{new(big.Int).Add(xi.i, yi.i)}
		}
	}
	return Real(float(x) + float(y))
}

func mulNumbers(x, y Expr) Expr {
	if xi, ok := x.(Integer); ok {
		if yi, ok := y.(Integer); ok {
			return Integer{new(big.Int).Mul(xi.i, yi.i)}
		}
	}
	return Real(float(x) * float(y))
}

func float(x Expr) float64 {
	switch x := x.(type) {
	case Integer:
		f, _ := new(big.Float).SetInt(x.i).Float64()
		return f
	case Real:
		return float64(x)
	default:
		return 0
	}
}
