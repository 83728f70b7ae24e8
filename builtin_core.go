package warp

import "errors"

func coreBuiltins() []builtin {
	return []builtin{
		{
			symbol:     SymbolSet,
			attributes: HoldFirst | Protected,
			rules: []nativeRule{
				{"Set[lhs_, rhs_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return assign(ev, SymbolSet, b.Get("lhs"), b.Get("rhs"), false)
				}},
			},
		},
		{
			symbol:     SymbolSetDelayed,
			attributes: HoldAll | Protected,
			rules: []nativeRule{
				{"SetDelayed[lhs_, rhs_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return assign(ev, SymbolSetDelayed, b.Get("lhs"), b.Get("rhs"), true)
				}},
			},
		},
		{
			symbol:     SymbolUnset,
			attributes: HoldFirst | Protected,
			rules: []nativeRule{
				{"Unset[lhs_]", unset},
			},
		},
		{
			symbol:     SymbolClear,
			attributes: HoldAll | Protected,
			rules: []nativeRule{
				{"Clear[s___]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return clearSymbols(ev, SymbolClear, b.Sequence("s"), ev.defs.ClearValues)
				}},
			},
		},
		{
			symbol:     SymbolClearAll,
			attributes: HoldAll | Protected,
			rules: []nativeRule{
				{"ClearAll[s___]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return clearSymbols(ev, SymbolClearAll, b.Sequence("s"), ev.defs.Clear)
				}},
			},
		},
		{
			symbol:     SymbolAttributes,
			attributes: HoldAll | Protected,
			rules: []nativeRule{
				{"Attributes[s_Symbol]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return ev.defs.Attributes(b.Get("s").(*Symbol)).List(), nil
				}},
				{"Attributes[s_String]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return ev.defs.Attributes(Lookup(string(b.Get("s").(String)))).List(), nil
				}},
			},
		},
		{
			symbol:     SymbolSetAttributes,
			attributes: HoldFirst | Protected,
			rules: []nativeRule{
				{"SetAttributes[s_Symbol, a_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return updateAttributes(ev, SymbolSetAttributes, b.Get("s").(*Symbol), b.Get("a"), ev.defs.SetAttributes)
				}},
			},
		},
		{
			symbol:     SymbolClearAttributes,
			attributes: HoldFirst | Protected,
			rules: []nativeRule{
				{"ClearAttributes[s_Symbol, a_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return updateAttributes(ev, SymbolClearAttributes, b.Get("s").(*Symbol), b.Get("a"), ev.defs.ClearAttributes)
				}},
			},
		},
		valuesBuiltin(SymbolOwnValues, OwnValue),
		valuesBuiltin(SymbolDownValues, DownValue),
		valuesBuiltin(SymbolSubValues, SubValue),
		valuesBuiltin(SymbolUpValues, UpValue),
		{
			symbol:     SymbolHold,
			attributes: HoldAll | Protected,
		},
		{
			symbol:     SymbolHoldPattern,
			attributes: HoldAll | Protected,
		},
		{
			symbol:     SymbolCompoundExpression,
			attributes: HoldAll | Protected,
			rules: []nativeRule{
				{"CompoundExpression[e___]", func(ev *Evaluation, b Bindings) (Expr, error) {
					var result Expr = SymbolNull
					for _, e := range b.Sequence("e") {
						v, err := ev.Evaluate(e)
						if err != nil {
							return nil, err
						}
						result = v
					}
					return result, nil
				}},
			},
		},
		{
			symbol:     SymbolSameQ,
			attributes: Protected,
			rules: []nativeRule{
				{"SameQ[e___]", func(ev *Evaluation, b Bindings) (Expr, error) {
					es := b.Sequence("e")
					for i := 1; i < len(es); i++ {
						if !Same(es[0], es[i]) {
							return SymbolFalse, nil
						}
					}
					return SymbolTrue, nil
				}},
			},
		},
		{
			symbol:     SymbolHead,
			attributes: Protected,
			rules: []nativeRule{
				{"Head[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return b.Get("e").Head(), nil
				}},
			},
		},
		{
			symbol:     SymbolLength,
			attributes: Protected,
			rules: []nativeRule{
				{"Length[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					if c, ok := b.Get("e").(*Compound); ok {
						return NewInt(int64(c.Len())), nil
					}
					return NewInt(0), nil
				}},
			},
		},
		{symbol: SymbolRule, attributes: Protected},
		{symbol: SymbolRuleDelayed, attributes: HoldRest | Protected},
		{symbol: SymbolList, attributes: Locked | Protected},
		{symbol: SymbolSequence, attributes: Protected},
		{symbol: SymbolTrue, attributes: Locked | Protected},
		{symbol: SymbolFalse, attributes: Locked | Protected},
		{symbol: SymbolNull, attributes: Locked | Protected},
		{symbol: SymbolFailed, attributes: Locked | Protected},
	}
}

// assign defines lhs = rhs, or lhs := rhs if delayed.
func assign(ev *Evaluation, op *Symbol, lhs, rhs Expr, delayed bool) (Expr, error) {
	sym, ok := target(lhs)
	if !ok {
		return nil, FailWith(rhs, op, "setraw", lhs)
	}
	if ev.defs.Attributes(sym).Has(Protected) {
		return nil, FailWith(rhs, op, "wrsym", sym)
	}

	r, err := ev.defs.NewRule(sym, lhs, Substitution(rhs))
	if err != nil {
		var perr *PatternError
		if errors.As(err, &perr) {
			return nil, FailWith(rhs, op, "setraw", lhs)
		}
		return nil, err
	}
	r.Replacement, r.Delayed = rhs, delayed
	if err := ev.defs.Define(r); err != nil {
		return nil, err
	}

	if delayed {
		return SymbolNull, nil
	}
	return rhs, nil
}

// target returns the symbol an assignment to lhs is attached to: lhs itself,
// or the innermost head of a compound.
func target(lhs Expr) (*Symbol, bool) {
	e := stripPattern(lhs)
	for {
		switch x := e.(type) {
		case *Symbol:
			return x, true
		case *Compound:
			e = stripPattern(x.head)
		default:
			return nil, false
		}
	}
}

func unset(ev *Evaluation, b Bindings) (Expr, error) {
	lhs := b.Get("lhs")
	sym, ok := target(lhs)
	if !ok {
		return nil, Fail(SymbolUnset, "setraw", lhs)
	}
	pos, err := Classify(sym, lhs)
	if err != nil {
		return nil, Fail(SymbolUnset, "norep", lhs, sym)
	}
	if ev.defs.Attributes(sym).Has(Protected) {
		return nil, Fail(SymbolUnset, "wrsym", sym)
	}
	if !ev.defs.RemoveRule(sym, pos, lhs) {
		return nil, Fail(SymbolUnset, "norep", lhs, sym)
	}
	return SymbolNull, nil
}

func clearSymbols(ev *Evaluation, op *Symbol, args []Expr, f func(*Symbol)) (Expr, error) {
	for i, arg := range args {
		var sym *Symbol
		switch arg := arg.(type) {
		case *Symbol:
			sym = arg
		case String:
			sym = Lookup(string(arg))
		default:
			ev.Message(op, "sym", arg, NewInt(int64(i+1)))
			continue
		}
		if ev.defs.Attributes(sym).Has(Protected) {
			ev.Message(op, "wrsym", sym)
			continue
		}
		f(sym)
	}
	return SymbolNull, nil
}

func updateAttributes(ev *Evaluation, op, sym *Symbol, e Expr, f func(*Symbol, Attributes) error) (Expr, error) {
	names := []Expr{e}
	if l, ok := hasHead(e, SymbolList); ok {
		names = l.elements
	}

	var attrs Attributes
	for _, name := range names {
		s, ok := name.(*Symbol)
		if !ok {
			return nil, Fail(op, "attnf", name)
		}
		a, ok := AttributeFor(s)
		if !ok {
			return nil, Fail(op, "attnf", name)
		}
		attrs |= a
	}

	if err := f(sym, attrs); err != nil {
		if errors.Is(err, ErrLocked) {
			return nil, Fail(op, "locked", sym)
		}
		return nil, err
	}
	return SymbolNull, nil
}

func valuesBuiltin(sym *Symbol, pos Position) builtin {
	return builtin{
		symbol:     sym,
		attributes: HoldAll | Protected,
		rules: []nativeRule{
			{sym.Short() + "[s_Symbol]", func(ev *Evaluation, b Bindings) (Expr, error) {
				rules := ev.defs.Rules(b.Get("s").(*Symbol), pos)
				elements := make([]Expr, 0, len(rules))
				for _, r := range rules {
					elements = append(elements, r.Expr())
				}
				return NewList(elements...), nil
			}},
		},
	}
}
