package warp

var symbolTrueQ = system("TrueQ")

func booleanBuiltins() []builtin {
	return []builtin{
		{
			symbol:     SymbolNot,
			attributes: Protected,
			rules: []nativeRule{
				{"Not[True]", value(SymbolFalse)},
				{"Not[False]", value(SymbolTrue)},
				{"Not[Not[x_]]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return b.Get("x"), nil
				}},
			},
		},
		{
			symbol:     symbolTrueQ,
			attributes: Protected,
			rules: []nativeRule{
				{"TrueQ[x_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					return Boolean(b.Get("x") == Expr(SymbolTrue)), nil
				}},
			},
		},
	}
}
