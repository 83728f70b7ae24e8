package warp

var (
	symbolFirst = system("First")
	symbolLast  = system("Last")
	symbolRest  = system("Rest")
	symbolMost  = system("Most")
	symbolJoin  = system("Join")
)

func listBuiltins() []builtin {
	return []builtin{
		{
			symbol:     symbolFirst,
			attributes: Protected,
			messages:   map[string]string{"nofirst": "`1` has zero length and no first element."},
			rules: []nativeRule{
				{"First[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					c, ok := b.Get("e").(*Compound)
					if !ok || c.Len() == 0 {
						return nil, FailWith(NewExpr(symbolFirst, b.Get("e")), symbolFirst, "nofirst", b.Get("e"))
					}
					return c.elements[0], nil
				}},
			},
		},
		{
			symbol:     symbolLast,
			attributes: Protected,
			messages:   map[string]string{"nolast": "`1` has zero length and no last element."},
			rules: []nativeRule{
				{"Last[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					c, ok := b.Get("e").(*Compound)
					if !ok || c.Len() == 0 {
						return nil, FailWith(NewExpr(symbolLast, b.Get("e")), symbolLast, "nolast", b.Get("e"))
					}
					return c.elements[c.Len()-1], nil
				}},
			},
		},
		{
			symbol:     symbolRest,
			attributes: Protected,
			messages:   map[string]string{"norest": "Cannot take Rest of expression `1` with length zero."},
			rules: []nativeRule{
				{"Rest[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					c, ok := b.Get("e").(*Compound)
					if !ok || c.Len() == 0 {
						return nil, FailWith(NewExpr(symbolRest, b.Get("e")), symbolRest, "norest", b.Get("e"))
					}
					return NewExpr(c.head, c.elements[1:]...), nil
				}},
			},
		},
		{
			symbol:     symbolMost,
			attributes: Protected,
			messages:   map[string]string{"nomost": "Cannot take Most of expression `1` with length zero."},
			rules: []nativeRule{
				{"Most[e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					c, ok := b.Get("e").(*Compound)
					if !ok || c.Len() == 0 {
						return nil, FailWith(NewExpr(symbolMost, b.Get("e")), symbolMost, "nomost", b.Get("e"))
					}
					return NewExpr(c.head, c.elements[:c.Len()-1]...), nil
				}},
			},
		},
		{
			symbol:     SymbolAppend,
			attributes: Protected,
			messages:   map[string]string{"normal": "Nonatomic expression expected at position 1 in `1`."},
			rules: []nativeRule{
				{"Append[e_, x_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					c, ok := b.Get("e").(*Compound)
					if !ok {
						return nil, FailWith(NewExpr(SymbolAppend, b.Get("e"), b.Get("x")), SymbolAppend, "normal", NewExpr(SymbolAppend, b.Get("e"), b.Get("x")))
					}
					elements := make([]Expr, 0, c.Len()+1)
					elements = append(append(elements, c.elements...), b.Get("x"))
					return NewExpr(c.head, elements...), nil
				}},
			},
		},
		{
			symbol:     symbolJoin,
			attributes: Flat | OneIdentity | Protected,
			rules: []nativeRule{
				{"Join[l___List]", func(ev *Evaluation, b Bindings) (Expr, error) {
					var elements []Expr
					for _, l := range b.Sequence("l") {
						elements = append(elements, l.(*Compound).elements...)
					}
					return NewList(elements...), nil
				}},
			},
		},
		{
			symbol:     SymbolReverse,
			attributes: Protected,
			rules: []nativeRule{
				{"Reverse[e_[x___]]", func(ev *Evaluation, b Bindings) (Expr, error) {
					xs := b.Sequence("x")
					elements := make([]Expr, len(xs))
					for i, x := range xs {
						elements[len(xs)-1-i] = x
					}
					return NewExpr(b.Get("e"), elements...), nil
				}},
			},
		},
		{
			symbol:     SymbolPart,
			attributes: Protected,
			messages:   map[string]string{"partw": "Part `1` of `2` does not exist."},
			rules: []nativeRule{
				{"Part[e_, i_Integer]", func(ev *Evaluation, b Bindings) (Expr, error) {
					e, i := b.Get("e"), b.Get("i").(Integer)
					n, ok := i.Int64()
					if ok {
						if n == 0 {
							return e.Head(), nil
						}
						if c, isCompound := e.(*Compound); isCompound {
							if n < 0 {
								n += int64(c.Len()) + 1
							}
							if n >= 1 && n <= int64(c.Len()) {
								return c.elements[n-1], nil
							}
						}
					}
					return nil, FailWith(NewExpr(SymbolPart, e, i), SymbolPart, "partw", i, e)
				}},
			},
		},
		{
			symbol:     SymbolMap,
			attributes: Protected,
			rules: []nativeRule{
				{"Map[f_, e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					f := b.Get("f")
					c, ok := b.Get("e").(*Compound)
					if !ok {
						return b.Get("e"), nil
					}
					elements := make([]Expr, c.Len())
					for i, el := range c.elements {
						elements[i] = NewExpr(f, el)
					}
					return NewExpr(c.head, elements...), nil
				}},
			},
		},
		{
			symbol:     SymbolApply,
			attributes: Protected,
			rules: []nativeRule{
				{"Apply[f_, e_]", func(ev *Evaluation, b Bindings) (Expr, error) {
					c, ok := b.Get("e").(*Compound)
					if !ok {
						return b.Get("e"), nil
					}
					return NewExpr(b.Get("f"), c.elements...), nil
				}},
			},
		},
	}
}
