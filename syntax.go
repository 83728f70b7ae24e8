package warp

// Bindings maps pattern variables to the expressions they matched. Variables
// that matched a run of elements are bound to Sequence[...].
type Bindings map[*Symbol]Expr

// Get returns the value bound to the variable with the given short name.
func (b Bindings) Get(name string) Expr {
	for sym, v := range b {
		if sym.short == name {
			return v
		}
	}
	return nil
}

// Sequence returns the elements bound to name: the elements of a
// Sequence[...] binding, or the single bound expression.
func (b Bindings) Sequence(name string) []Expr {
	v := b.Get(name)
	if v == nil {
		return nil
	}
	if seq, ok := hasHead(v, SymbolSequence); ok {
		return seq.elements
	}
	return []Expr{v}
}

func (b Bindings) with(name *Symbol, v Expr) (Bindings, bool) {
	if old, ok := b[name]; ok {
		return b, Same(old, v)
	}
	result := make(Bindings, len(b)+1)
	for k, v := range b {
		result[k] = v
	}
	result[name] = v
	return result, true
}

// Matcher matches compiled patterns against expressions.
type Matcher interface {
	Match(p *Pattern, e Expr) (Bindings, bool)
}

// StructuralMatcher matches patterns positionally: the elements of a
// compound are matched left to right, with sequence patterns taking the
// shortest run that lets the rest of the elements match.
type StructuralMatcher struct{}

func (StructuralMatcher) Match(p *Pattern, e Expr) (Bindings, bool) {
	return match(p, e, Bindings{})
}

func match(p *Pattern, e Expr, b Bindings) (Bindings, bool) {
	switch p.kind {
	case patLiteral:
		return b, Same(p.value, e)
	case patBlank:
		return b, p.head == nil || Same(e.Head(), p.head)
	case patSequence:
		if p.min > 1 {
			return b, false
		}
		return b, p.head == nil || Same(e.Head(), p.head)
	case patNamed:
		b, ok := match(p.sub[0], e, b)
		if !ok {
			return b, false
		}
		return b.with(p.name, e)
	case patTest:
		b, ok := match(p.sub[0], e, b)
		if !ok || !p.test(e) {
			return b, false
		}
		return b, true
	case patAlternatives:
		for _, alt := range p.sub {
			if b, ok := match(alt, e, b); ok {
				return b, true
			}
		}
		return b, false
	case patCompound:
		x, ok := e.(*Compound)
		if !ok {
			return b, false
		}
		b, ok = match(p.sub[0], x.head, b)
		if !ok {
			return b, false
		}
		return matchElements(p.sub[1:], x.elements, b)
	default:
		return b, false
	}
}

func matchElements(patterns []*Pattern, elements []Expr, b Bindings) (Bindings, bool) {
	if len(patterns) == 0 {
		return b, len(elements) == 0
	}

	p := patterns[0]
	if !p.isSequence() {
		if len(elements) == 0 {
			return b, false
		}
		b, ok := match(p, elements[0], b)
		if !ok {
			return b, false
		}
		return matchElements(patterns[1:], elements[1:], b)
	}

	// Leave room for the single-element patterns that follow.
	rest := 0
	for _, q := range patterns[1:] {
		if !q.isSequence() {
			rest++
		}
	}
	for n := minRun(p); n <= len(elements)-rest; n++ {
		bn, ok := matchRun(p, elements[:n], b)
		if !ok {
			continue
		}
		if bn, ok := matchElements(patterns[1:], elements[n:], bn); ok {
			return bn, true
		}
	}
	return b, false
}

func minRun(p *Pattern) int {
	for p.kind != patSequence {
		p = p.sub[0]
	}
	return p.min
}

// matchRun matches a sequence pattern against a run of elements.
func matchRun(p *Pattern, run []Expr, b Bindings) (Bindings, bool) {
	switch p.kind {
	case patSequence:
		if len(run) < p.min {
			return b, false
		}
		if p.head != nil {
			for _, e := range run {
				if !Same(e.Head(), p.head) {
					return b, false
				}
			}
		}
		return b, true
	case patNamed:
		b, ok := matchRun(p.sub[0], run, b)
		if !ok {
			return b, false
		}
		return b.with(p.name, NewExpr(SymbolSequence, run...))
	case patTest:
		b, ok := matchRun(p.sub[0], run, b)
		if !ok {
			return b, false
		}
		for _, e := range run {
			if !p.test(e) {
				return b, false
			}
		}
		return b, true
	default:
		return b, false
	}
}

// Substitute replaces the pattern variables in template with their bindings.
// Sequence[...] values are spliced into the enclosing compound.
func Substitute(template Expr, b Bindings) Expr {
	if len(b) == 0 {
		return template
	}

	switch t := template.(type) {
	case *Symbol:
		if v, ok := b[t]; ok {
			return v
		}
		return t
	case *Compound:
		head := Substitute(t.head, b)
		changed := head != t.head

		elements := make([]Expr, 0, len(t.elements))
		for _, e := range t.elements {
			v := Substitute(e, b)
			if v != e {
				changed = true
			}
			if seq, ok := hasHead(v, SymbolSequence); ok && v != e {
				elements = append(elements, seq.elements...)
				continue
			}
			elements = append(elements, v)
		}
		if !changed {
			return t
		}
		return NewExpr(head, elements...)
	default:
		return t
	}
}
