package warp

// patternKind tags the variants of a compiled pattern.
type patternKind int

const (
	patLiteral patternKind = iota
	patBlank
	patSequence
	patCompound
	patNamed
	patTest
	patAlternatives
)

// Pattern is a compiled structural matcher. Patterns are built once, at
// registration time, from their expression form (e.g. Foo[x_Integer]).
type Pattern struct {
	kind patternKind

	// patLiteral
	value Expr

	// patBlank, patSequence: an optional head restriction. patSequence
	// matches at least min elements.
	head *Symbol
	min  int

	// patNamed
	name *Symbol

	// patTest
	test     Guard
	testName *Symbol

	// patCompound: the head pattern followed by the element patterns.
	// patNamed, patTest: the inner pattern. patAlternatives: the choices.
	sub []*Pattern

	source Expr
}

// Source returns the expression the pattern was compiled from.
func (p *Pattern) Source() Expr {
	return p.source
}

func (p *Pattern) String() string {
	return EncodeToString(p.source)
}

// isSequence reports whether p may match a run of elements rather than a
// single one.
func (p *Pattern) isSequence() bool {
	switch p.kind {
	case patSequence:
		return true
	case patNamed, patTest:
		return p.sub[0].isSequence()
	default:
		return false
	}
}

// Guard is a predicate used by PatternTest patterns such as x_?EvenQ.
type Guard func(e Expr) bool

// GuardResolver looks up guards by name during compilation.
type GuardResolver interface {
	Guard(name *Symbol) (Guard, bool)
}

// CompilePattern compiles the expression form of a pattern. Unknown guards
// and malformed pattern constructs are rejected.
func CompilePattern(e Expr, guards GuardResolver) (*Pattern, error) {
	c := compiler{guards: guards, root: e}
	return c.compile(e)
}

type compiler struct {
	guards GuardResolver
	root   Expr
}

func (c *compiler) compile(e Expr) (*Pattern, error) {
	x, ok := e.(*Compound)
	if !ok {
		return &Pattern{kind: patLiteral, value: e, source: e}, nil
	}

	switch x.head {
	case SymbolBlank, SymbolBlankSequence, SymbolBlankNullSequence:
		p := &Pattern{kind: patBlank, source: e}
		switch x.head {
		case SymbolBlankSequence:
			p.kind, p.min = patSequence, 1
		case SymbolBlankNullSequence:
			p.kind, p.min = patSequence, 0
		}
		switch len(x.elements) {
		case 0:
		case 1:
			h, ok := x.elements[0].(*Symbol)
			if !ok {
				return nil, patternErrorf(ErrInvalidPattern, c.root, "the head of %v must be a symbol", EncodeToString(e))
			}
			p.head = h
		default:
			return nil, patternErrorf(ErrInvalidPattern, c.root, "%v takes at most one argument", EncodeToString(x.head))
		}
		return p, nil
	case SymbolPattern:
		if len(x.elements) != 2 {
			return nil, patternErrorf(ErrInvalidPattern, c.root, "Pattern takes two arguments")
		}
		name, ok := x.elements[0].(*Symbol)
		if !ok {
			return nil, patternErrorf(ErrInvalidPattern, c.root, "pattern names must be symbols, not %v", EncodeToString(x.elements[0]))
		}
		inner, err := c.compile(x.elements[1])
		if err != nil {
			return nil, err
		}
		return &Pattern{kind: patNamed, name: name, sub: []*Pattern{inner}, source: e}, nil
	case SymbolPatternTest:
		if len(x.elements) != 2 {
			return nil, patternErrorf(ErrInvalidPattern, c.root, "PatternTest takes two arguments")
		}
		name, ok := x.elements[1].(*Symbol)
		if !ok {
			return nil, patternErrorf(ErrInvalidPattern, c.root, "pattern tests must be named by a symbol")
		}
		var guard Guard
		if c.guards != nil {
			guard, ok = c.guards.Guard(name)
		}
		if guard == nil {
			return nil, patternErrorf(ErrUnknownGuard, c.root, "%v", name.Name())
		}
		inner, err := c.compile(x.elements[0])
		if err != nil {
			return nil, err
		}
		return &Pattern{kind: patTest, test: guard, testName: name, sub: []*Pattern{inner}, source: e}, nil
	case SymbolAlternatives:
		p := &Pattern{kind: patAlternatives, source: e}
		for _, alt := range x.elements {
			sub, err := c.compile(alt)
			if err != nil {
				return nil, err
			}
			if sub.isSequence() {
				return nil, patternErrorf(ErrInvalidPattern, c.root, "sequence patterns are not allowed in Alternatives")
			}
			p.sub = append(p.sub, sub)
		}
		return p, nil
	case SymbolHoldPattern:
		if len(x.elements) != 1 {
			return nil, patternErrorf(ErrInvalidPattern, c.root, "HoldPattern takes one argument")
		}
		return c.compile(x.elements[0])
	}

	head, err := c.compile(x.head)
	if err != nil {
		return nil, err
	}
	if head.isSequence() {
		return nil, patternErrorf(ErrInvalidPattern, c.root, "a sequence pattern cannot be a head")
	}
	p := &Pattern{kind: patCompound, sub: []*Pattern{head}, source: e}
	for _, el := range x.elements {
		sub, err := c.compile(el)
		if err != nil {
			return nil, err
		}
		p.sub = append(p.sub, sub)
	}
	if p.isLiteral() {
		return &Pattern{kind: patLiteral, value: e, source: e}, nil
	}
	return p, nil
}

// isLiteral reports whether a compound pattern contains no pattern
// constructs, in which case it can be matched with Same.
func (p *Pattern) isLiteral() bool {
	switch p.kind {
	case patLiteral:
		return true
	case patCompound:
		for _, s := range p.sub {
			if !s.isLiteral() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// stripPattern removes HoldPattern, Pattern and PatternTest wrappers that do
// not change which symbol a pattern is attached to.
func stripPattern(e Expr) Expr {
	for {
		x, ok := e.(*Compound)
		if !ok {
			return e
		}
		switch {
		case x.head == Expr(SymbolHoldPattern) && len(x.elements) == 1:
			e = x.elements[0]
		case x.head == Expr(SymbolPattern) && len(x.elements) == 2:
			e = x.elements[1]
		case x.head == Expr(SymbolPatternTest) && len(x.elements) == 2:
			e = x.elements[0]
		default:
			return e
		}
	}
}
