package warp

import "fmt"

// Position is the position class in which a rule is consulted.
type Position int

const (
	// OwnValue rules fire when the symbol appears bare.
	OwnValue Position = iota
	// DownValue rules fire when the symbol is the head of a compound.
	DownValue
	// SubValue rules fire when the symbol is the innermost head of a compound
	// head, as in f[a][b].
	SubValue
	// UpValue rules fire when the symbol is an element, or the head of an
	// element, of a compound.
	UpValue

	positionCount
)

func (p Position) String() string {
	switch p {
	case OwnValue:
		return "OwnValues"
	case DownValue:
		return "DownValues"
	case SubValue:
		return "SubValues"
	case UpValue:
		return "UpValues"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// Handler rewrites an expression matched by a rule's pattern.
//
// A handler returns nil, nil to leave the expression unchanged, a non-nil
// expression to rewrite it, or a *Failure to reject its input. Returning
// $Failed is also a failure. Any other error aborts the evaluation.
type Handler func(ev *Evaluation, b Bindings) (Expr, error)

// Rule pairs a compiled pattern with the handler it selects.
type Rule struct {
	Symbol   *Symbol
	Position Position
	Pattern  *Pattern
	Handler  Handler

	// Replacement is the right-hand side of a rule defined by assignment,
	// and nil for native rules.
	Replacement Expr
	Delayed     bool
}

func (r *Rule) String() string {
	if r.Replacement == nil {
		return fmt.Sprintf("%v -> <native>", r.Pattern)
	}
	op := "->"
	if r.Delayed {
		op = ":>"
	}
	return fmt.Sprintf("%v %s %v", r.Pattern, op, EncodeToString(r.Replacement))
}

// Expr returns the rule as RuleDelayed[HoldPattern[lhs], rhs].
func (r *Rule) Expr() Expr {
	rhs := r.Replacement
	if rhs == nil {
		rhs = SymbolNull
	}
	return NewExpr(SymbolRuleDelayed, NewExpr(SymbolHoldPattern, r.Pattern.Source()), rhs)
}

// Classify determines the position class of a pattern attached to sym.
func Classify(sym *Symbol, pattern Expr) (Position, error) {
	lhs := stripPattern(pattern)
	if lhs == Expr(sym) {
		return OwnValue, nil
	}

	x, ok := lhs.(*Compound)
	if !ok {
		return 0, patternErrorf(ErrInvalidPattern, pattern, "the pattern does not refer to %v", sym.Name())
	}

	head := stripPattern(x.head)
	if head == Expr(sym) {
		return DownValue, nil
	}
	if _, ok := head.(*Compound); ok && HeadSymbol(head) == sym {
		return SubValue, nil
	}

	for _, e := range x.elements {
		e = stripPattern(e)
		if e == Expr(sym) {
			return UpValue, nil
		}
		if c, ok := e.(*Compound); ok && HeadSymbol(stripPattern(c.head)) == sym {
			return UpValue, nil
		}
	}
	return 0, patternErrorf(ErrInvalidPattern, pattern, "the pattern does not refer to %v", sym.Name())
}

// NewRule compiles pattern and classifies it for sym.
func (d *Definitions) NewRule(sym *Symbol, pattern Expr, handler Handler) (*Rule, error) {
	pos, err := Classify(sym, pattern)
	if err != nil {
		return nil, err
	}
	p, err := CompilePattern(pattern, d)
	if err != nil {
		return nil, err
	}
	return &Rule{Symbol: sym, Position: pos, Pattern: p, Handler: handler}, nil
}

// Register attaches a native handler to sym. The rule is appended to the
// list for its position class; registering the same pattern twice creates
// two rules.
func (d *Definitions) Register(sym *Symbol, pattern Expr, handler Handler) (*Rule, error) {
	r, err := d.NewRule(sym, pattern, handler)
	if err != nil {
		return nil, err
	}
	if err := d.AddRule(r); err != nil {
		return nil, err
	}
	return r, nil
}

// RegisterString is like Register but reads the pattern from FullForm text.
func (d *Definitions) RegisterString(sym *Symbol, pattern string, handler Handler) (*Rule, error) {
	e, err := ParseString(pattern)
	if err != nil {
		return nil, fmt.Errorf("parsing pattern %q: %w", pattern, err)
	}
	return d.Register(sym, e, handler)
}

// Substitution returns a handler that replaces the variables of template
// with their bindings.
func Substitution(template Expr) Handler {
	return func(_ *Evaluation, b Bindings) (Expr, error) {
		return Substitute(template, b), nil
	}
}
