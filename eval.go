package warp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// State is the state of an evaluation.
type State int

const (
	Pending State = iota
	Rewriting
	Stable
	BoundedStop
)

func (s State) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Rewriting:
		return "Rewriting"
	case Stable:
		return "Stable"
	case BoundedStop:
		return "BoundedStop"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session evaluates expressions against a definition store. A session
// evaluates one expression at a time; several sessions may share a store.
type Session struct {
	defs    *Definitions
	config  Config
	log     *slog.Logger
	sink    MessageSink
	matcher Matcher
}

func NewSession(defs *Definitions, opts ...Option) *Session {
	s := &Session{
		defs:    defs,
		config:  DefaultConfig(),
		log:     discardLogger,
		matcher: StructuralMatcher{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) Definitions() *Definitions {
	return s.defs
}

func (s *Session) Config() Config {
	return s.config
}

// Result is the outcome of evaluating an expression.
type Result struct {
	Expr     Expr
	Messages []Message
	State    State
	Steps    int
}

// Evaluate rewrites e until no rule applies or a bound is reached.
//
// Failed dispatches and bounded stops are reported through the result's
// messages. The only errors are internal failures, which abort the
// evaluation.
func (s *Session) Evaluate(e Expr) (*Result, error) {
	return s.EvaluateContext(context.Background(), e)
}

// EvaluateContext is like Evaluate, but stops when ctx is done. Cancellation
// is checked between rewrite steps.
func (s *Session) EvaluateContext(ctx context.Context, e Expr) (*Result, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	ev := &Evaluation{session: s, defs: s.defs, ctx: ctx, state: Pending}
	result, err := ev.eval(e)
	if err != nil {
		s.log.Error("evaluation aborted", "expr", EncodeToString(e), "err", err)
		return nil, err
	}
	if ev.state != BoundedStop {
		ev.state = Stable
	}
	return &Result{Expr: result, Messages: ev.messages, State: ev.state, Steps: ev.steps}, nil
}

// EvaluateString reads an expression from FullForm text and evaluates it.
func (s *Session) EvaluateString(text string) (*Result, error) {
	e, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	return s.Evaluate(e)
}

// Evaluation is the state of one call to Session.Evaluate. Handlers receive
// the current evaluation and may evaluate subexpressions or emit messages
// through it.
type Evaluation struct {
	session  *Session
	defs     *Definitions
	ctx      context.Context
	messages []Message
	steps    int
	depth    int
	state    State
}

func (ev *Evaluation) Session() *Session {
	return ev.session
}

func (ev *Evaluation) Definitions() *Definitions {
	return ev.defs
}

func (ev *Evaluation) Context() context.Context {
	return ev.ctx
}

// State returns the current state of the evaluation.
func (ev *Evaluation) State() State {
	return ev.state
}

// Messages returns the messages emitted so far.
func (ev *Evaluation) Messages() []Message {
	return append([]Message(nil), ev.messages...)
}

// Evaluate evaluates a subexpression within the current evaluation. It
// shares the evaluation's step budget and depth.
func (ev *Evaluation) Evaluate(e Expr) (Expr, error) {
	return ev.eval(e)
}

// Message formats the template for sym::tag with args and emits it. A
// missing template falls back to the General messages.
func (ev *Evaluation) Message(sym *Symbol, tag string, args ...Expr) Message {
	text, ok := ev.defs.MessageTemplate(sym, tag)
	if !ok {
		text = "-- Message text not found --"
		for _, a := range args {
			text += " (" + formatMessage("`1`", []Expr{a}) + ")"
		}
	} else {
		text = formatMessage(text, args)
	}

	m := Message{Symbol: sym, Tag: tag, Text: text}
	ev.messages = append(ev.messages, m)
	if ev.session.sink != nil {
		ev.session.sink.Emit(m)
	}
	return m
}

func (ev *Evaluation) fail(f *Failure) Message {
	sym := f.Symbol
	if sym == nil {
		sym = SymbolGeneral
	}
	return ev.Message(sym, f.Tag, f.Args...)
}

func (ev *Evaluation) log() *slog.Logger {
	return ev.session.log
}

func (ev *Evaluation) matcher() Matcher {
	return ev.session.matcher
}

func (ev *Evaluation) stopped() bool {
	return ev.state == BoundedStop
}

// stop moves the evaluation to BoundedStop and reports why.
func (ev *Evaluation) stop(sym *Symbol, tag string, args ...Expr) {
	m := ev.Message(sym, tag, args...)
	ev.state = BoundedStop
	ev.log().Warn("evaluation stopped", "reason", m.String(), "steps", ev.steps)
}

func (ev *Evaluation) eval(e Expr) (Expr, error) {
	if ev.stopped() {
		return e, nil
	}
	if ev.state == Pending {
		ev.state = Rewriting
	}

	ev.depth++
	defer func() { ev.depth-- }()
	if limit := ev.session.config.RecursionLimit; ev.depth > limit {
		ev.stop(SymbolRecursionLimit, "reclim", NewInt(int64(limit)))
		return e, nil
	}

	for {
		next, outcome, err := ev.step(e)
		if err != nil {
			return nil, err
		}
		if ev.stopped() {
			return next, nil
		}
		switch outcome {
		case Unchanged, Failed:
			return next, nil
		}

		if Same(next, e) {
			return next, nil
		}
		e = next

		ev.steps++
		if limit := ev.session.config.IterationLimit; ev.steps > limit {
			ev.stop(SymbolIterationLimit, "itlim", NewInt(int64(limit)))
			return e, nil
		}
		if err := ev.ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				ev.stop(SymbolGeneral, "timeout", String(ev.session.config.Timeout.String()))
			} else {
				ev.stop(SymbolGeneral, "abort")
			}
			return e, nil
		}
	}
}

// step applies at most one rule to e. Unchanged results carry e with its
// children evaluated.
func (ev *Evaluation) step(e Expr) (Expr, Outcome, error) {
	switch e := e.(type) {
	case *Symbol:
		r, err := Dispatch(ev, e, e, OwnValue)
		if err != nil {
			return nil, 0, err
		}
		return r.Expr, r.Outcome, nil
	case *Compound:
		return ev.stepCompound(e)
	default:
		return e, Unchanged, nil
	}
}

func (ev *Evaluation) stepCompound(c *Compound) (Expr, Outcome, error) {
	head, err := ev.eval(c.head)
	if err != nil {
		return nil, 0, err
	}

	var attrs Attributes
	if sym, ok := head.(*Symbol); ok {
		attrs = ev.defs.Attributes(sym)
	}

	changed := head != c.head
	elements := make([]Expr, 0, len(c.elements))
	for i, el := range c.elements {
		v := el
		if !attrs.holds(i) {
			if v, err = ev.eval(el); err != nil {
				return nil, 0, err
			}
			if v != el {
				changed = true
			}
		}
		if seq, ok := hasHead(v, SymbolSequence); ok && !attrs.Has(HoldAllComplete) {
			elements, changed = append(elements, seq.elements...), true
			continue
		}
		elements = append(elements, v)
	}

	if attrs.Has(Flat) {
		if flat, ok := flatten(head, elements); ok {
			elements, changed = flat, true
		}
	}
	if attrs.Has(Orderless) && !sort.SliceIsSorted(elements, func(i, j int) bool { return Compare(elements[i], elements[j]) < 0 }) {
		elements = append([]Expr(nil), elements...)
		sort.SliceStable(elements, func(i, j int) bool { return Compare(elements[i], elements[j]) < 0 })
		changed = true
	}

	expr := c
	if changed {
		expr = NewExpr(head, elements...)
	}
	if ev.stopped() {
		return expr, Unchanged, nil
	}

	if attrs.Has(Listable) {
		threaded, ok, err := ev.thread(expr)
		if err != nil || ok {
			return threaded, Rewritten, err
		}
	}

	return ev.dispatchCompound(expr, attrs)
}

// dispatchCompound tries the up-values of the elements of c, then the
// down-values of its head, then the sub-values of its innermost head.
func (ev *Evaluation) dispatchCompound(c *Compound, attrs Attributes) (Expr, Outcome, error) {
	if !attrs.Has(HoldAllComplete) {
		tried := map[*Symbol]bool{}
		for _, el := range c.elements {
			var sym *Symbol
			switch el := el.(type) {
			case *Symbol:
				sym = el
			case *Compound:
				sym = HeadSymbol(el)
			default:
				continue
			}
			if tried[sym] {
				continue
			}
			tried[sym] = true

			r, err := Dispatch(ev, sym, c, UpValue)
			if err != nil {
				return nil, 0, err
			}
			if r.Outcome != Unchanged {
				return r.Expr, r.Outcome, nil
			}
		}
	}

	switch head := c.head.(type) {
	case *Symbol:
		r, err := Dispatch(ev, head, c, DownValue)
		if err != nil {
			return nil, 0, err
		}
		return r.Expr, r.Outcome, nil
	case *Compound:
		r, err := Dispatch(ev, HeadSymbol(head), c, SubValue)
		if err != nil {
			return nil, 0, err
		}
		return r.Expr, r.Outcome, nil
	default:
		return c, Unchanged, nil
	}
}

// flatten splices elements with the given head into the element list.
func flatten(head Expr, elements []Expr) ([]Expr, bool) {
	nested := false
	for _, el := range elements {
		if x, ok := el.(*Compound); ok && Same(x.head, head) {
			nested = true
			break
		}
	}
	if !nested {
		return elements, false
	}

	var flat []Expr
	for _, el := range elements {
		if x, ok := el.(*Compound); ok && Same(x.head, head) {
			inner, _ := flatten(head, x.elements)
			flat = append(flat, inner...)
			continue
		}
		flat = append(flat, el)
	}
	return flat, true
}

// thread distributes a Listable head over the lists among the elements of
// c, e.g. f[{a, b}, c] becomes {f[a, c], f[b, c]}.
func (ev *Evaluation) thread(c *Compound) (Expr, bool, error) {
	n := -1
	for _, el := range c.elements {
		l, ok := hasHead(el, SymbolList)
		if !ok {
			continue
		}
		switch {
		case n == -1:
			n = len(l.elements)
		case n != len(l.elements):
			ev.Message(SymbolThread, "tdlen", c)
			return c, false, nil
		}
	}
	if n == -1 {
		return c, false, nil
	}

	items := make([]Expr, n)
	for i := range items {
		args := make([]Expr, len(c.elements))
		for j, el := range c.elements {
			if l, ok := hasHead(el, SymbolList); ok {
				args[j] = l.elements[i]
			} else {
				args[j] = el
			}
		}
		items[i] = NewExpr(c.head, args...)
	}
	return NewList(items...), true, nil
}
