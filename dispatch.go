package warp

import (
	"errors"
	"fmt"
)

// Outcome is the result class of a dispatch.
type Outcome int

const (
	Unchanged Outcome = iota
	Rewritten
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "Unchanged"
	case Rewritten:
		return "Rewritten"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RewriteResult is the result of dispatching an expression to the rules of
// one symbol.
type RewriteResult struct {
	Outcome Outcome
	Expr    Expr
	Message *Message
	Rule    *Rule
}

// Dispatch tries the rules of sym in position class pos against expr, in
// registration order, and applies the first rule whose pattern matches. Later
// rules are not tried even if that rule's handler leaves expr unchanged. No
// store lock is held while a handler runs.
//
// Only internal failures are returned as errors: a handler that panics or
// returns an error that is not a *Failure.
func Dispatch(ev *Evaluation, sym *Symbol, expr Expr, pos Position) (RewriteResult, error) {
	rules := ev.defs.Rules(sym, pos)
	for _, r := range rules {
		b, ok := ev.matcher().Match(r.Pattern, expr)
		if !ok {
			continue
		}

		result, err := apply(ev, r, b)
		if err != nil {
			var failure *Failure
			if !errors.As(err, &failure) {
				return RewriteResult{}, err
			}
			m := ev.fail(failure)
			v := failure.Value
			if v == nil {
				v = SymbolFailed
			}
			ev.log().Debug("dispatch failed", "symbol", sym.Name(), "position", pos, "rule", r.Pattern.String(), "message", m.String())
			return RewriteResult{Outcome: Failed, Expr: v, Message: &m, Rule: r}, nil
		}
		if result == nil {
			return RewriteResult{Outcome: Unchanged, Expr: expr, Rule: r}, nil
		}
		if result == Expr(SymbolFailed) {
			return RewriteResult{Outcome: Failed, Expr: result, Rule: r}, nil
		}
		ev.log().Debug("dispatch rewrote", "symbol", sym.Name(), "position", pos, "rule", r.Pattern.String())
		return RewriteResult{Outcome: Rewritten, Expr: result, Rule: r}, nil
	}
	return RewriteResult{Outcome: Unchanged, Expr: expr}, nil
}

func apply(ev *Evaluation, r *Rule, b Bindings) (result Expr, err error) {
	defer func() {
		if x := recover(); x != nil {
			result, err = nil, &InternalError{Kind: ErrHandler, Symbol: r.Symbol, Err: fmt.Errorf("panic in handler for %v: %v", r.Pattern, x)}
		}
	}()

	result, err = r.Handler(ev, b)
	if err != nil {
		var failure *Failure
		var internal *InternalError
		switch {
		case errors.As(err, &failure), errors.As(err, &internal):
			return nil, err
		default:
			return nil, &InternalError{Kind: ErrHandler, Symbol: r.Symbol, Err: err}
		}
	}
	return result, nil
}
