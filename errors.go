package warp

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrUnknownGuard   = errors.New("unknown pattern test")
	ErrLocked         = errors.New("symbol is locked")
	ErrCorrupted      = errors.New("definition store corrupted")
	ErrHandler        = errors.New("handler failed")
)

// PatternError reports a pattern rejected at registration time.
type PatternError struct {
	Kind    error
	Pattern Expr
	Msg     string
}

func (e *PatternError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return fmt.Sprintf("%v: %v", e.Kind, EncodeToString(e.Pattern))
	}
	return fmt.Sprintf("%v: %v: %s", e.Kind, EncodeToString(e.Pattern), e.Msg)
}

func (e *PatternError) Unwrap() error { return e.Kind }

func patternErrorf(kind error, pattern Expr, format string, args ...interface{}) error {
	return &PatternError{Kind: kind, Pattern: pattern, Msg: fmt.Sprintf(format, args...)}
}

// InternalError is a fatal condition that aborts an evaluation: a corrupted
// definition store, or a handler that returned an error other than a
// *Failure or panicked.
type InternalError struct {
	Kind   error
	Symbol *Symbol
	Err    error
}

func (e *InternalError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Symbol != nil {
		msg = fmt.Sprintf("%s: %s", e.Symbol.Name(), msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *InternalError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func corruptedf(sym *Symbol, format string, args ...interface{}) error {
	return &InternalError{Kind: ErrCorrupted, Symbol: sym, Err: fmt.Errorf(format, args...)}
}

// Failure is returned by a handler that rejects its input. The message is
// emitted on the evaluation's message channel and Value, or $Failed if Value
// is nil, becomes the result of the dispatch.
type Failure struct {
	Symbol *Symbol
	Tag    string
	Args   []Expr
	Value  Expr
}

// Fail returns a failure that reports sym::tag with the given arguments and
// evaluates to $Failed.
func Fail(sym *Symbol, tag string, args ...Expr) *Failure {
	return &Failure{Symbol: sym, Tag: tag, Args: args}
}

// FailWith is like Fail, but the failed dispatch evaluates to value.
func FailWith(value Expr, sym *Symbol, tag string, args ...Expr) *Failure {
	return &Failure{Symbol: sym, Tag: tag, Args: args, Value: value}
}

func (f *Failure) Error() string {
	if f.Symbol == nil {
		return "failure"
	}
	return f.Symbol.Short() + "::" + f.Tag
}
