package warp

import (
	"fmt"
	"os"
	"sync/atomic"
)

// builtin describes a System` symbol defined by native rules.
type builtin struct {
	symbol     *Symbol
	attributes Attributes
	messages   map[string]string
	rules      []nativeRule
}

type nativeRule struct {
	pattern string
	handler Handler
}

// systemState is the mutable state shared by the builtins of one store.
type systemState struct {
	args      []string
	maxLength atomic.Int64
}

// defaultMaxLength is the initial value of $MaxLengthIntStringConversion.
const defaultMaxLength = 4300

// BuiltinOption configures the builtins installed by NewBuiltinDefinitions.
type BuiltinOption func(s *systemState)

// WithCommandLine sets the arguments reported by $CommandLine and
// $ScriptCommandLine. The default is os.Args.
func WithCommandLine(args []string) BuiltinOption {
	return func(s *systemState) {
		s.args = args
	}
}

// NewBuiltinDefinitions returns a store with the System` builtins installed.
func NewBuiltinDefinitions(opts ...BuiltinOption) (*Definitions, error) {
	sys := &systemState{args: os.Args}
	sys.maxLength.Store(defaultMaxLength)
	for _, o := range opts {
		o(sys)
	}

	d := NewDefinitions()
	tables := [][]builtin{coreBuiltins(), booleanBuiltins(), numericBuiltins(), listBuiltins(), stringBuiltins(sys), systemBuiltins(sys)}
	for _, table := range tables {
		for _, b := range table {
			if err := d.install(b); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func (d *Definitions) install(b builtin) error {
	for tag, text := range b.messages {
		if err := d.SetMessage(b.symbol, tag, text); err != nil {
			return err
		}
	}
	for _, r := range b.rules {
		if _, err := d.RegisterString(b.symbol, r.pattern, r.handler); err != nil {
			return fmt.Errorf("installing %v: %w", b.symbol.Name(), err)
		}
	}
	return d.SetAttributes(b.symbol, b.attributes)
}

// value returns a handler that always rewrites to v.
func value(v Expr) Handler {
	return func(*Evaluation, Bindings) (Expr, error) {
		return v, nil
	}
}

// Boolean returns True or False.
func Boolean(b bool) *Symbol {
	if b {
		return SymbolTrue
	}
	return SymbolFalse
}
