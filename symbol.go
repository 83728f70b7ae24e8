package warp

import (
	"io"
	"sort"
	"strings"
	"sync"
)

// Symbol is an interned, fully-qualified name. Symbols are compared by
// pointer: two symbols with the same name are always the same *Symbol.
type Symbol struct {
	name  string
	short string
}

// Name returns the fully-qualified name of the symbol, e.g. "System`Plus".
func (s *Symbol) Name() string {
	return s.name
}

// Context returns the context prefix of the symbol, including the trailing
// backquote.
func (s *Symbol) Context() string {
	return s.name[:len(s.name)-len(s.short)]
}

// Short returns the name of the symbol without its context.
func (s *Symbol) Short() string {
	return s.short
}

func (s *Symbol) Head() Expr {
	return SymbolSymbol
}

func (s *Symbol) write(w io.Writer) error {
	name := s.name
	switch s.Context() {
	case systemContext, globalContext:
		name = s.short
	}
	_, err := io.WriteString(w, name)
	return err
}

func (s *Symbol) String() string {
	return EncodeToString(s)
}

const (
	systemContext = "System`"
	globalContext = "Global`"
)

// Interner maps fully-qualified names to unique symbols.
type Interner struct {
	m       sync.RWMutex
	symbols map[string]*Symbol
}

func NewInterner() *Interner {
	return &Interner{symbols: map[string]*Symbol{}}
}

// Intern returns the symbol for name, creating it if necessary. Names without
// a context are placed in the Global` context.
func (in *Interner) Intern(name string) *Symbol {
	if !strings.Contains(name, "`") {
		name = globalContext + name
	}

	in.m.RLock()
	sym, ok := in.symbols[name]
	in.m.RUnlock()
	if ok {
		return sym
	}

	in.m.Lock()
	defer in.m.Unlock()

	if sym, ok := in.symbols[name]; ok {
		return sym
	}
	sym = &Symbol{name: name, short: name[strings.LastIndexByte(name, '`')+1:]}
	in.symbols[name] = sym
	return sym
}

// Lookup resolves a possibly-unqualified name. A qualified name is interned
// as-is; an unqualified name resolves to an existing System` symbol if there
// is one and to a Global` symbol otherwise.
func (in *Interner) Lookup(name string) *Symbol {
	if strings.Contains(name, "`") {
		return in.Intern(name)
	}

	in.m.RLock()
	sym, ok := in.symbols[systemContext+name]
	in.m.RUnlock()
	if ok {
		return sym
	}
	return in.Intern(globalContext + name)
}

// Len returns the number of interned symbols.
func (in *Interner) Len() int {
	in.m.RLock()
	defer in.m.RUnlock()
	return len(in.symbols)
}

// Names returns the interned names that begin with context, in sorted order.
func (in *Interner) Names(context string) []string {
	in.m.RLock()
	defer in.m.RUnlock()

	var names []string
	for name := range in.symbols {
		if strings.HasPrefix(name, context) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

var symbols = NewInterner()

// Intern returns the process-wide symbol for name.
func Intern(name string) *Symbol {
	return symbols.Intern(name)
}

// Lookup resolves name against the process-wide symbol table using the
// System`, Global` context path.
func Lookup(name string) *Symbol {
	return symbols.Lookup(name)
}

func system(name string) *Symbol {
	return symbols.Intern(systemContext + name)
}
