package warp

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"unsafe"

	"golang.org/x/sync/singleflight"
)

// Definition is the record attached to one symbol: its attributes, its
// rules by position class, and its message templates.
type Definition struct {
	m          sync.RWMutex
	symbol     *Symbol
	attributes Attributes
	rules      [positionCount][]*Rule
	messages   map[string]string
}

// Definitions is the definition store. It owns every Definition; callers
// only ever see copies of a definition's contents, since a definition may be
// cleared or redefined between dispatches.
//
// The symbol table is guarded by one lock and each Definition by its own, so
// sessions sharing a store serialize mutation per symbol.
type Definitions struct {
	m      sync.RWMutex
	defs   map[*Symbol]*Definition
	names  map[string]*Symbol
	guards map[*Symbol]Guard

	log   *slog.Logger
	sizes singleflight.Group
}

// NewDefinitions returns an empty store that knows the standard pattern
// tests.
func NewDefinitions() *Definitions {
	d := &Definitions{
		defs:   map[*Symbol]*Definition{},
		names:  map[string]*Symbol{},
		guards: map[*Symbol]Guard{},
		log:    discardLogger,
	}
	for name, g := range standardGuards {
		d.guards[name] = g
	}
	return d
}

// SetLogger sets the logger used to trace registrations.
func (d *Definitions) SetLogger(l *slog.Logger) {
	d.m.Lock()
	defer d.m.Unlock()
	d.log = l
}

func (d *Definitions) logger() *slog.Logger {
	d.m.RLock()
	defer d.m.RUnlock()
	return d.log
}

// lookup returns the definition of sym, or nil if sym has none.
func (d *Definitions) lookup(sym *Symbol) *Definition {
	d.m.RLock()
	defer d.m.RUnlock()
	return d.defs[sym]
}

// definition returns the definition of sym, creating an empty one on first
// access.
func (d *Definitions) definition(sym *Symbol) (*Definition, error) {
	if def := d.lookup(sym); def != nil {
		return def, nil
	}

	d.m.Lock()
	defer d.m.Unlock()

	if def, ok := d.defs[sym]; ok {
		return def, nil
	}
	if other, ok := d.names[sym.name]; ok && other != sym {
		return nil, corruptedf(sym, "a different symbol named %q is already defined", sym.name)
	}
	def := &Definition{symbol: sym}
	d.defs[sym], d.names[sym.name] = def, sym
	return def, nil
}

// Defined reports whether sym has a definition.
func (d *Definitions) Defined(sym *Symbol) bool {
	return d.lookup(sym) != nil
}

// Symbols returns the symbols that have definitions, sorted by name.
func (d *Definitions) Symbols() []*Symbol {
	d.m.RLock()
	syms := make([]*Symbol, 0, len(d.defs))
	for sym := range d.defs {
		syms = append(syms, sym)
	}
	d.m.RUnlock()

	sort.Slice(syms, func(i, j int) bool { return syms[i].name < syms[j].name })
	return syms
}

// Attributes returns the attributes of sym.
func (d *Definitions) Attributes(sym *Symbol) Attributes {
	def := d.lookup(sym)
	if def == nil {
		return NoAttributes
	}
	def.m.RLock()
	defer def.m.RUnlock()
	return def.attributes
}

// SetAttributes adds attrs to the attributes of sym.
func (d *Definitions) SetAttributes(sym *Symbol, attrs Attributes) error {
	return d.updateAttributes(sym, func(a Attributes) Attributes { return a | attrs })
}

// ClearAttributes removes attrs from the attributes of sym.
func (d *Definitions) ClearAttributes(sym *Symbol, attrs Attributes) error {
	return d.updateAttributes(sym, func(a Attributes) Attributes { return a &^ attrs })
}

func (d *Definitions) updateAttributes(sym *Symbol, f func(Attributes) Attributes) error {
	def, err := d.definition(sym)
	if err != nil {
		return err
	}
	def.m.Lock()
	defer def.m.Unlock()

	if def.attributes.Has(Locked) {
		return fmt.Errorf("%v: %w", sym.Name(), ErrLocked)
	}
	def.attributes = f(def.attributes)
	return nil
}

// Clear removes all of the rules and attributes of sym.
func (d *Definitions) Clear(sym *Symbol) {
	def := d.lookup(sym)
	if def == nil {
		return
	}
	def.m.Lock()
	defer def.m.Unlock()

	def.rules = [positionCount][]*Rule{}
	def.attributes = NoAttributes
	d.logger().Debug("cleared definition", "symbol", sym.Name())
}

// ClearValues removes the rules of sym, leaving its attributes in place.
func (d *Definitions) ClearValues(sym *Symbol) {
	def := d.lookup(sym)
	if def == nil {
		return
	}
	def.m.Lock()
	defer def.m.Unlock()

	def.rules = [positionCount][]*Rule{}
}

// Rules returns a snapshot of the rules of sym in the given position class,
// in registration order.
func (d *Definitions) Rules(sym *Symbol, pos Position) []*Rule {
	def := d.lookup(sym)
	if def == nil {
		return nil
	}
	def.m.RLock()
	defer def.m.RUnlock()

	if len(def.rules[pos]) == 0 {
		return nil
	}
	return append([]*Rule(nil), def.rules[pos]...)
}

// AddRule appends r to the rules of its symbol.
func (d *Definitions) AddRule(r *Rule) error {
	def, err := d.definition(r.Symbol)
	if err != nil {
		return err
	}
	def.m.Lock()
	def.rules[r.Position] = append(def.rules[r.Position], r)
	def.m.Unlock()

	d.logger().Debug("registered rule", "symbol", r.Symbol.Name(), "position", r.Position, "pattern", r.Pattern.String())
	return nil
}

// Define adds r to the rules of its symbol, replacing a rule with the same
// pattern if there is one. This is the behavior of assignment; Register
// always appends.
func (d *Definitions) Define(r *Rule) error {
	def, err := d.definition(r.Symbol)
	if err != nil {
		return err
	}
	def.m.Lock()
	defer def.m.Unlock()

	rules := def.rules[r.Position]
	for i, old := range rules {
		if Same(old.Pattern.Source(), r.Pattern.Source()) {
			rules[i] = r
			return nil
		}
	}
	def.rules[r.Position] = append(rules, r)
	return nil
}

// RemoveRule removes the rule for sym whose pattern is the same as pattern.
// It reports whether a rule was removed.
func (d *Definitions) RemoveRule(sym *Symbol, pos Position, pattern Expr) bool {
	def := d.lookup(sym)
	if def == nil {
		return false
	}
	def.m.Lock()
	defer def.m.Unlock()

	rules := def.rules[pos]
	for i, r := range rules {
		if Same(r.Pattern.Source(), pattern) {
			def.rules[pos] = append(rules[:i:i], rules[i+1:]...)
			return true
		}
	}
	return false
}

// SetMessage sets the template for the message sym::tag.
func (d *Definitions) SetMessage(sym *Symbol, tag, template string) error {
	def, err := d.definition(sym)
	if err != nil {
		return err
	}
	def.m.Lock()
	defer def.m.Unlock()

	if def.messages == nil {
		def.messages = map[string]string{}
	}
	def.messages[tag] = template
	return nil
}

// MessageTemplate returns the template for sym::tag, falling back to the
// General messages.
func (d *Definitions) MessageTemplate(sym *Symbol, tag string) (string, bool) {
	for _, s := range []*Symbol{sym, SymbolGeneral} {
		if def := d.lookup(s); def != nil {
			def.m.RLock()
			t, ok := def.messages[tag]
			def.m.RUnlock()
			if ok {
				return t, true
			}
		}
	}
	t, ok := generalMessages[tag]
	return t, ok
}

// RegisterGuard makes g available to patterns as _?name.
func (d *Definitions) RegisterGuard(name *Symbol, g Guard) {
	d.m.Lock()
	defer d.m.Unlock()
	d.guards[name] = g
}

// Guard implements GuardResolver.
func (d *Definitions) Guard(name *Symbol) (Guard, bool) {
	d.m.RLock()
	defer d.m.RUnlock()
	g, ok := d.guards[name]
	return g, ok
}

// MemoryInUse estimates the number of bytes held by the store. Concurrent
// callers share a single walk of the store.
func (d *Definitions) MemoryInUse() int64 {
	v, _, _ := d.sizes.Do("size", func() (interface{}, error) {
		return d.sizeof(), nil
	})
	return v.(int64)
}

func (d *Definitions) sizeof() int64 {
	d.m.RLock()
	defs := make([]*Definition, 0, len(d.defs))
	for _, def := range d.defs {
		defs = append(defs, def)
	}
	d.m.RUnlock()

	seen := map[Expr]struct{}{}
	size := int64(unsafe.Sizeof(*d))
	for _, def := range defs {
		def.m.RLock()
		size += int64(unsafe.Sizeof(*def)) + int64(len(def.symbol.name))
		for _, rules := range def.rules {
			for _, r := range rules {
				size += int64(unsafe.Sizeof(*r)) + sizeofExpr(r.Pattern.Source(), seen)
				if r.Replacement != nil {
					size += sizeofExpr(r.Replacement, seen)
				}
			}
		}
		for tag, text := range def.messages {
			size += int64(len(tag) + len(text))
		}
		def.m.RUnlock()
	}
	return size
}

func sizeofExpr(e Expr, seen map[Expr]struct{}) int64 {
	switch e := e.(type) {
	case Integer:
		return int64(unsafe.Sizeof(e)) + int64(len(e.i.Bits()))*int64(unsafe.Sizeof(uint(0)))
	case String:
		return int64(unsafe.Sizeof(e)) + int64(len(e))
	case *Compound:
		if _, ok := seen[e]; ok {
			return 0
		}
		seen[e] = struct{}{}
		size := int64(unsafe.Sizeof(*e)) + sizeofExpr(e.head, seen)
		for _, el := range e.elements {
			size += int64(unsafe.Sizeof(el)) + sizeofExpr(el, seen)
		}
		return size
	case nil:
		return 0
	default:
		// Symbols are owned by the interner; reals are stored inline.
		return int64(unsafe.Sizeof(e))
	}
}
