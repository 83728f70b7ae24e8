package warp

import (
	"math/bits"
	"sort"
)

// Attributes is a set of symbol attributes.
type Attributes uint32

const (
	Constant Attributes = 1 << iota
	Flat
	HoldAll
	HoldAllComplete
	HoldFirst
	HoldRest
	Listable
	Locked
	NumericFunction
	OneIdentity
	Orderless
	Protected
	ReadProtected

	NoAttributes Attributes = 0
)

var attributeSymbols = map[Attributes]*Symbol{
	Constant:        SymbolConstant,
	Flat:            SymbolFlat,
	HoldAll:         SymbolHoldAll,
	HoldAllComplete: SymbolHoldAllComplete,
	HoldFirst:       SymbolHoldFirst,
	HoldRest:        SymbolHoldRest,
	Listable:        SymbolListable,
	Locked:          SymbolLocked,
	NumericFunction: SymbolNumericFunction,
	OneIdentity:     SymbolOneIdentity,
	Orderless:       SymbolOrderless,
	Protected:       SymbolProtected,
	ReadProtected:   SymbolReadProtected,
}

// AttributeFor returns the attribute named by sym.
func AttributeFor(sym *Symbol) (Attributes, bool) {
	for a, s := range attributeSymbols {
		if s == sym {
			return a, true
		}
	}
	return 0, false
}

func (a Attributes) Has(b Attributes) bool {
	return a&b == b
}

func (a Attributes) Len() int {
	return bits.OnesCount32(uint32(a))
}

// Symbols returns the attribute names in a, sorted by name.
func (a Attributes) Symbols() []*Symbol {
	var syms []*Symbol
	for attr, sym := range attributeSymbols {
		if a.Has(attr) {
			syms = append(syms, sym)
		}
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].name < syms[j].name })
	return syms
}

// List returns a as a List of attribute symbols.
func (a Attributes) List() *Compound {
	syms := a.Symbols()
	elements := make([]Expr, len(syms))
	for i, s := range syms {
		elements[i] = s
	}
	return NewList(elements...)
}

func (a Attributes) String() string {
	return EncodeToString(a.List())
}

// holds reports whether the element at index i of an expression whose head
// has these attributes is left unevaluated.
func (a Attributes) holds(i int) bool {
	switch {
	case a&(HoldAll|HoldAllComplete) != 0:
		return true
	case a.Has(HoldFirst) && i == 0:
		return true
	case a.Has(HoldRest) && i > 0:
		return true
	default:
		return false
	}
}
