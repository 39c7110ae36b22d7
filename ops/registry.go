package ops

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Overloads -------------------------------------------------------------

// Overload describes one registered operator definition. The first two
// parameters are always mandatory; Variadic overloads additionally accept
// any number of trailing operands, with the tail unconstrained.
//
// A parameter constrains its operand to a type name. The empty string leaves
// a parameter unconstrained.
type Overload struct {
	Symbol   string   // operator symbol, e.g. "+"
	Params   []string // fixed parameter type names, len ≥ 2
	Variadic bool     // accepts additional, unconstrained operands
	Result   string   // result type name
	serial   int      // registration order, set by the registry
}

// Arity returns the number of fixed parameters of an overload.
func (ov *Overload) Arity() int {
	return len(ov.Params)
}

// Matches checks an overload against a sequence of operand type names:
// the arity has to match exactly (or reach at least the fixed parameter
// count, for variadic overloads), and every fixed parameter constraint has
// to be satisfied pairwise, in order.
func (ov *Overload) Matches(argTypes []string) bool {
	if ov.Variadic {
		if len(argTypes) < len(ov.Params) {
			return false
		}
	} else if len(argTypes) != len(ov.Params) {
		return false
	}
	for i, p := range ov.Params {
		if p != "" && p != argTypes[i] {
			return false
		}
	}
	return true
}

func (ov *Overload) String() string {
	var buf bytes.Buffer
	buf.WriteString(ov.Symbol)
	buf.WriteString("(")
	for i, p := range ov.Params {
		if i > 0 {
			buf.WriteString(",")
		}
		if p == "" {
			buf.WriteString("_")
		} else {
			buf.WriteString(p)
		}
	}
	if ov.Variadic {
		buf.WriteString(",…")
	}
	buf.WriteString(")")
	if ov.Result != "" {
		buf.WriteString("→")
		buf.WriteString(ov.Result)
	}
	return buf.String()
}

// signature is the identity of an overload for duplicate detection. The
// result type is not part of the identity: two overloads differing only in
// their result would be ambiguous at every call site.
type signature struct {
	Symbol   string
	Params   []string
	Variadic bool
}

// --- Registry --------------------------------------------------------------

// Registry holds the operator overloads known to resolution passes. A
// registry is populated through Define, then sealed with Freeze. Lookup on
// an unfrozen registry panics: freezing-before-resolution is part of the
// contract with the resolver, not a runtime condition.
type Registry struct {
	bySymbol map[string]*treeset.Set // per-symbol overloads, largest arity first
	journal  *arraylist.List         // all overloads in registration order
	hashes   map[string]bool         // signature hashes for duplicate detection
	serials  int
	frozen   bool
}

// NewRegistry creates an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{
		bySymbol: make(map[string]*treeset.Set),
		journal:  arraylist.New(),
		hashes:   make(map[string]bool),
	}
}

// Overloads for one symbol are kept ordered by decreasing fixed arity, so
// that iteration tries the most specific candidates first; ties keep
// registration order.
func overloadComparator(o1, o2 interface{}) int {
	v1 := o1.(*Overload)
	v2 := o2.(*Overload)
	if c := utils.IntComparator(v2.Arity(), v1.Arity()); c != 0 {
		return c
	}
	return utils.IntComparator(v1.serial, v2.serial)
}

// Define registers an overload. It rejects definitions on a frozen registry,
// overloads with an empty symbol, overloads with fewer than 2 fixed
// parameters (variadic or not), and exact duplicates of an already
// registered signature.
func (r *Registry) Define(ov *Overload) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen, cannot define %v", ov)
	}
	if ov == nil || ov.Symbol == "" {
		return fmt.Errorf("overload needs an operator symbol")
	}
	if len(ov.Params) < 2 {
		if ov.Variadic {
			return fmt.Errorf("variadic overload for %q needs at least 2 fixed parameters, has %d",
				ov.Symbol, len(ov.Params))
		}
		return fmt.Errorf("overload for %q needs at least 2 parameters, has %d",
			ov.Symbol, len(ov.Params))
	}
	hash, err := structhash.Hash(signature{
		Symbol:   ov.Symbol,
		Params:   ov.Params,
		Variadic: ov.Variadic,
	}, 1)
	if err != nil {
		return err
	}
	if r.hashes[hash] {
		return fmt.Errorf("duplicate overload %v", ov)
	}
	set, ok := r.bySymbol[ov.Symbol]
	if !ok {
		set = treeset.NewWith(overloadComparator)
		r.bySymbol[ov.Symbol] = set
	}
	ov.serial = r.serials
	r.serials++
	set.Add(ov)
	r.journal.Add(ov)
	r.hashes[hash] = true
	tracer().Debugf("registered overload %v", ov)
	return nil
}

// Freeze seals the registry. Sealing is irreversible.
func (r *Registry) Freeze() {
	r.frozen = true
	tracer().Infof("registry frozen with %d overloads", r.journal.Size())
}

// Frozen returns wether the registry has been sealed.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup finds an overload for symbol matching the given operand type names
// at their exact arity. Variadic overloads participate at any arity not
// below their fixed parameter count; when a fixed-arity overload and a
// variadic one both match, the one with more fixed parameters wins.
// Lookup returns nil if nothing matches.
func (r *Registry) Lookup(symbol string, argTypes []string) *Overload {
	if !r.frozen {
		panic("ops: lookup on unfrozen registry")
	}
	set := r.bySymbol[symbol]
	if set == nil {
		return nil
	}
	it := set.Iterator()
	for it.Next() {
		ov := it.Value().(*Overload)
		if ov.Matches(argTypes) {
			tracer().Debugf("lookup %s/%d matches %v", symbol, len(argTypes), ov)
			return ov
		}
	}
	return nil
}

// OverloadsFor returns the overloads registered for a symbol, largest fixed
// arity first.
func (r *Registry) OverloadsFor(symbol string) []*Overload {
	set := r.bySymbol[symbol]
	if set == nil {
		return nil
	}
	ovs := make([]*Overload, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		ovs = append(ovs, it.Value().(*Overload))
	}
	return ovs
}

// Symbols returns all operator symbols with registered overloads, sorted.
func (r *Registry) Symbols() []string {
	syms := maps.Keys(r.bySymbol)
	slices.Sort(syms)
	return syms
}

// Size counts the registered overloads.
func (r *Registry) Size() int {
	return r.journal.Size()
}

// Each iterates over all overloads in registration order.
func (r *Registry) Each(mapper func(*Overload)) {
	it := r.journal.Iterator()
	for it.Next() {
		mapper(it.Value().(*Overload))
	}
}
