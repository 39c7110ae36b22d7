package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"fmt"
	"strings"

	"github.com/narop-lang/narop"
	"github.com/narop-lang/narop/ops"
	"github.com/narop-lang/narop/tree"
)

// Binding is the annotation a resolution pass attaches to every call node,
// stored in the node's UData slot. Either Overload is set, or Folded is
// true, never both.
type Binding struct {
	Overload *ops.Overload     // matched overload, nil for folded calls
	Folded   bool              // call was reverted to built-in binary form
	Result   narop.OperandType // static type of the call's value
}

func (b *Binding) String() string {
	if b.Folded {
		return fmt.Sprintf("<folded:%v>", b.Result)
	}
	return fmt.Sprintf("<bound %v>", b.Overload)
}

// NoMatchingOverload is the single error kind of resolution: the greedy
// arity-reduction search exhausted all arities down to 2 without a match.
// It is fatal for the enclosing expression; the resolver never recovers
// from it.
type NoMatchingOverload struct {
	Symbol       string   // operator symbol of the failing call
	Arities      []int    // arities attempted, in search order
	OperandTypes []string // operand type names at the call site
}

func (e *NoMatchingOverload) Error() string {
	return fmt.Sprintf("no matching overload for operator %q on (%s), tried arities %v",
		e.Symbol, strings.Join(e.OperandTypes, ", "), e.Arities)
}

// --- Resolver --------------------------------------------------------------

// Resolver binds the operator calls of expression trees to registered
// overloads. The registry has to be frozen before the first resolution
// call; TypeOf classifies leaf operands.
//
// A single resolver may serve concurrent passes, as long as every pass
// operates on a private tree (see tree.Arena.Clone).
type Resolver struct {
	Registry *ops.Registry
	TypeOf   narop.TypeOf
	// TagOf classifies a type name, for the results of bound overloads.
	// When nil, every overload result classifies as ClassOrEnum: overloads
	// are user-defined, so their results usually are, too.
	TagOf func(name string) narop.TypeTag
}

// ResolveTree resolves every call node of the tree under root, bottom-up,
// so sub-calls of differing operators are bound before their parents. On
// success every call node carries a *Binding in its UData slot. On failure
// the error is a *NoMatchingOverload for the offending call site and the
// tree is left partially annotated.
func (r *Resolver) ResolveTree(ar *tree.Arena, root tree.NodeRef) (tree.NodeRef, error) {
	if ar == nil || root == tree.NilRef {
		return tree.NilRef, fmt.Errorf("cannot resolve an empty tree")
	}
	if _, err := r.resolveNode(ar, root); err != nil {
		return tree.NilRef, err
	}
	return root, nil
}

// resolveNode returns the operand type of the resolved (sub-)tree.
func (r *Resolver) resolveNode(ar *tree.Arena, ref tree.NodeRef) (narop.OperandType, error) {
	if ar.Node(ref).Kind() == tree.LeafNode {
		return r.TypeOf(ar.Node(ref).Operand()), nil
	}
	for _, arg := range ar.Args(ref) {
		if _, err := r.resolveNode(ar, arg); err != nil {
			return narop.OperandType{}, err
		}
	}
	return r.resolveCall(ar, ref)
}

// resolveCall runs the eligibility check and the greedy arity-reduction
// search for one call node whose operands have all been resolved already.
func (r *Resolver) resolveCall(ar *tree.Arena, ref tree.NodeRef) (narop.OperandType, error) {
	sym := ar.Node(ref).Symbol()
	assoc := ar.Node(ref).Assoc()
	args := ar.Args(ref)
	types := make([]narop.OperandType, len(args))
	for i, arg := range args {
		types[i] = r.typeOfResolved(ar, arg)
	}
	// eligibility: without a class or enum operand, n-ary syntax is free —
	// revert to the built-in nested binary form without any lookup
	if !anyClassOrEnum(types) {
		tracer().Debugf("%q call has no class/enum operand, folding", sym)
		return r.fold(ar, ref, types[0]), nil
	}
	names := typeNames(types)
	tracer().Debugf("resolving %s/%d on (%s)", sym, len(args), strings.Join(names, ", "))

	tried := []int{len(args)}
	if ov := r.Registry.Lookup(sym, names); ov != nil {
		return r.bind(ar, ref, ov), nil
	}
	if len(args) == 2 {
		return narop.OperandType{}, &NoMatchingOverload{
			Symbol:       sym,
			Arities:      tried,
			OperandTypes: names,
		}
	}
	// peel off the right-most operand and wrap the remaining operands into
	// a nested call; the nested call re-enters the search on its own
	last := args[len(args)-1]
	inner := ar.Call(sym, assoc, args[:len(args)-1]...)
	innerType, err := r.resolveCall(ar, inner)
	if err != nil {
		if nmo, ok := err.(*NoMatchingOverload); ok {
			return narop.OperandType{}, &NoMatchingOverload{
				Symbol:       sym,
				Arities:      append(tried, nmo.Arities...),
				OperandTypes: names,
			}
		}
		return narop.OperandType{}, err
	}
	// the call is binary now: (inner result, peeled operand). The search
	// never reconsiders larger arities — a miss here is final.
	ar.SetArgs(ref, inner, last)
	outerNames := []string{innerType.Name, names[len(names)-1]}
	tried = append(tried, 2)
	if ov := r.Registry.Lookup(sym, outerNames); ov != nil {
		return r.bind(ar, ref, ov), nil
	}
	return narop.OperandType{}, &NoMatchingOverload{
		Symbol:       sym,
		Arities:      tried,
		OperandTypes: names,
	}
}

// bind annotates a call node with its matched overload and returns the
// call's result type.
func (r *Resolver) bind(ar *tree.Arena, ref tree.NodeRef, ov *ops.Overload) narop.OperandType {
	result := narop.OperandType{Name: ov.Result, Tag: narop.ClassOrEnum}
	if r.TagOf != nil {
		result.Tag = r.TagOf(ov.Result)
	}
	ar.Node(ref).UData = &Binding{Overload: ov, Result: result}
	tracer().Debugf("bound %s to %v", ar.ListString(ref), ov)
	return result
}

// fold rewrites an n-ary call into its nested binary form, left to right:
// op(a,b,c,…,z) becomes op(…op(op(a,b),c)…,z). Every node of the folded
// structure is annotated as folded. The folded call follows built-in
// semantics; its value classifies Other, with the type name carried over
// from the left-most operand.
func (r *Resolver) fold(ar *tree.Arena, ref tree.NodeRef, leftmost narop.OperandType) narop.OperandType {
	result := narop.OperandType{Name: leftmost.Name, Tag: narop.Other}
	args := ar.Args(ref)
	if len(args) > 2 {
		sym := ar.Node(ref).Symbol()
		assoc := ar.Node(ref).Assoc()
		acc := args[0]
		for _, arg := range args[1 : len(args)-1] {
			acc = ar.Call(sym, assoc, acc, arg)
			ar.Node(acc).UData = &Binding{Folded: true, Result: result}
		}
		ar.SetArgs(ref, acc, args[len(args)-1])
	}
	ar.Node(ref).UData = &Binding{Folded: true, Result: result}
	tracer().Debugf("folded to %s", ar.ListString(ref))
	return result
}

// typeOfResolved returns the operand type of an already resolved node:
// leafs classify through the TypeOf callback, calls carry their type in
// their binding.
func (r *Resolver) typeOfResolved(ar *tree.Arena, ref tree.NodeRef) narop.OperandType {
	node := ar.Node(ref)
	if node.Kind() == tree.LeafNode {
		return r.TypeOf(node.Operand())
	}
	if b, ok := node.UData.(*Binding); ok {
		return b.Result
	}
	panic("resolve: operand call without binding, pass ordering broken")
}

// --- Helpers ---------------------------------------------------------------

func anyClassOrEnum(types []narop.OperandType) bool {
	for _, t := range types {
		if t.Tag == narop.ClassOrEnum {
			return true
		}
	}
	return false
}

func typeNames(types []narop.OperandType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}
