package lang

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/narop-lang/narop"
	"github.com/narop-lang/narop/ops"
	"github.com/narop-lang/narop/resolve"
	"github.com/narop-lang/narop/tree"
)

// strSession declares a Str class, 4 variables of it, and an overload set
// for string concatenation.
func strSession(t *testing.T, ovs ...*ops.Overload) *Session {
	s := NewSession()
	s.DeclareClass("Str")
	for _, v := range []string{"a", "b", "c", "d"} {
		s.DeclareVar(v, "Str")
	}
	for _, ov := range ovs {
		if err := s.Define(ov); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func bindingAt(t *testing.T, ar *tree.Arena, ref tree.NodeRef) *resolve.Binding {
	b, ok := ar.Node(ref).UData.(*resolve.Binding)
	if !ok {
		t.Fatalf("node %s carries no binding", ar.ListString(ref))
	}
	return b
}

func TestSessionResolvesChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t, &ops.Overload{Symbol: "+", Params: []string{"Str", "Str"}, Variadic: true, Result: "Str"})
	ar, root, err := s.Check("a + b + c + d")
	if err != nil {
		t.Fatal(err)
	}
	if ar.Node(root).Arity() != 4 {
		t.Errorf("expected chain to linearize to arity 4, has %d", ar.Node(root).Arity())
	}
	b := bindingAt(t, ar, root)
	if b.Folded || b.Overload == nil || !b.Overload.Variadic {
		t.Errorf("expected the variadic overload to bind, have %v", b)
	}
}

func TestSessionArityReduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t,
		&ops.Overload{Symbol: "+", Params: []string{"Str", "Str", "Str"}, Result: "Str"},
		&ops.Overload{Symbol: "+", Params: []string{"Str", "Str"}, Result: "Str"},
	)
	ar, root, err := s.Check("a + b + c + d")
	if err != nil {
		t.Fatal(err)
	}
	if ar.Node(root).Arity() != 2 {
		t.Errorf("expected reduced outer call of arity 2, has %d", ar.Node(root).Arity())
	}
	outer := bindingAt(t, ar, root)
	inner := bindingAt(t, ar, ar.Args(root)[0])
	if outer.Overload.Arity() != 2 || inner.Overload.Arity() != 3 {
		t.Errorf("expected outer/2 and inner/3 bindings, have %v and %v",
			outer.Overload, inner.Overload)
	}
}

func TestSessionFoldsBuiltins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := NewSession() // no declarations at all
	ar, root, err := s.Check("1 + 2 + 3 + 4")
	if err != nil {
		t.Fatal(err)
	}
	if l := ar.ListString(root); l != "(+ (+ (+ 1 2) 3) 4)" {
		t.Errorf("expected folded binary form, have %s", l)
	}
	b := bindingAt(t, ar, root)
	if !b.Folded || b.Result.Tag != narop.Other {
		t.Errorf("expected a folded binding classifying Other, have %v", b)
	}
}

func TestSessionChainedComparison(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t, &ops.Overload{Symbol: "<", Params: []string{"", ""}, Result: "Bool"})
	s.DeclareClass("Bool")
	ar, root, err := s.Check("a < b < c < d")
	if err != nil {
		t.Fatal(err)
	}
	// the chain reduces to nested binary calls, each producing Bool
	for ref := root; ar.Node(ref).Kind() == tree.CallNode; ref = ar.Args(ref)[0] {
		if b := bindingAt(t, ar, ref); b.Result.Name != "Bool" {
			t.Errorf("expected every '<' call to produce Bool, %s produces %v",
				ar.ListString(ref), b.Result)
		}
	}
}

func TestSessionNoMatchingOverload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t, &ops.Overload{Symbol: "+", Params: []string{"Str", "Str", "Str", "Str"}, Result: "Str"})
	_, _, err := s.Check("a * b * c * d")
	if err == nil {
		t.Fatal("expected resolution to fail, '*' has no overloads")
	}
	nmo, ok := errors.Cause(err).(*resolve.NoMatchingOverload)
	if !ok {
		t.Fatalf("expected a NoMatchingOverload cause, have %v", err)
	}
	if nmo.Symbol != "*" {
		t.Errorf("expected the failure to name '*', names %q", nmo.Symbol)
	}
}

func TestSessionCheckAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t, &ops.Overload{Symbol: "+", Params: []string{"Str", "Str"}, Result: "Str"})
	err := s.CheckAll(
		"a + b",     // ok
		"a - b",     // no '-' overload
		"a + b + c", // ok, reduces
		"a < b",     // no '<' overload
	)
	if errs := multierr.Errors(err); len(errs) != 2 {
		t.Errorf("expected 2 collected failures, have %d: %v", len(errs), errs)
	}
}

func TestSessionFreezesOnFirstCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t, &ops.Overload{Symbol: "+", Params: []string{"Str", "Str"}, Result: "Str"})
	if _, _, err := s.Check("a + b"); err != nil {
		t.Fatal(err)
	}
	if !s.Registry.Frozen() {
		t.Error("expected registry to be frozen after the first check")
	}
	if err := s.Define(&ops.Overload{Symbol: "-", Params: []string{"Str", "Str"}, Result: "Str"}); err == nil {
		t.Error("expected definitions after freezing to fail")
	}
}

func TestSessionUndeclaredVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.lang")
	defer teardown()
	//
	s := strSession(t, &ops.Overload{Symbol: "+", Params: []string{"Str", "Str"}, Result: "Str"})
	ar, root, err := s.Check("x + y") // x, y undeclared, classify Other
	if err != nil {
		t.Fatal(err)
	}
	if b := bindingAt(t, ar, root); !b.Folded {
		t.Errorf("expected undeclared operands to fold, have %v", b)
	}
}
