package tree

import (
	"testing"

	"github.com/narop-lang/narop"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArenaLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.tree")
	defer teardown()
	//
	a := NewArena()
	l := a.Leaf(testOperand("a"))
	if a.Node(l).Kind() != LeafNode {
		t.Errorf("expected leaf node, got %v", a.Node(l).Kind())
	}
	if a.Node(l).Operand().Lexeme() != "a" {
		t.Errorf("leaf should wrap operand a, has %q", a.Node(l).Operand().Lexeme())
	}
}

func TestArenaCall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.tree")
	defer teardown()
	//
	a := NewArena()
	c := a.Call("+", narop.LeftToRight, a.Leaf(testOperand("a")), a.Leaf(testOperand("b")))
	n := a.Node(c)
	if n.Kind() != CallNode || n.Symbol() != "+" || n.Arity() != 2 {
		t.Errorf("unexpected call node %v", n)
	}
}

func TestArenaCallArityPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.tree")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("call node with arity 1 should panic")
		}
	}()
	a := NewArena()
	a.Call("+", narop.LeftToRight, a.Leaf(testOperand("a")))
}

func TestListString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.tree")
	defer teardown()
	//
	a := NewArena()
	inner := a.Call("*", narop.LeftToRight, a.Leaf(testOperand("c")), a.Leaf(testOperand("d")))
	left := a.Call("+", narop.LeftToRight, a.Leaf(testOperand("a")), a.Leaf(testOperand("b")))
	root := a.Call("+", narop.LeftToRight, left, inner)
	if s := a.ListString(root); s != "(+ (+ a b) (* c d))" {
		t.Errorf("tree should print as (+ (+ a b) (* c d)), is %s", s)
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.tree")
	defer teardown()
	//
	a := leftChain("+", "a", "b", "c")
	b := leftChain("+", "a", "b", "c")
	if !Equal(a, a.Root(), b, b.Root()) {
		t.Errorf("structurally identical trees should compare equal")
	}
	c := leftChain("-", "a", "b", "c")
	if Equal(a, a.Root(), c, c.Root()) {
		t.Errorf("trees for different operators should not compare equal")
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "narop.tree")
	defer teardown()
	//
	a := leftChain("+", "a", "b", "c", "d")
	c := a.Clone()
	a.Flatten(a.Root())
	if Equal(a, a.Root(), c, c.Root()) {
		t.Errorf("mutating the original must not alter the clone")
	}
	if c.ListString(c.Root()) != "(+ (+ (+ a b) c) d)" {
		t.Errorf("clone changed, is now %s", c.ListString(c.Root()))
	}
}

// --- Helpers ---------------------------------------------------------------

type testOperand string

func (t testOperand) Lexeme() string     { return string(t) }
func (t testOperand) Value() interface{} { return nil }
func (t testOperand) Span() narop.Span   { return narop.Span{} }

var _ narop.Operand = testOperand("a")

// leftChain builds the left-associative nested binary parse of
// l1 op l2 op … op ln, the shape an ordinary parser produces.
func leftChain(sym string, leaves ...string) *Arena {
	a := NewArena()
	acc := a.Leaf(testOperand(leaves[0]))
	for _, l := range leaves[1:] {
		acc = a.Call(sym, narop.LeftToRight, acc, a.Leaf(testOperand(l)))
	}
	a.SetRoot(acc)
	return a
}
