package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"bytes"
	"fmt"

	"github.com/narop-lang/narop"
)

// NodeRef addresses a node within an arena. References are stable for the
// lifetime of the arena; splicing and folding never move nodes.
type NodeRef int32

// NilRef is the null node reference.
const NilRef NodeRef = -1

// NodeKind is the tag of the node variant.
type NodeKind int8

// The node kinds. The set is closed and small.
const (
	LeafNode NodeKind = iota
	CallNode
)

func (k NodeKind) String() string {
	if k == LeafNode {
		return "leaf"
	}
	return "call"
}

// Node is a tagged variant: either a leaf wrapping an operand, or an
// operator call with an ordered operand sequence. Call nodes always bind at
// least 2 operands; the arena enforces this at construction.
type Node struct {
	kind  NodeKind
	opnd  narop.Operand // leaf payload
	sym   string        // call: operator symbol
	assoc narop.Assoc   // call: associativity
	args  []NodeRef     // call: operand sequence, len ≥ 2
	UData interface{}   // user data, e.g. a resolver binding
}

// Kind returns the variant tag of a node.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Operand returns the payload of a leaf node, nil for call nodes.
func (n *Node) Operand() narop.Operand {
	return n.opnd
}

// Symbol returns the operator symbol of a call node.
func (n *Node) Symbol() string {
	return n.sym
}

// Assoc returns the associativity of a call node.
func (n *Node) Assoc() narop.Assoc {
	return n.assoc
}

// Arity returns the number of operands a call node binds. Leafs have
// arity 0.
func (n *Node) Arity() int {
	return len(n.args)
}

func (n *Node) String() string {
	if n.kind == LeafNode {
		if n.opnd == nil {
			return "<leaf nil>"
		}
		return fmt.Sprintf("<leaf %q>", n.opnd.Lexeme())
	}
	return fmt.Sprintf("<call %s/%d>", n.sym, len(n.args))
}

// --- Arenas ----------------------------------------------------------------

// Arena owns the nodes of one expression tree. An expression is constructed
// once, rewritten in place (linearization, folding), then discarded. Arenas
// are not safe for concurrent mutation; workers operating in parallel each
// take a Clone.
type Arena struct {
	nodes []Node
	root  NodeRef
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		nodes: make([]Node, 0, 64),
		root:  NilRef,
	}
}

// Leaf appends a leaf node wrapping an operand.
func (a *Arena) Leaf(opnd narop.Operand) NodeRef {
	a.nodes = append(a.nodes, Node{kind: LeafNode, opnd: opnd})
	return NodeRef(len(a.nodes) - 1)
}

// Call appends an operator call node. Call panics if fewer than 2 operands
// are given: arity below 2 is a construction error, not a runtime condition.
func (a *Arena) Call(sym string, assoc narop.Assoc, operands ...NodeRef) NodeRef {
	if len(operands) < 2 {
		panic(fmt.Sprintf("tree: call node for %q with arity %d < 2", sym, len(operands)))
	}
	args := make([]NodeRef, len(operands))
	copy(args, operands)
	a.nodes = append(a.nodes, Node{kind: CallNode, sym: sym, assoc: assoc, args: args})
	return NodeRef(len(a.nodes) - 1)
}

// Node returns the node addressed by ref. The returned pointer stays valid
// until the next node is appended to the arena.
func (a *Arena) Node(ref NodeRef) *Node {
	if ref < 0 || int(ref) >= len(a.nodes) {
		panic(fmt.Sprintf("tree: node reference %d out of range", ref))
	}
	return &a.nodes[ref]
}

// Args returns a copy of the operand references of a call node. It is empty
// for leafs.
func (a *Arena) Args(ref NodeRef) []NodeRef {
	n := a.Node(ref)
	if n.kind != CallNode {
		return nil
	}
	args := make([]NodeRef, len(n.args))
	copy(args, n.args)
	return args
}

// SetArgs replaces the operand sequence of a call node. Like Call it panics
// on arity below 2.
func (a *Arena) SetArgs(ref NodeRef, operands ...NodeRef) {
	n := a.Node(ref)
	if n.kind != CallNode {
		panic(fmt.Sprintf("tree: cannot set operands on %s node", n.kind))
	}
	if len(operands) < 2 {
		panic(fmt.Sprintf("tree: call node for %q with arity %d < 2", n.sym, len(operands)))
	}
	args := make([]NodeRef, len(operands))
	copy(args, operands)
	n.args = args
}

// Root returns the root reference of the arena's tree, NilRef for an empty
// arena.
func (a *Arena) Root() NodeRef {
	return a.root
}

// SetRoot marks a node as the root of the arena's tree.
func (a *Arena) SetRoot(ref NodeRef) {
	a.root = ref
}

// Size counts the nodes in the arena, including nodes no longer referenced
// after splicing.
func (a *Arena) Size() int {
	return len(a.nodes)
}

// Clone returns a deep copy of the arena. Node annotations (UData) are
// copied shallowly. Workers processing expressions in parallel each operate
// on a private clone.
func (a *Arena) Clone() *Arena {
	c := &Arena{
		nodes: make([]Node, len(a.nodes)),
		root:  a.root,
	}
	copy(c.nodes, a.nodes)
	for i := range c.nodes {
		if c.nodes[i].args != nil {
			args := make([]NodeRef, len(c.nodes[i].args))
			copy(args, c.nodes[i].args)
			c.nodes[i].args = args
		}
	}
	return c
}

// --- Structural equality and dumping ---------------------------------------

// Equal compares two (sub-)trees structurally: node kinds, operator symbols,
// associativity, arity, and leaf lexemes. Annotations are ignored.
func Equal(a *Arena, x NodeRef, b *Arena, y NodeRef) bool {
	if x == NilRef || y == NilRef {
		return x == y
	}
	nx, ny := a.Node(x), b.Node(y)
	if nx.kind != ny.kind {
		return false
	}
	if nx.kind == LeafNode {
		if nx.opnd == nil || ny.opnd == nil {
			return nx.opnd == ny.opnd
		}
		return nx.opnd.Lexeme() == ny.opnd.Lexeme()
	}
	if nx.sym != ny.sym || nx.assoc != ny.assoc || len(nx.args) != len(ny.args) {
		return false
	}
	for i := range nx.args {
		if !Equal(a, nx.args[i], b, ny.args[i]) {
			return false
		}
	}
	return true
}

// ListString returns an s-expr style representation of a (sub-)tree, e.g.
//
//    (+ a b (* c d))
//
// Leafs print their lexeme.
func (a *Arena) ListString(ref NodeRef) string {
	var buf bytes.Buffer
	a.listString(&buf, ref)
	return buf.String()
}

func (a *Arena) listString(buf *bytes.Buffer, ref NodeRef) {
	if ref == NilRef {
		buf.WriteString("nil")
		return
	}
	n := a.Node(ref)
	if n.kind == LeafNode {
		if n.opnd == nil {
			buf.WriteString("nil")
		} else {
			buf.WriteString(n.opnd.Lexeme())
		}
		return
	}
	buf.WriteString("(")
	buf.WriteString(n.sym)
	for _, arg := range n.args {
		buf.WriteString(" ")
		a.listString(buf, arg)
	}
	buf.WriteString(")")
}

// Dump is a debugging helper, tracing the tree under ref.
func (a *Arena) Dump(ref NodeRef) {
	tracer().Debugf("--- tree ----------------")
	a.dump(ref, 0)
	tracer().Debugf("-------------------------")
}

func (a *Arena) dump(ref NodeRef, level int) {
	if ref == NilRef {
		return
	}
	indent := ""
	for i := 0; i < level; i++ {
		indent += "    "
	}
	n := a.Node(ref)
	tracer().Debugf("%s[%03d] %v", indent, ref, n)
	for _, arg := range n.args {
		a.dump(arg, level+1)
	}
}
