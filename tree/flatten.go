package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"github.com/narop-lang/narop"
)

// Flatten collapses every maximal chain of same-symbol, left-to-right
// associative applications, nested along the left-most operand, into a
// single n-ary call node:
//
//    (+ (+ (+ a b) c) d)   ⟹   (+ a b c d)
//
// Rewriting happens in place by reparenting operand references; the returned
// reference equals root. Right-associative operators and chains of differing
// symbols are left untouched. Flatten is idempotent.
//
// A single post-order descent reaches the fixed point: children are
// flattened before their parent, so a parent only ever splices an already
// flat left spine.
func (a *Arena) Flatten(root NodeRef) NodeRef {
	if root == NilRef {
		return root
	}
	a.flatten(root)
	return root
}

func (a *Arena) flatten(ref NodeRef) {
	if a.Node(ref).kind != CallNode {
		return
	}
	for _, arg := range a.Args(ref) {
		a.flatten(arg)
	}
	node := a.Node(ref)
	if node.assoc != narop.LeftToRight {
		return
	}
	for {
		left := a.Node(node.args[0])
		if left.kind != CallNode || left.sym != node.sym || left.assoc != narop.LeftToRight {
			break
		}
		// splice the child's operand sequence onto the front; the child
		// node itself becomes garbage within the arena
		spliced := make([]NodeRef, 0, len(left.args)+len(node.args)-1)
		spliced = append(spliced, left.args...)
		spliced = append(spliced, node.args[1:]...)
		node.args = spliced
		tracer().Debugf("spliced %q chain, arity now %d", node.sym, len(node.args))
	}
}
