/*
Package tree implements arena-based expression trees for operator
applications, together with the linearizer which collapses chains of a
left-associative binary operator into single n-ary call nodes.

Nodes live in an arena and address each other by index. This makes the
splicing done during linearization an O(1) reparenting operation instead
of a structural copy. Nodes are a tagged variant over leafs and operator
calls; the variant set is closed and consumers switch on the node kind
explicitly.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'narop.tree'.
func tracer() tracing.Trace {
	return tracing.Select("narop.tree")
}
