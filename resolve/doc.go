/*
Package resolve implements overload resolution for n-ary operator calls.

Resolution consumes a (linearized) expression tree and a frozen overload
registry. Every call node is either bound to a registered overload, using
a greedy arity-reduction search, or — when no operand of a call has a
user-defined type — folded back into its plain nested binary form. The
search is greedy by design: once a smaller arity is tried, larger arities
are never reconsidered.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/
package resolve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'narop.resolve'.
func tracer() tracing.Trace {
	return tracing.Select("narop.resolve")
}
