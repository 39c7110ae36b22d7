/*
Package lang provides a small infix expression language for feeding the
n-ary operator core.

The language is deliberately tiny — identifiers, number and string
literals, parentheses, and a handful of infix operators. Its parser
produces plain binary expression trees, i.e. the shape an ordinary grammar
yields before any chain linearization. A Session bundles type
declarations, an overload registry and the resolver into a convenient
scan → parse → flatten → resolve pipeline.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/
package lang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'narop.lang'.
func tracer() tracing.Trace {
	return tracing.Select("narop.lang")
}
