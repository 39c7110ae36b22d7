/*
Package typing implements declarations and scopes for operand types.

A front end feeding expression trees into overload resolution has to answer
one question per leaf operand: what is its static type, and does that type
classify as a user-defined (class- or enum-like) type? This package provides
the unsophisticated bookkeeping for that: declarations (name → operand type)
stored in declaration tables, attached to scopes, with scopes forming a tree.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/
package typing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'narop.typing'.
func tracer() tracing.Trace {
	return tracing.Select("narop.typing")
}
