/*
Package nrepl/main provides an interactive command line tool (N.REPL)
for the narop expression language. Users declare classes, variables and
operator overloads, then enter infix expressions; N.REPL linearizes
operator chains and prints the resulting overload bindings. It serves as
a sandbox for experiments with n-ary operator resolution.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'narop.lang'
func tracer() tracing.Trace {
	return tracing.Select("narop.lang")
}
