/*
Package ops implements operator overload descriptions and the overload
registry consulted during resolution.

A registry is populated once by the owning front end, then frozen. After
freezing it is read-only and may be shared by any number of concurrent
resolution passes.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/
package ops

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'narop.ops'.
func tracer() tracing.Trace {
	return tracing.Select("narop.ops")
}
