// Package debugger reports whether an interactive debugger or tracer is
// attached to the current process. The engine uses this to suppress test
// time limits, and failing assertions use it to stop at the failure point.
package debugger

import (
	"runtime"
	"sync"
)

var (
	once     sync.Once
	attached bool
)

// Attached reports whether a tracer is attached to this process. The probe
// runs once; the result is cached for the remainder of the run. Platforms
// without an introspection facility report false.
func Attached() bool {
	once.Do(func() {
		attached = tracerAttached()
	})
	return attached
}

// Break traps into the attached debugger at the call site.
func Break() {
	runtime.Breakpoint()
}
