//go:build !linux

package debugger

// No tracer introspection facility on this platform.
func tracerAttached() bool { return false }
