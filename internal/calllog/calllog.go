// Package calllog records synthetic function invocations for
// stub-verification tests. Each entry is the function name followed by its
// rendered arguments, tab-joined; entries keep insertion order.
package calllog

import (
	"slices"
	"strings"
	"sync"

	"github.com/unittap/unittap/internal/repr"
)

// Log is an append-only, clearable record of calls.
type Log struct {
	mu      sync.Mutex
	entries []string
}

// New returns an empty log.
func New() *Log { return &Log{} }

// Record appends one entry: name, then each argument rendered, tab-joined.
func (l *Log) Record(name string, args ...any) {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		parts = append(parts, repr.Render(a))
	}
	l.mu.Lock()
	l.entries = append(l.entries, strings.Join(parts, "\t"))
	l.mu.Unlock()
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// Entries returns a copy of the logged entries in insertion order.
func (l *Log) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Len reports the number of logged entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Contains reports whether entry was logged.
func (l *Log) Contains(entry string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Contains(l.entries, entry)
}

// Matches reports whether the logged entries equal expected, in order.
func (l *Log) Matches(expected []string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Equal(l.entries, expected)
}

// std is the process-wide log that stubbed functions write to when they have
// no handle on a test-local log.
var std = New()

// Default returns the process-wide log.
func Default() *Log { return std }

// Record appends an entry to the process-wide log.
func Record(name string, args ...any) { std.Record(name, args...) }

// Clear empties the process-wide log.
func Clear() { std.Clear() }

// Entries returns the process-wide log's entries.
func Entries() []string { return std.Entries() }
