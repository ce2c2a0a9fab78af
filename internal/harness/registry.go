// Package harness holds the test registry and the execution engine: it runs
// each registered test in isolation, classifies its outcome, and applies the
// per-test expectation-inversion rule.
package harness

import (
	"log"
	"sort"
	"strings"
	"time"
)

// DefaultTimeLimit bounds tests registered without an explicit limit. A
// non-positive limit disables the timing check entirely, which is useful when
// stepping through failing tests.
const DefaultTimeLimit = 500 * time.Millisecond

// Body is a test procedure. It receives the per-test context and signals
// failure by raising an assertion failure through the match package.
type Body func(*T)

// TestCase is one registered test. Immutable after registration.
type TestCase struct {
	Name      string
	TimeLimit time.Duration // <= 0 disables the timeout
	Body      Body
}

// Registry is the catalog of named tests. It is populated before the run
// starts and read-only afterwards.
type Registry struct {
	logger *log.Logger
	tests  map[string]TestCase
}

// NewRegistry returns an empty registry. Duplicate-registration warnings go
// to logger; a nil logger uses the log package default.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{logger: logger, tests: make(map[string]TestCase)}
}

// Register inserts a test. Registering a name twice is not fatal: a warning
// is logged and the newer registration wins.
func (r *Registry) Register(name string, limit time.Duration, body Body) {
	if _, dup := r.tests[name]; dup {
		r.logger.Printf("**Error: duplicate unit test named %s", name)
	}
	r.tests[name] = TestCase{Name: name, TimeLimit: limit, Body: body}
}

// Lookup returns the test registered under name.
func (r *Registry) Lookup(name string) (TestCase, bool) {
	tc, ok := r.tests[name]
	return tc, ok
}

// Len reports how many tests are registered.
func (r *Registry) Len() int { return len(r.tests) }

// Names returns all registered names. No ordering is promised; callers sort.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tests))
	for name := range r.tests {
		names = append(names, name)
	}
	return names
}

// Select returns the names accepted by pred, unordered.
func (r *Registry) Select(pred func(string) bool) []string {
	var names []string
	for name := range r.tests {
		if pred(name) {
			names = append(names, name)
		}
	}
	return names
}

// Filter resolves CLI filter tokens to test names. Each token first selects
// every name containing it as a substring; a token that matches nothing that
// way is retried against each name's initialism; a token that still matches
// nothing produces a warning. With no tokens, or when nothing matched at
// all, every registered test is selected. The result is sorted and
// deduplicated.
func (r *Registry) Filter(tokens []string) (names []string, warnings []string) {
	selected := make(map[string]struct{})
	for _, token := range tokens {
		found := false
		for name := range r.tests {
			if strings.Contains(name, token) {
				selected[name] = struct{}{}
				found = true
			}
		}
		if !found {
			for name := range r.tests {
				if initialism(name) == token {
					selected[name] = struct{}{}
					found = true
				}
			}
		}
		if !found {
			warnings = append(warnings,
				"Warning: No matching test found for input specification "+token)
		}
	}
	if len(selected) == 0 {
		for name := range r.tests {
			selected[name] = struct{}{}
		}
	}
	names = make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, warnings
}

// initialism reduces a name to its first character followed by every
// interior upper-case character, e.g. "testStringRepr" -> "tSR".
func initialism(name string) string {
	if name == "" {
		return ""
	}
	reduced := []byte{name[0]}
	for i := 1; i < len(name); i++ {
		if name[i] >= 'A' && name[i] <= 'Z' {
			reduced = append(reduced, name[i])
		}
	}
	return string(reduced)
}
