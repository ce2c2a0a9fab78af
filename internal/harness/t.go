package harness

import (
	"sync/atomic"

	"github.com/unittap/unittap/internal/calllog"
)

// T is the per-test context handed to every test body. It carries the test's
// name and the expectation flag; the flag is reset before each run, so
// expectation never leaks between tests.
type T struct {
	name       string
	expectFail atomic.Bool
}

func newT(name string) *T { return &T{name: name} }

// Name returns the running test's name.
func (t *T) Name() string { return t.name }

// ExpectFailure reverses the expectation for this test: a test that fails,
// errors, or times out is reported and counted as OK, and a test that
// succeeds is reported and counted as a failure. Call it before any
// assertion; it has no effect on an assertion that has already resolved the
// test's fate.
func (t *T) ExpectFailure() { t.expectFail.Store(true) }

func (t *T) expectingFailure() bool { return t.expectFail.Load() }

// Log returns the process-wide call log, a convenience for stub-verification
// tests.
func (t *T) Log() *calllog.Log { return calllog.Default() }
