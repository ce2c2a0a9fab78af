package harness

import (
	"fmt"
	"sync"
	"time"

	"github.com/unittap/unittap/internal/debugger"
	"github.com/unittap/unittap/internal/match"
)

// Status classifies one test execution.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusError
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusError:
		return "error"
	case StatusTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the final classification of one test execution, with the
// composed diagnostic text the reporter prints for non-successes (and for
// expected failures, which carry a note).
type Outcome struct {
	Name       string
	Ordinal    int
	Status     Status
	Diagnostic string
	Elapsed    time.Duration
}

// DefaultPollInterval is how often the controller checks the shared result
// slot while a timed test runs.
const DefaultPollInterval = 100 * time.Millisecond

// Engine runs single tests under fault trapping and optional timeout
// detection. The zero value is usable.
type Engine struct {
	// PollInterval overrides DefaultPollInterval, mainly for tests.
	PollInterval time.Duration
	// DebuggerAttached overrides the OS probe, mainly for tests.
	DebuggerAttached func() bool
}

func (e *Engine) pollInterval() time.Duration {
	if e.PollInterval > 0 {
		return e.PollInterval
	}
	return DefaultPollInterval
}

func (e *Engine) debuggerAttached() bool {
	if e.DebuggerAttached != nil {
		return e.DebuggerAttached()
	}
	return debugger.Attached()
}

// resultSlot is the single shared slot a timed worker deposits its result
// into; the controller polls it under the lock.
type resultSlot struct {
	mu   sync.Mutex
	done bool
	st   Status
	diag string
}

// Run executes one test and returns its Outcome. Ordinal is the test's
// 1-based position in the run, used in diagnostics.
func (e *Engine) Run(ordinal int, tc TestCase) Outcome {
	t := newT(tc.Name)
	start := time.Now()

	var st Status
	var diag string
	if tc.TimeLimit > 0 && !e.debuggerAttached() {
		st, diag = e.runTimed(t, tc)
		if st == StatusTimeout {
			diag = fmt.Sprintf(
				"Test %d - %s still running after %d milliseconds - possible infinite loop?",
				ordinal, tc.Name, tc.TimeLimit.Milliseconds())
		}
	} else {
		st, diag = runGuarded(t, tc.Body)
	}

	out := Outcome{Name: tc.Name, Ordinal: ordinal, Elapsed: time.Since(start)}
	out.Status, out.Diagnostic = classify(st, diag, t.expectingFailure(), ordinal, tc)
	return out
}

// runTimed spawns one worker for the body and polls the shared slot until
// the worker reports or the limit elapses. On elapse the worker is
// abandoned, not cancelled: timeouts are detected, never enforced.
func (e *Engine) runTimed(t *T, tc TestCase) (Status, string) {
	slot := &resultSlot{}
	go func() {
		st, diag := runGuarded(t, tc.Body)
		slot.mu.Lock()
		slot.done, slot.st, slot.diag = true, st, diag
		slot.mu.Unlock()
	}()

	interval := e.pollInterval()
	deadline := time.Now().Add(tc.TimeLimit)
	for {
		time.Sleep(interval)
		slot.mu.Lock()
		if slot.done {
			st, diag := slot.st, slot.diag
			slot.mu.Unlock()
			return st, diag
		}
		slot.mu.Unlock()
		if !time.Now().Before(deadline) {
			return StatusTimeout, ""
		}
	}
}

// runGuarded invokes the body under the fault trap: a raised assertion
// failure classifies as Failure, and any other panic - runtime faults such
// as nil dereferences and integer division by zero included - classifies as
// Error. Control returns here without running the body's remaining
// statements; resources it held are not released deterministically.
func runGuarded(t *T, body Body) (st Status, diag string) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*match.Failure); ok {
				st, diag = StatusFailure, f.Location()+": error: Failed test\n"+f.Error()
				return
			}
			st, diag = StatusError, fmt.Sprintf("ERROR - Unexpected error in %s: %v", t.name, r)
		}
	}()
	body(t)
	return StatusSuccess, ""
}

// classify applies the expectation-inversion rule uniformly to the
// underlying result: with the flag clear the underlying result stands; with
// it set, Success becomes Failure and every non-success (Failure, Error,
// Timeout alike) becomes Success carrying a note.
func classify(underlying Status, diag string, expectFail bool, ordinal int, tc TestCase) (Status, string) {
	if !expectFail {
		return underlying, diag
	}
	if underlying == StatusSuccess {
		return StatusFailure, fmt.Sprintf(
			"Test %d - %s passed but was expected to fail.", ordinal, tc.Name)
	}
	return StatusSuccess, fmt.Sprintf("Test %d failed but was expected to fail.", ordinal)
}
