package harness

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unittap/unittap/internal/match"
)

// noDebugger builds an engine that never believes a debugger is attached, so
// timeout behavior is deterministic under test.
func noDebugger() Engine {
	return Engine{DebuggerAttached: func() bool { return false }}
}

func TestRunPassingBody(t *testing.T) {
	e := noDebugger()
	o := e.Run(1, TestCase{Name: "passes", Body: func(t *T) {
		match.Equal(1+1, 2)
	}})
	assert.Equal(t, StatusSuccess, o.Status)
	assert.Empty(t, o.Diagnostic)
	assert.Equal(t, 1, o.Ordinal)
	assert.Equal(t, "passes", o.Name)
}

func TestRunFailingAssertion(t *testing.T) {
	e := noDebugger()
	o := e.Run(3, TestCase{Name: "fails", Body: func(t *T) {
		match.That(6, match.Is(5))
	}})
	assert.Equal(t, StatusFailure, o.Status)
	assert.Contains(t, o.Diagnostic, "error: Failed test")
	assert.Contains(t, o.Diagnostic, "assertThat(6, is(5))")
	assert.Contains(t, o.Diagnostic, "Expected: 5")
}

func TestRunTrapsRuntimeFaults(t *testing.T) {
	e := noDebugger()

	o := e.Run(1, TestCase{Name: "divides", Body: func(t *T) {
		n := len(t.Name()) - len(t.Name())
		_ = 1 / n
	}})
	assert.Equal(t, StatusError, o.Status)
	assert.Contains(t, o.Diagnostic, "ERROR - Unexpected error in divides:")

	o = e.Run(2, TestCase{Name: "dereferences", Body: func(t *T) {
		var p *int
		_ = *p
	}})
	assert.Equal(t, StatusError, o.Status)

	o = e.Run(3, TestCase{Name: "panics", Body: func(t *T) {
		panic("boom")
	}})
	assert.Equal(t, StatusError, o.Status)
	assert.Contains(t, o.Diagnostic, "boom")
}

func TestRunDetectsTimeoutWithoutKilling(t *testing.T) {
	e := noDebugger()
	e.PollInterval = 5 * time.Millisecond
	release := make(chan struct{})
	finished := make(chan struct{})

	o := e.Run(2, TestCase{
		Name:      "spins",
		TimeLimit: 20 * time.Millisecond,
		Body: func(t *T) {
			<-release
			close(finished)
		},
	})
	assert.Equal(t, StatusTimeout, o.Status)
	assert.Equal(t,
		"Test 2 - spins still running after 20 milliseconds - possible infinite loop?",
		o.Diagnostic)

	// The worker was abandoned, not cancelled: it still completes once
	// unblocked.
	close(release)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("abandoned worker never resumed")
	}
}

func TestDebuggerSuppressesTimeLimit(t *testing.T) {
	e := Engine{DebuggerAttached: func() bool { return true }}
	e.PollInterval = 5 * time.Millisecond
	o := e.Run(1, TestCase{
		Name:      "slow",
		TimeLimit: 10 * time.Millisecond,
		Body: func(t *T) {
			time.Sleep(50 * time.Millisecond)
		},
	})
	assert.Equal(t, StatusSuccess, o.Status)
}

func TestExpectFailureInvertsOutcomes(t *testing.T) {
	e := noDebugger()
	e.PollInterval = 5 * time.Millisecond

	o := e.Run(1, TestCase{Name: "passesAnyway", Body: func(t *T) {
		t.ExpectFailure()
	}})
	assert.Equal(t, StatusFailure, o.Status)
	assert.Equal(t, "Test 1 - passesAnyway passed but was expected to fail.", o.Diagnostic)

	o = e.Run(2, TestCase{Name: "failsAsExpected", Body: func(t *T) {
		t.ExpectFailure()
		match.Fail()
	}})
	assert.Equal(t, StatusSuccess, o.Status)
	assert.Equal(t, "Test 2 failed but was expected to fail.", o.Diagnostic)

	o = e.Run(3, TestCase{Name: "errorsAsExpected", Body: func(t *T) {
		t.ExpectFailure()
		var p *int
		_ = *p
	}})
	assert.Equal(t, StatusSuccess, o.Status)

	o = e.Run(4, TestCase{
		Name:      "hangsAsExpected",
		TimeLimit: 15 * time.Millisecond,
		Body: func(t *T) {
			t.ExpectFailure()
			select {}
		},
	})
	assert.Equal(t, StatusSuccess, o.Status)
	assert.Equal(t, "Test 4 failed but was expected to fail.", o.Diagnostic)
}

func TestExpectationDoesNotLeakBetweenRuns(t *testing.T) {
	e := noDebugger()
	tc := TestCase{Name: "flagged", Body: func(t *T) { t.ExpectFailure() }}
	o := e.Run(1, tc)
	require.Equal(t, StatusFailure, o.Status)

	plain := TestCase{Name: "plain", Body: func(t *T) {}}
	o = e.Run(2, plain)
	assert.Equal(t, StatusSuccess, o.Status)
}

func TestRegistryDuplicateWarnsAndOverwrites(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(log.New(&buf, "", 0))
	reg.Register("twice", 0, func(t *T) { match.Fail() })
	reg.Register("twice", 0, func(t *T) {})

	assert.Equal(t, 1, reg.Len())
	assert.Contains(t, buf.String(), "**Error: duplicate unit test named twice")

	tc, ok := reg.Lookup("twice")
	require.True(t, ok)
	e := noDebugger()
	assert.Equal(t, StatusSuccess, e.Run(1, tc).Status)
}

func TestFilterBySubstring(t *testing.T) {
	reg := filterFixture()
	names, warnings := reg.Filter([]string{"String"})
	assert.Equal(t, []string{"testStringRepr"}, names)
	assert.Empty(t, warnings)
}

func TestFilterByInitialism(t *testing.T) {
	reg := filterFixture()
	names, warnings := reg.Filter([]string{"tSR"})
	assert.Equal(t, []string{"testStringRepr"}, names)
	assert.Empty(t, warnings)
}

func TestFilterWarnsOnMiss(t *testing.T) {
	reg := filterFixture()
	names, warnings := reg.Filter([]string{"nonesuch"})
	assert.Equal(t, []string{"testMatchers", "testStringRepr", "testUnitTest"}, names)
	require.Len(t, warnings, 1)
	assert.Equal(t,
		"Warning: No matching test found for input specification nonesuch", warnings[0])
}

func TestFilterNoTokensSelectsAllSorted(t *testing.T) {
	reg := filterFixture()
	names, warnings := reg.Filter(nil)
	assert.Equal(t, []string{"testMatchers", "testStringRepr", "testUnitTest"}, names)
	assert.Empty(t, warnings)
}

func TestFilterDeduplicates(t *testing.T) {
	reg := filterFixture()
	names, _ := reg.Filter([]string{"test", "String"})
	assert.Equal(t, []string{"testMatchers", "testStringRepr", "testUnitTest"}, names)
}

func filterFixture() *Registry {
	reg := NewRegistry(log.New(&bytes.Buffer{}, "", 0))
	for _, name := range []string{"testStringRepr", "testUnitTest", "testMatchers"} {
		reg.Register(name, 0, func(t *T) {})
	}
	return reg
}

func TestStatsBuckets(t *testing.T) {
	var s Stats
	s.Observe(Outcome{Name: "a", Status: StatusSuccess})
	s.Observe(Outcome{Name: "b", Status: StatusFailure})
	s.Observe(Outcome{Name: "c", Status: StatusTimeout})
	s.Observe(Outcome{Name: "d", Status: StatusError})

	assert.Equal(t, 1, s.Successes)
	assert.Equal(t, 2, s.Failures)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 4, s.Total())
	assert.Equal(t, []string{"b", "c", "d"}, s.FailedNames())
	assert.InDelta(t, 25.0, s.SuccessRate(), 0.0001)
}

func TestStatsEmptyRunRatesFull(t *testing.T) {
	var s Stats
	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 100.0, s.SuccessRate())
}
