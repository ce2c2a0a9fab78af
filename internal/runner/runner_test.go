package runner

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unittap/unittap/internal/harness"
	"github.com/unittap/unittap/internal/match"
	"github.com/unittap/unittap/internal/report"
)

func demoRegistry() *harness.Registry {
	reg := harness.NewRegistry(log.New(&bytes.Buffer{}, "", 0))
	reg.Register("testAddition", 0, func(t *harness.T) {
		match.Equal(1+2, 3)
	})
	reg.Register("testBroken", 0, func(t *harness.T) {
		match.That(6, match.Is(5))
	})
	reg.Register("testExpected", 0, func(t *harness.T) {
		t.ExpectFailure()
		match.Fail()
	})
	return reg
}

func TestRunFullSuite(t *testing.T) {
	var out bytes.Buffer
	r := New(demoRegistry(), Options{Style: report.StyleTAP, Out: &out})
	stats := r.Run(context.Background())

	assert.Equal(t, 3, stats.Total())
	assert.Equal(t, 2, stats.Successes)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, []string{"testBroken"}, stats.FailedNames())

	text := out.String()
	assert.Contains(t, text, "1..3\n")
	assert.Contains(t, text, "ok 1 - testAddition")
	assert.Contains(t, text, "not ok 2 - testBroken")
	assert.Contains(t, text, "ok 3 - testExpected")
	assert.Contains(t, text, "# 1 FAILED TESTS")
	assert.Contains(t, text, "success rate of 66.7%")
}

func TestRunFilterSelectsSubset(t *testing.T) {
	var out bytes.Buffer
	r := New(demoRegistry(), Options{
		Filters: []string{"Addition"},
		Style:   report.StyleTAP,
		Out:     &out,
	})
	stats := r.Run(context.Background())

	assert.Equal(t, 1, stats.Total())
	assert.Contains(t, out.String(), "1..1\n")
	assert.Contains(t, out.String(), "ok 1 - testAddition")
	assert.NotContains(t, out.String(), "testBroken")
}

func TestRunWarnsOnUnmatchedFilter(t *testing.T) {
	var out bytes.Buffer
	r := New(demoRegistry(), Options{
		Filters: []string{"nonesuch"},
		Style:   report.StylePlain,
		Out:     &out,
	})
	stats := r.Run(context.Background())

	// An unmatched filter still runs everything.
	assert.Equal(t, 3, stats.Total())
	assert.Contains(t, out.String(),
		"Warning: No matching test found for input specification nonesuch")
}

func TestRunWritesJSONSummary(t *testing.T) {
	path := t.TempDir() + "/summary.json"
	var out bytes.Buffer
	r := New(demoRegistry(), Options{
		Style:       report.StylePlain,
		SummaryJSON: path,
		Out:         &out,
	})
	r.Run(context.Background())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"total": 3`)
	assert.Contains(t, string(b), `"testBroken"`)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	r := New(demoRegistry(), Options{Style: report.StylePlain, Out: &out})
	stats := r.Run(ctx)
	assert.Equal(t, 0, stats.Total())
}

func TestWatchRerunsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := New(demoRegistry(), Options{Style: report.StylePlain, Out: &out})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := r.Watch(ctx, []string{dir})
		assert.NoError(t, err)
	}()

	// Let the initial run finish, then touch a file and wait out the
	// debounce before stopping the watcher.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(dir+"/probe.txt", []byte("x"), 0o644))
	time.Sleep(2 * debounce)
	cancel()
	<-done

	first := bytes.Index(out.Bytes(), []byte("UnitTest: passed"))
	second := bytes.LastIndex(out.Bytes(), []byte("UnitTest: passed"))
	assert.Greater(t, second, first, "expected a rerun after the file change")
}
