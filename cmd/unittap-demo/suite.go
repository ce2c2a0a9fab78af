package main

import (
	"time"

	"github.com/unittap/unittap/internal/calllog"
	"github.com/unittap/unittap/internal/harness"
	"github.com/unittap/unittap/internal/match"
	"github.com/unittap/unittap/internal/repr"
)

// stubGreeter is a hand-rolled stub whose methods record themselves in the
// call log so a test can verify the interaction afterwards.
type stubGreeter struct{ log *calllog.Log }

func (s *stubGreeter) Greet(name string) string {
	s.log.Record("Greet", name)
	return "hello, " + name
}

func (s *stubGreeter) Dismiss(name string, polite bool) {
	s.log.Record("Dismiss", name, polite)
}

// registerDemoSuite populates reg with the demonstration tests, including two
// deliberately failing ones flagged with ExpectFailure so the suite as a
// whole passes.
func registerDemoSuite(reg *harness.Registry) {
	reg.Register("testArithmetic", harness.DefaultTimeLimit, func(t *harness.T) {
		match.Equal(2+2, 4)
		match.That(7, match.IsGreaterThan(3))
		match.That(3.14, match.IsApproximately(3.0, 0.2))
	})

	reg.Register("testStringMatchers", harness.DefaultTimeLimit, func(t *harness.T) {
		match.That("unit testing", match.Contains("test"))
		match.That("unit testing", match.BeginsWith("unit"))
		match.That("unit testing", match.EndsWith("ing"))
	})

	reg.Register("testContainers", harness.DefaultTimeLimit, func(t *harness.T) {
		primes := []int{2, 3, 5, 7, 11}
		match.That(primes, match.HasItems(3, 7))
		match.That(5, match.In(primes))
		match.That(primes, match.Matches([]int{2, 3, 5, 7, 11}))

		ages := map[string]int{"ada": 36, "grace": 45}
		match.That(ages, match.HasKey("ada"))
		match.That(ages, match.HasEntry("grace", 45))
	})

	reg.Register("testCombinators", harness.DefaultTimeLimit, func(t *harness.T) {
		match.That(5, match.AllOf(match.IsGreaterThan(0), match.IsLessThan(10)))
		match.That("x", match.AnyOf(match.Is("x"), match.Is("y")))
		match.That(4, match.Not(match.Is(5)))
	})

	reg.Register("testCallLog", harness.DefaultTimeLimit, func(t *harness.T) {
		t.Log().Clear()
		greeter := &stubGreeter{log: t.Log()}
		match.Equal(greeter.Greet("world"), "hello, world")
		greeter.Dismiss("world", true)
		match.True(t.Log().Matches([]string{"Greet\t\"world\"", "Dismiss\t\"world\"\ttrue"}))
	})

	reg.Register("testPairRendering", harness.DefaultTimeLimit, func(t *harness.T) {
		match.Equal(repr.Render(repr.Pair{First: 1, Second: "one"}), `<1, "one">`)
		match.Equal(repr.Render([]int{}), "[]")
	})

	reg.Register("testDivideByZeroTrapped", harness.DefaultTimeLimit, func(t *harness.T) {
		t.ExpectFailure()
		divisor := len(t.Name()) - len(t.Name())
		match.Equal(1/divisor, 0)
	})

	reg.Register("testInfiniteLoopDetected", 200*time.Millisecond, func(t *harness.T) {
		t.ExpectFailure()
		select {} // never returns; the harness reports it, it does not kill it
	})
}
