package match

import (
	"cmp"

	"github.com/unittap/unittap/internal/repr"
)

// Number covers every built-in numeric type, for matchers that need
// arithmetic on the expectation.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func typeMismatch(actual any, want any) Result {
	return Result{
		Passed: false,
		FailNarrative: "Expected: " + repr.Render(want) +
			"\n\tObserved: " + repr.Render(actual) + " (of a different type)",
	}
}

type equalTo[T comparable] struct{ want T }

// Is matches values equal to want.
func Is[T comparable](want T) Matcher { return equalTo[T]{want} }

// IsEqualTo is a synonym for Is.
func IsEqualTo[T comparable](want T) Matcher { return equalTo[T]{want} }

func (m equalTo[T]) String() string { return "is(" + repr.Render(m.want) + ")" }

func (m equalTo[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return typeMismatch(actual, m.want)
	}
	return Result{
		Passed:        a == m.want,
		PassNarrative: "Both values were: " + repr.Render(a),
		FailNarrative: "Expected: " + repr.Render(m.want) + "\n\tObserved: " + repr.Render(a),
	}
}

type notEqualTo[T comparable] struct{ want T }

// IsNot matches values different from want.
func IsNot[T comparable](want T) Matcher { return notEqualTo[T]{want} }

// IsNotEqualTo is a synonym for IsNot.
func IsNotEqualTo[T comparable](want T) Matcher { return notEqualTo[T]{want} }

func (m notEqualTo[T]) String() string { return "isNot(" + repr.Render(m.want) + ")" }

func (m notEqualTo[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return Result{Passed: true, PassNarrative: "Values differ in type"}
	}
	return Result{
		Passed:        a != m.want,
		PassNarrative: "Expected: " + repr.Render(m.want) + "\n\tObserved: " + repr.Render(a),
		FailNarrative: "Both values were: " + repr.Render(a),
	}
}

type lessThan[T cmp.Ordered] struct{ want T }

// IsLessThan matches values strictly below want.
func IsLessThan[T cmp.Ordered](want T) Matcher { return lessThan[T]{want} }

func (m lessThan[T]) String() string { return "isLessThan(" + repr.Render(m.want) + ")" }

func (m lessThan[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return typeMismatch(actual, m.want)
	}
	left, right := repr.Render(a), repr.Render(m.want)
	return Result{
		Passed:        a < m.want,
		PassNarrative: left + " is less than " + right,
		FailNarrative: left + " is not less than " + right,
	}
}

type greaterThan[T cmp.Ordered] struct{ want T }

// IsGreaterThan matches values strictly above want.
func IsGreaterThan[T cmp.Ordered](want T) Matcher { return greaterThan[T]{want} }

func (m greaterThan[T]) String() string { return "isGreaterThan(" + repr.Render(m.want) + ")" }

func (m greaterThan[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return typeMismatch(actual, m.want)
	}
	left, right := repr.Render(a), repr.Render(m.want)
	return Result{
		Passed:        a > m.want,
		PassNarrative: left + " is greater than " + right,
		FailNarrative: left + " is not greater than " + right,
	}
}

type atMost[T cmp.Ordered] struct{ want T }

// IsAtMost matches values less than or equal to want.
func IsAtMost[T cmp.Ordered](want T) Matcher { return atMost[T]{want} }

func (m atMost[T]) String() string { return "isLessThanOrEqualTo(" + repr.Render(m.want) + ")" }

func (m atMost[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return typeMismatch(actual, m.want)
	}
	left, right := repr.Render(a), repr.Render(m.want)
	return Result{
		Passed:        a <= m.want,
		PassNarrative: left + " is less than or equal to " + right,
		FailNarrative: left + " is greater than " + right,
	}
}

type atLeast[T cmp.Ordered] struct{ want T }

// IsAtLeast matches values greater than or equal to want.
func IsAtLeast[T cmp.Ordered](want T) Matcher { return atLeast[T]{want} }

func (m atLeast[T]) String() string { return "isGreaterThanOrEqualTo(" + repr.Render(m.want) + ")" }

func (m atLeast[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return typeMismatch(actual, m.want)
	}
	left, right := repr.Render(a), repr.Render(m.want)
	return Result{
		Passed:        a >= m.want,
		PassNarrative: left + " is greater than or equal to " + right,
		FailNarrative: left + " is less than " + right,
	}
}

type approximately[T Number] struct{ target, delta T }

// IsApproximately matches values within delta of target, inclusive at both
// bounds: a value exactly at target-delta or target+delta passes.
func IsApproximately[T Number](target, delta T) Matcher {
	return approximately[T]{target: target, delta: delta}
}

func (m approximately[T]) String() string {
	return "isApproximately(" + repr.Render(m.target) + ", " + repr.Render(m.delta) + ")"
}

func (m approximately[T]) Match(actual any) Result {
	a, ok := actual.(T)
	if !ok {
		return typeMismatch(actual, m.target)
	}
	lo, hi := m.target-m.delta, m.target+m.delta
	left := repr.Render(a)
	pass := left + " is between " + repr.Render(lo) + " and " + repr.Render(hi)
	if a < lo || a > hi {
		return Result{
			Passed:        false,
			PassNarrative: pass,
			FailNarrative: left + " is outside the range " + repr.Render(lo) + " .. " + repr.Render(hi),
		}
	}
	return Result{Passed: true, PassNarrative: pass}
}

type oneOf[T comparable] struct{ choices []T }

// IsOneOf matches values equal to any one of the given alternatives.
func IsOneOf[T comparable](choices ...T) Matcher { return oneOf[T]{choices} }

func (m oneOf[T]) String() string {
	return "isOneOf(" + repr.Render(m.choices) + ")"
}

func (m oneOf[T]) Match(actual any) Result {
	left, right := repr.Render(actual), repr.Render(m.choices)
	found := "Found " + left + " in " + right
	notFound := "Could not find " + left + " in " + right
	a, ok := actual.(T)
	if !ok {
		return Result{Passed: false, PassNarrative: found, FailNarrative: notFound}
	}
	for _, c := range m.choices {
		if a == c {
			return Result{Passed: true, PassNarrative: found, FailNarrative: notFound}
		}
	}
	return Result{Passed: false, PassNarrative: found, FailNarrative: notFound}
}
