package match

import "strings"

type not struct{ inner Matcher }

// Not inverts a matcher's verdict and swaps its pass/fail narratives.
func Not(m Matcher) Matcher { return not{m} }

func (m not) String() string { return "!(" + m.inner.String() + ")" }

func (m not) Match(actual any) Result {
	r := m.inner.Match(actual)
	return Result{
		Passed:        !r.Passed,
		PassNarrative: r.FailNarrative,
		FailNarrative: r.PassNarrative,
	}
}

type allOf struct{ matchers []Matcher }

// AllOf passes when every sub-matcher passes, short-circuiting at the first
// failure and surfacing its fail narrative. With no sub-matchers it passes
// vacuously.
func AllOf(ms ...Matcher) Matcher { return allOf{ms} }

func (m allOf) String() string { return "allOf(" + describeAll(m.matchers) + ")" }

func (m allOf) Match(actual any) Result {
	for _, sub := range m.matchers {
		if r := sub.Match(actual); !r.Passed {
			return Result{
				Passed:        false,
				PassNarrative: "All of the conditions were true",
				FailNarrative: r.FailNarrative,
			}
		}
	}
	return Result{Passed: true, PassNarrative: "All of the conditions were true"}
}

type anyOf struct{ matchers []Matcher }

// AnyOf passes when at least one sub-matcher passes, short-circuiting at the
// first success. With no sub-matchers it fails vacuously.
func AnyOf(ms ...Matcher) Matcher { return anyOf{ms} }

func (m anyOf) String() string { return "anyOf(" + describeAll(m.matchers) + ")" }

func (m anyOf) Match(actual any) Result {
	for _, sub := range m.matchers {
		if r := sub.Match(actual); r.Passed {
			return Result{
				Passed:        true,
				PassNarrative: r.PassNarrative,
				FailNarrative: "None of the conditions were true",
			}
		}
	}
	return Result{Passed: false, FailNarrative: "None of the conditions were true"}
}

func describeAll(ms []Matcher) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}
