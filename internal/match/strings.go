package match

import (
	"strings"

	"github.com/unittap/unittap/internal/repr"
)

func asString(actual any) (string, bool) {
	s, ok := actual.(string)
	return s, ok
}

type containsString struct{ sub string }

// Contains matches strings containing sub.
func Contains(sub string) Matcher { return containsString{sub} }

func (m containsString) String() string { return "contains(" + repr.Render(m.sub) + ")" }

func (m containsString) Match(actual any) Result {
	s, ok := asString(actual)
	if !ok {
		return typeMismatch(actual, m.sub)
	}
	pos := strings.Index(s, m.sub)
	return Result{
		Passed: pos >= 0,
		PassNarrative: "Found " + repr.Render(m.sub) + " starting in position " +
			repr.Render(pos) + " of " + repr.Render(s),
		FailNarrative: "Within " + repr.Render(s) + ", cannot find " + repr.Render(m.sub),
	}
}

type startsWith struct{ prefix string }

// StartsWith matches strings beginning with prefix.
func StartsWith(prefix string) Matcher { return startsWith{prefix} }

// BeginsWith is a synonym for StartsWith.
func BeginsWith(prefix string) Matcher { return startsWith{prefix} }

func (m startsWith) String() string { return "startsWith(" + repr.Render(m.prefix) + ")" }

func (m startsWith) Match(actual any) Result {
	s, ok := asString(actual)
	if !ok {
		return typeMismatch(actual, m.prefix)
	}
	left, right := repr.Render(s), repr.Render(m.prefix)
	return Result{
		Passed:        strings.HasPrefix(s, m.prefix),
		PassNarrative: left + " begins with " + right,
		FailNarrative: left + " does not begin with " + right,
	}
}

type endsWith struct{ suffix string }

// EndsWith matches strings ending with suffix.
func EndsWith(suffix string) Matcher { return endsWith{suffix} }

func (m endsWith) String() string { return "endsWith(" + repr.Render(m.suffix) + ")" }

func (m endsWith) Match(actual any) Result {
	s, ok := asString(actual)
	if !ok {
		return typeMismatch(actual, m.suffix)
	}
	left, right := repr.Render(s), repr.Render(m.suffix)
	return Result{
		Passed:        strings.HasSuffix(s, m.suffix),
		PassNarrative: left + " ends with " + right,
		FailNarrative: left + " does not end with " + right,
	}
}
