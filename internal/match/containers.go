package match

import (
	"reflect"
	"sort"

	"github.com/unittap/unittap/internal/repr"
)

// notFound is the sentinel position reported when a container search misses.
const notFound = -1

// seqElements extracts the ordered elements of a sequence-like value: a
// repr.Sequence, slice, or array. Maps are not sequences here; their order
// comes from findInContainer's sorted-key view instead.
func seqElements(v any) ([]any, bool) {
	if seq, ok := v.(repr.Sequence); ok {
		return seq.Elements(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return elems, true
	}
	return nil, false
}

// sortedMapKeys returns the map's keys ordered by rendered representation,
// matching the order repr uses to display map contents.
func sortedMapKeys(rv reflect.Value) []reflect.Value {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return repr.Render(keys[i].Interface()) < repr.Render(keys[j].Interface())
	})
	return keys
}

// findInContainer searches c for e and reports the ordinal position found,
// or the notFound sentinel. Maps use their keyed lookup (position taken from
// the sorted-key display order); sequences are scanned linearly in iteration
// order.
func findInContainer(c any, e any) int {
	rv := reflect.ValueOf(c)
	if rv.Kind() == reflect.Map {
		kv := reflect.ValueOf(e)
		if !kv.IsValid() || kv.Type() != rv.Type().Key() {
			return notFound
		}
		if !rv.MapIndex(kv).IsValid() {
			return notFound
		}
		for i, k := range sortedMapKeys(rv) {
			if reflect.DeepEqual(k.Interface(), e) {
				return i
			}
		}
		return notFound
	}
	elems, ok := seqElements(c)
	if !ok {
		return notFound
	}
	for i, el := range elems {
		if reflect.DeepEqual(el, e) {
			return i
		}
	}
	return notFound
}

type hasItem struct{ want any }

// HasItem matches containers holding the given element. Associative
// containers are probed via keyed lookup; sequences via linear scan.
func HasItem(e any) Matcher { return hasItem{e} }

// HasKey is a synonym for HasItem, reading better against maps and sets.
func HasKey(e any) Matcher { return hasItem{e} }

func (m hasItem) String() string { return "hasItem(" + repr.Render(m.want) + ")" }

func (m hasItem) Match(actual any) Result {
	cStr, eStr := repr.Render(actual), repr.Render(m.want)
	pos := findInContainer(actual, m.want)
	return Result{
		Passed:        pos != notFound,
		PassNarrative: "Found " + eStr + " in position " + repr.Render(pos) + " of " + cStr,
		FailNarrative: "Could not find " + eStr + " in " + cStr,
	}
}

type hasItems struct{ want []any }

// HasItems matches containers holding every one of the given elements, in
// any order. The failure narrative names the first missing element.
func HasItems(es ...any) Matcher { return hasItems{es} }

// HasKeys is a synonym for HasItems.
func HasKeys(es ...any) Matcher { return hasItems{es} }

func (m hasItems) String() string { return "hasItems(" + repr.Render(m.want) + ")" }

func (m hasItems) Match(actual any) Result {
	cStr := repr.Render(actual)
	foundAll := "Found all of " + repr.Render(m.want) + " in " + cStr
	for _, e := range m.want {
		if findInContainer(actual, e) == notFound {
			return Result{
				Passed:        false,
				PassNarrative: foundAll,
				FailNarrative: "Did not find " + repr.Render(e) + " in " + cStr,
			}
		}
	}
	return Result{Passed: true, PassNarrative: foundAll}
}

type hasEntry struct{ key, value any }

// HasEntry matches maps holding the given key with the given associated
// value.
func HasEntry(key, value any) Matcher { return hasEntry{key, value} }

func (m hasEntry) String() string {
	return "hasEntry(" + repr.Render(m.key) + ", " + repr.Render(m.value) + ")"
}

func (m hasEntry) Match(actual any) Result {
	cStr := repr.Render(actual)
	entryStr := "<" + repr.Render(m.key) + ", " + repr.Render(m.value) + ">"
	rv := reflect.ValueOf(actual)
	if rv.Kind() != reflect.Map {
		return Result{
			Passed:        false,
			FailNarrative: "Could not find " + entryStr + " in " + cStr,
		}
	}
	kv := reflect.ValueOf(m.key)
	if !kv.IsValid() || kv.Type() != rv.Type().Key() {
		return Result{
			Passed:        false,
			FailNarrative: "Could not find " + repr.Render(m.key) + " in " + cStr,
		}
	}
	got := rv.MapIndex(kv)
	if !got.IsValid() {
		return Result{
			Passed:        false,
			FailNarrative: "Could not find " + repr.Render(m.key) + " in " + cStr,
		}
	}
	return Result{
		Passed:        reflect.DeepEqual(got.Interface(), m.value),
		PassNarrative: "Found " + entryStr + " in " + cStr,
		FailNarrative: "Could not find " + entryStr + " in " + cStr,
	}
}

type in struct{ container any }

// In matches elements present in the given container, using its keyed
// lookup when it has one.
func In(container any) Matcher { return in{container} }

func (m in) String() string { return "isIn(" + repr.Render(m.container) + ")" }

func (m in) Match(actual any) Result {
	cStr, eStr := repr.Render(m.container), repr.Render(actual)
	pos := findInContainer(m.container, actual)
	return Result{
		Passed:        pos != notFound,
		PassNarrative: "Found " + eStr + " in position " + repr.Render(pos) + " of " + cStr,
		FailNarrative: "Could not find " + eStr + " in " + cStr,
	}
}

type inRange struct{ seq any }

// InRange matches elements present in the given sequence, always by linear
// scan in iteration order.
func InRange(seq any) Matcher { return inRange{seq} }

func (m inRange) String() string { return "isInRange(" + repr.Render(m.seq) + ")" }

func (m inRange) Match(actual any) Result {
	eStr := repr.Render(actual)
	elems, _ := seqElements(m.seq)
	for i, el := range elems {
		if reflect.DeepEqual(el, actual) {
			return Result{
				Passed: true,
				PassNarrative: "Found " + eStr + " in range, " + repr.Render(i) +
					" steps from the start",
			}
		}
	}
	return Result{
		Passed:        false,
		FailNarrative: "Could not find " + eStr + " in the range",
	}
}

type matchesSeq struct{ expected any }

// Matches matches a sequence element-wise against the expected sequence:
// differing lengths fail fast reporting both lengths, otherwise the first
// mismatching position is reported.
func Matches(expected any) Matcher { return matchesSeq{expected} }

func (m matchesSeq) String() string { return "matches(" + repr.Render(m.expected) + ")" }

func (m matchesSeq) Match(actual any) Result {
	want, ok := seqElements(m.expected)
	if !ok {
		return Result{Passed: false, FailNarrative: "Expected value is not a sequence"}
	}
	got, ok := seqElements(actual)
	if !ok {
		return Result{Passed: false, FailNarrative: "Observed value is not a sequence"}
	}
	if len(got) != len(want) {
		return Result{
			Passed: false,
			FailNarrative: "Ranges are of different length (" + repr.Render(len(got)) +
				" and " + repr.Render(len(want)) + ")",
		}
	}
	for i := range got {
		if !reflect.DeepEqual(got[i], want[i]) {
			return Result{
				Passed: false,
				FailNarrative: "In position " + repr.Render(i) + ", " +
					repr.Render(got[i]) + " != " + repr.Render(want[i]),
			}
		}
	}
	return Result{Passed: true, PassNarrative: "All corresponding elements were equal."}
}
