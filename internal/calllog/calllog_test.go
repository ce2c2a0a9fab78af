package calllog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordRendersAndTabJoins(t *testing.T) {
	l := New()
	l.Record("foo")
	l.Record("bar", 21)
	l.Record("baz", 22, true)
	l.Record("qux", "name", 'x', 1.5)

	assert.Equal(t, []string{
		"foo",
		"bar\t21",
		"baz\t22\ttrue",
		"qux\t\"name\"\t'x'\t1.5",
	}, l.Entries())
}

func TestContainsAndMatches(t *testing.T) {
	l := New()
	l.Record("open", 3)
	l.Record("close", 3)

	assert.True(t, l.Contains("open\t3"))
	assert.False(t, l.Contains("open\t4"))
	assert.True(t, l.Matches([]string{"open\t3", "close\t3"}))
	assert.False(t, l.Matches([]string{"close\t3", "open\t3"}))
	assert.Equal(t, 2, l.Len())
}

func TestClear(t *testing.T) {
	l := New()
	l.Record("something")
	l.Clear()
	assert.Zero(t, l.Len())
	assert.True(t, l.Matches(nil))
}

func TestDefaultLogIsShared(t *testing.T) {
	Clear()
	Record("ping", 1)
	assert.Equal(t, []string{"ping\t1"}, Entries())
	assert.Same(t, Default(), Default())
	Clear()
}
