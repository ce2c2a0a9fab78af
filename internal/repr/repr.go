// Package repr renders arbitrary values into the short debug strings used
// throughout assertion narratives and the call log.
//
// Rendering resolves in a strict three-tier order:
//
//  1. textual capability: registered custom renderers, the built-in overrides
//     (strings double-quoted, runes single-quoted, booleans as the words
//     true/false), numeric types, and fmt.Stringer;
//  2. iterable capability: slices, arrays, maps, and any value exposing
//     Elements() []any, rendered as [e1, e2, ...] with a display cap;
//  3. everything else renders as the opaque placeholder "???".
//
// Pair and Tuple values render as <first, second> and <e1, e2, ...>.
package repr

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// DisplayLimit caps how many elements of an iterable are rendered before the
// remainder is summarized by an omitted-element marker.
const DisplayLimit = 10

// Sequence is the iterable capability: a type that exposes its elements in
// order participates in tier-2 rendering (and in container matching).
type Sequence interface {
	Elements() []any
}

// Pair renders as <First, Second>.
type Pair struct {
	First  any
	Second any
}

// Tuple renders as <e1, e2, ...>; an empty Tuple renders as <>.
type Tuple []any

var (
	regMu     sync.RWMutex
	renderers = map[reflect.Type]func(any) string{}
)

// Register installs a custom renderer for T. Registered renderers take
// priority over every built-in rule, giving opaque types a textual capability.
func Register[T any](fn func(T) string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	regMu.Lock()
	renderers[t] = func(v any) string { return fn(v.(T)) }
	regMu.Unlock()
}

// Render produces the debug string for v.
func Render(v any) string {
	if v == nil {
		return "nil"
	}

	regMu.RLock()
	custom, ok := renderers[reflect.TypeOf(v)]
	regMu.RUnlock()
	if ok {
		return custom(v)
	}

	// Tier 1: textual capability, with built-in overrides.
	switch t := v.(type) {
	case string:
		return `"` + t + `"`
	case rune:
		return "'" + string(t) + "'"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case Pair:
		return "<" + Render(t.First) + ", " + Render(t.Second) + ">"
	case Tuple:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Render(e)
		}
		return "<" + strings.Join(parts, ", ") + ">"
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	}

	// Tier 2: iterable capability.
	if seq, ok := v.(Sequence); ok {
		return renderSeq(seq.Elements())
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return renderSeq(elems)
	case reflect.Map:
		return renderSeq(mapEntries(rv))
	}

	// Tier 3: no textual or iteration capability.
	return "???"
}

// mapEntries flattens a map into <key, value> pairs ordered by rendered key,
// so that map output is stable across runs.
func mapEntries(rv reflect.Value) []any {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return Render(keys[i].Interface()) < Render(keys[j].Interface())
	})
	entries := make([]any, len(keys))
	for i, k := range keys {
		entries[i] = Pair{First: k.Interface(), Second: rv.MapIndex(k).Interface()}
	}
	return entries
}

func renderSeq(elems []any) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i == DisplayLimit {
			fmt.Fprintf(&b, ", ... (%d additional elements) ...", len(elems)-DisplayLimit)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Render(e))
	}
	b.WriteByte(']')
	return b.String()
}
