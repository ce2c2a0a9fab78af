package match

import "reflect"

// pointerLikeNil reports whether v is nil through any pointer-like kind.
func pointerLikeNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

type isNil struct{}

// IsNil matches nil pointer-like values.
func IsNil() Matcher { return isNil{} }

func (isNil) String() string { return "isNull()" }

func (isNil) Match(actual any) Result {
	return Result{Passed: pointerLikeNil(actual)}
}

type isNotNil struct{}

// IsNotNil matches non-nil pointer-like values.
func IsNotNil() Matcher { return isNotNil{} }

func (isNotNil) String() string { return "isNotNull()" }

func (isNotNil) Match(actual any) Result {
	return Result{Passed: !pointerLikeNil(actual)}
}
