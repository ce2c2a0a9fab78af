// Package match provides composable matchers and the assertion entry point
// used inside test bodies. A Matcher evaluates one value into a Result; the
// That/Check entry points raise a structured *Failure when a Result did not
// pass, which the execution engine recovers and classifies.
package match

import (
	"fmt"
	"runtime"

	"github.com/unittap/unittap/internal/debugger"
	"github.com/unittap/unittap/internal/repr"
)

// Result is the verdict of one matcher evaluation. The narratives are
// advisory text only; nothing may branch on their contents.
type Result struct {
	Passed        bool
	PassNarrative string
	FailNarrative string
}

// Matcher evaluates a value against an expectation. String describes the
// expectation for use in the rendered assertion expression.
type Matcher interface {
	Match(actual any) Result
	String() string
}

// Failure is raised (via panic) by a failing assertion and recovered by the
// execution engine, which classifies the enclosing test as Failed.
type Failure struct {
	Expr      string // rendered assertion expression
	Narrative string // matcher's failure narrative, may be empty
	File      string
	Line      int
}

// Error renders the failure as "file:line: \texpr" with the narrative, when
// present, indented on the following line.
func (f *Failure) Error() string {
	text := f.Expr
	if f.Narrative != "" {
		text += "\n\t" + f.Narrative
	}
	return fmt.Sprintf("%s:%d: \t%s", f.File, f.Line, text)
}

// Location returns the assertion's source position as file:line.
func (f *Failure) Location() string {
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

// That evaluates actual against m and raises a *Failure if the verdict did
// not pass. The rendered expression combines the rendered value with the
// matcher's description.
func That(actual any, m Matcher) {
	expr := "assertThat(" + repr.Render(actual) + ", " + m.String() + ")"
	raise(m.Match(actual), expr, 2)
}

// Check is the raw assertion entry point: no effect when result passed,
// otherwise it raises a *Failure composed from expr and the fail narrative.
func Check(result Result, expr string) {
	raise(result, expr, 2)
}

func raise(result Result, expr string, skip int) {
	if result.Passed {
		return
	}
	if debugger.Attached() {
		// A test assertion has failed. Examine the expression and your
		// call stack for information.
		debugger.Break()
	}
	file, line := caller(skip + 1)
	panic(&Failure{Expr: expr, Narrative: result.FailNarrative, File: file, Line: line})
}

func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

// Old-style boolean assertions, defined over the same matchers and entry
// point so their diagnostics are uniform with That.

// True asserts that cond is true.
func True(cond bool) {
	raise(Is(true).Match(cond), "assertTrue("+repr.Render(cond)+")", 2)
}

// False asserts that cond is false.
func False(cond bool) {
	raise(Is(false).Match(cond), "assertFalse("+repr.Render(cond)+")", 2)
}

// Equal asserts that got equals want.
func Equal[T comparable](got, want T) {
	raise(Is(want).Match(got), "assertEqual("+repr.Render(got)+", "+repr.Render(want)+")", 2)
}

// NotEqual asserts that got differs from want.
func NotEqual[T comparable](got, want T) {
	raise(IsNot(want).Match(got), "assertNotEqual("+repr.Render(got)+", "+repr.Render(want)+")", 2)
}

// Nil asserts that v is a nil pointer-like value.
func Nil(v any) {
	raise(IsNil().Match(v), "assertNull("+repr.Render(v)+")", 2)
}

// NotNil asserts that v is a non-nil pointer-like value.
func NotNil(v any) {
	raise(IsNotNil().Match(v), "assertNotNull("+repr.Render(v)+")", 2)
}

// Succeed is the always-passing assertion.
func Succeed() {
	raise(Result{Passed: true}, "succeed", 2)
}

// Fail is the always-failing assertion.
func Fail() {
	raise(Result{Passed: false}, "fail", 2)
}
