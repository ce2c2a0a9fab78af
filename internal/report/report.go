// Package report renders run transcripts: a TAP-style stream, a plain
// per-test listing with a one-line summary, and a machine-readable JSON
// summary for CI consumption.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/unittap/unittap/internal/harness"
)

// Style selects the transcript format.
type Style int

const (
	// StyleTAP emits a plan line, ok/not ok result lines, and
	// comment-prefixed diagnostics.
	StyleTAP Style = iota
	// StylePlain emits one status line per test and a bare summary line.
	StylePlain
)

// Reporter accumulates nothing itself; it renders outcomes and statistics to
// its writer as they arrive.
type Reporter struct {
	w     io.Writer
	style Style

	// DiagnosticsFirst prints a test's diagnostic block before its result
	// line rather than after. TAP consumers differ on which they expect.
	DiagnosticsFirst bool
}

// New returns a reporter writing transcripts in the given style.
// Diagnostics print before result lines by default.
func New(w io.Writer, style Style) *Reporter {
	return &Reporter{w: w, style: style, DiagnosticsFirst: true}
}

// Plan emits the TAP plan line for n tests. A no-op in plain style.
func (r *Reporter) Plan(n int) {
	if r.style == StyleTAP {
		fmt.Fprintf(r.w, "1..%d\n", n)
	}
}

// Warning emits a non-fatal notice, comment-prefixed in TAP style.
func (r *Reporter) Warning(text string) {
	if r.style == StyleTAP {
		fmt.Fprintln(r.w, Comment(text))
		return
	}
	fmt.Fprintln(r.w, text)
}

// Outcome renders one test's result line and, when present, its diagnostic
// block. Every line of a multi-line diagnostic is individually prefixed in
// TAP style.
func (r *Reporter) Outcome(o harness.Outcome) {
	if r.style == StylePlain {
		fmt.Fprintf(r.w, "%s: %s\n", o.Name, plainStatus(o.Status))
		if o.Diagnostic != "" {
			fmt.Fprintln(r.w, o.Diagnostic)
		}
		return
	}

	result := fmt.Sprintf("%s %d - %s", okWord(o.Status), o.Ordinal, o.Name)
	if o.Diagnostic == "" {
		fmt.Fprintln(r.w, result)
		return
	}
	diag := Comment(o.Diagnostic)
	if r.DiagnosticsFirst {
		fmt.Fprintln(r.w, diag)
		fmt.Fprintln(r.w, result)
	} else {
		fmt.Fprintln(r.w, result)
		fmt.Fprintln(r.w, diag)
	}
}

// Summary emits the one-line run summary with the success percentage to one
// decimal place.
func (r *Reporter) Summary(st *harness.Stats) {
	line := fmt.Sprintf("UnitTest: passed %d out of %d tests, for a success rate of %.1f%%",
		st.Successes, st.Total(), st.SuccessRate())
	if r.style == StyleTAP {
		line = Comment(line)
	}
	fmt.Fprintln(r.w, line)
}

// FailedList emits the trailing block naming every failed test and the final
// failure-count line. Nothing is emitted for a clean run.
func (r *Reporter) FailedList(st *harness.Stats) {
	failed := st.FailedNames()
	if len(failed) == 0 {
		return
	}
	for _, name := range failed {
		r.Warning(name)
	}
	r.Warning(fmt.Sprintf("%d FAILED TESTS", len(failed)))
}

func okWord(s harness.Status) string {
	if s == harness.StatusSuccess {
		return "ok"
	}
	return "not ok"
}

func plainStatus(s harness.Status) string {
	switch s {
	case harness.StatusSuccess:
		return "OK"
	case harness.StatusFailure:
		return "failed"
	case harness.StatusError:
		return "halted"
	case harness.StatusTimeout:
		return "timed out"
	default:
		return s.String()
	}
}

// Comment prefixes every line of commentary with "# ", leaving lines that
// already carry the prefix untouched.
func Comment(commentary string) string {
	const prefix = "# "
	lines := strings.Split(commentary, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
