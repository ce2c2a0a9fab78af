package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/unittap/unittap/internal/harness"
)

// Summary is the machine-readable aggregate of one run.
type Summary struct {
	Total       int         `json:"total"`
	Passed      int         `json:"passed"`
	Failed      int         `json:"failed"`
	Errors      int         `json:"errors"`
	DurationMs  int64       `json:"duration_ms"`
	FailedTests []string    `json:"failed_tests,omitempty"`
	Tests       []TestEntry `json:"tests"`
	Environment Environment `json:"environment"`
}

// TestEntry records one test's outcome.
type TestEntry struct {
	Name       string `json:"name"`
	Ordinal    int    `json:"ordinal"`
	Status     string `json:"status"`
	TimeMs     int64  `json:"time_ms"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Environment captures where the run happened.
type Environment struct {
	Platform     string `json:"platform"`
	Architecture string `json:"architecture"`
	Kernel       string `json:"kernel,omitempty"`
}

// BuildSummary assembles the JSON summary from the run's outcomes.
func BuildSummary(st *harness.Stats, outcomes []harness.Outcome, elapsed time.Duration) Summary {
	sm := Summary{
		Total:       st.Total(),
		Passed:      st.Successes,
		Failed:      st.Failures,
		Errors:      st.Errors,
		DurationMs:  elapsed.Milliseconds(),
		FailedTests: st.FailedNames(),
		Environment: currentEnvironment(),
	}
	for _, o := range outcomes {
		sm.Tests = append(sm.Tests, TestEntry{
			Name:       o.Name,
			Ordinal:    o.Ordinal,
			Status:     o.Status.String(),
			TimeMs:     o.Elapsed.Milliseconds(),
			Diagnostic: o.Diagnostic,
		})
	}
	return sm
}

// WriteSummaryJSON writes the summary to path, indented.
func WriteSummaryJSON(path string, sm Summary) error {
	b, err := json.MarshalIndent(sm, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
