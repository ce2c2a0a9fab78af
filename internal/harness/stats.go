package harness

import "slices"

// Stats aggregates outcomes as the run proceeds. Only the controlling
// context mutates it; it may be queried at any point, mid-run included.
type Stats struct {
	Successes int
	Failures  int
	Errors    int

	failedNames []string
}

// Observe folds one outcome into the counters. Timeouts count in the failure
// bucket; failures, errors, and timeouts all record the test's name.
func (s *Stats) Observe(o Outcome) {
	switch o.Status {
	case StatusSuccess:
		s.Successes++
	case StatusFailure, StatusTimeout:
		s.Failures++
		s.failedNames = append(s.failedNames, o.Name)
	case StatusError:
		s.Errors++
		s.failedNames = append(s.failedNames, o.Name)
	}
}

// Total reports how many tests have been observed.
func (s *Stats) Total() int { return s.Successes + s.Failures + s.Errors }

// FailedNames returns the names of non-successful tests in run order.
func (s *Stats) FailedNames() []string { return slices.Clone(s.failedNames) }

// SuccessRate reports the percentage of observed tests that succeeded.
// A run with no tests reports 100.
func (s *Stats) SuccessRate() float64 {
	total := s.Total()
	if total == 0 {
		return 100.0
	}
	return 100.0 * float64(s.Successes) / float64(total)
}
