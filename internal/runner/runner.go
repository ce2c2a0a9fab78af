// Package runner drives a full run: it resolves filter tokens against the
// registry, executes each selected test through the engine, and feeds the
// reporter and the run statistics.
package runner

import (
	"context"
	"io"
	"time"

	"github.com/unittap/unittap/internal/debugger"
	"github.com/unittap/unittap/internal/harness"
	"github.com/unittap/unittap/internal/report"
)

// Options configure one run.
type Options struct {
	// Filters are the positional CLI tokens; empty means run everything.
	Filters []string
	// Style selects the transcript format.
	Style report.Style
	// DiagnosticsAfter places diagnostic blocks after result lines.
	DiagnosticsAfter bool
	// SummaryJSON, when set, writes a machine-readable summary to this path.
	SummaryJSON string
	// Out receives the transcript.
	Out io.Writer
}

// Runner executes the selected subset of a registry's tests, strictly
// sequentially.
type Runner struct {
	reg    *harness.Registry
	engine harness.Engine
	opts   Options
}

// New returns a runner over reg.
func New(reg *harness.Registry, opts Options) *Runner {
	return &Runner{reg: reg, opts: opts}
}

// Run executes the selected tests once and returns the run statistics. The
// transcript, the failed-test block, and the summary line are written to
// opts.Out as the run proceeds. Run never fails the process: outcomes are
// informational.
func (r *Runner) Run(ctx context.Context) *harness.Stats {
	rep := report.New(r.opts.Out, r.opts.Style)
	rep.DiagnosticsFirst = !r.opts.DiagnosticsAfter

	names, warnings := r.reg.Filter(r.opts.Filters)
	rep.Plan(len(names))
	for _, w := range warnings {
		rep.Warning(w)
	}
	if debugger.Attached() {
		rep.Warning("Debugger detected -- test time limits will be ignored.")
	}

	stats := &harness.Stats{}
	outcomes := make([]harness.Outcome, 0, len(names))
	start := time.Now()
	for i, name := range names {
		if ctx.Err() != nil {
			break
		}
		tc, ok := r.reg.Lookup(name)
		if !ok {
			continue
		}
		o := r.engine.Run(i+1, tc)
		stats.Observe(o)
		outcomes = append(outcomes, o)
		rep.Outcome(o)
	}
	rep.FailedList(stats)
	rep.Summary(stats)

	if r.opts.SummaryJSON != "" {
		sm := report.BuildSummary(stats, outcomes, time.Since(start))
		if err := report.WriteSummaryJSON(r.opts.SummaryJSON, sm); err != nil {
			rep.Warning("could not write summary: " + err.Error())
		}
	}
	return stats
}
