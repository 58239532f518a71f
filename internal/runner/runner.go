// Package runner drives the line-mode reporting loop: establish a baseline,
// poll at a fixed interval, print one report block per tick, stop when both
// tracked counts reach zero.
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dm/ceph-eta/internal/engine"
	"github.com/dm/ceph-eta/internal/format"
	"github.com/dm/ceph-eta/internal/localtime"
	"github.com/dm/ceph-eta/internal/model"
	"github.com/dm/ceph-eta/internal/status"
)

var separator = strings.Repeat("-", 60)

// Runner owns the run state for one monitoring session. Reports go to Out;
// diagnostics go through Log so they never interleave with the report
// stream.
type Runner struct {
	Source   status.Source
	Conv     localtime.Converter
	Interval time.Duration
	Out      io.Writer
	Log      zerolog.Logger

	// Now is the clock used for elapsed-time measurement. Defaults to
	// time.Now; overridden in tests.
	Now func() time.Time

	prevAdvice string
}

// Run executes the full monitoring loop. It returns nil on completion or
// interrupt, and a non-nil error only when the initial status could not be
// obtained (the caller maps that to exit code 1). Mid-run fetch failures
// are logged and the tick skipped; the next interval retries.
func (r *Runner) Run(ctx context.Context) error {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprintf(r.Out, "Ceph Recovery Estimator. Checking status every %d seconds.\n", int(r.Interval.Seconds()))
	fmt.Fprintln(r.Out, "Fetching initial Ceph status...")

	baseline, err := r.Source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("could not get initial status: %w", err)
	}

	if baseline.Total == 0 && !baseline.Healthy() {
		r.Log.Warn().
			Int64("degraded", baseline.Degraded).
			Int64("misplaced", baseline.Misplaced).
			Msg("initial total objects is 0 but recovery work exists; percentage display will be misleading")
	}

	fmt.Fprintf(r.Out, "Initial state: Degraded: %d, Misplaced: %d, Total Objects: %d\n",
		baseline.Degraded, baseline.Misplaced, baseline.Total)

	if baseline.Healthy() {
		fmt.Fprintln(r.Out, "Cluster is healthy. No degraded or misplaced objects found initially. Exiting.")
		return nil
	}

	run := model.NewRunState(baseline, now())

	fmt.Fprintln(r.Out, "Starting estimation loop. Press Ctrl+C to stop.")
	fmt.Fprintln(r.Out, separator)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		// Cancellation is cooperative: checked between ticks only. A poll
		// already in flight finishes before the loop notices the interrupt.
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.Out, "\nMonitoring stopped by user.")
			return nil
		case <-ticker.C:
		}

		snap, err := r.Source.Fetch(ctx)
		if err != nil {
			r.Log.Error().Err(err).Msg("failed to fetch status, retrying next interval")
			continue
		}

		report := engine.BuildReport(run, snap, now(), r.Conv, r.Log)
		r.printReport(report, run)
		r.logAdvice(run, report)

		if report.Done() {
			fmt.Fprintln(r.Out, "Recovery complete: 0 degraded and 0 misplaced objects.")
			return nil
		}
	}
}

// printReport emits one fixed-format report block. The denominator is the
// frozen baseline total for every tick of the run.
func (r *Runner) printReport(report model.Report, run model.RunState) {
	fmt.Fprintf(r.Out, "[%s]\n", report.Timestamp.Format(localtime.Layout))
	fmt.Fprintf(r.Out, "  Degraded : %7d / %-7d (%6.2f%%) ETA: %s (at %s)\n",
		report.Degraded.Current, run.Baseline.Total, report.Degraded.Percent,
		format.ETA(report.Degraded.ETASeconds), report.Degraded.Completion)
	fmt.Fprintf(r.Out, "  Misplaced: %7d / %-7d (%6.2f%%) ETA: %s (at %s)\n",
		report.Misplaced.Current, run.Baseline.Total, report.Misplaced.Percent,
		format.ETA(report.Misplaced.ETASeconds), report.Misplaced.Completion)
	fmt.Fprintln(r.Out, separator)
}

// logAdvice logs derived observations, but only when the set changed since
// the previous tick — a drift notice repeated every 5 seconds is noise.
func (r *Runner) logAdvice(run model.RunState, report model.Report) {
	advice := engine.CalcAdvice(run, report)

	var titles []string
	for _, a := range advice {
		titles = append(titles, a.Title)
	}
	key := strings.Join(titles, "|")
	if key == r.prevAdvice {
		return
	}
	r.prevAdvice = key

	for _, a := range advice {
		ev := r.Log.Info()
		if a.Severity == model.AdviceWarning {
			ev = r.Log.Warn()
		}
		ev.Str("advice", a.Title).Msg(a.Detail)
	}
}
