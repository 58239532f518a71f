package engine

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dm/ceph-eta/internal/localtime"
	"github.com/dm/ceph-eta/internal/model"
)

// maxProjectableSeconds caps wall-clock projection at 100 years. A finite
// but absurd ETA (one object recovered over a long run) would overflow
// time.Duration; beyond this horizon the projection is meaningless anyway.
const maxProjectableSeconds = 100 * 365 * 24 * 3600

// BuildReport derives the full per-tick report from the latest snapshot.
//
// Elapsed time is measured from the run start, not from the previous tick,
// so the rate is an average over the whole run rather than an instantaneous
// one. Percentages use the frozen baseline total.
func BuildReport(run model.RunState, snap model.Snapshot, now time.Time, conv localtime.Converter, log zerolog.Logger) model.Report {
	elapsed := run.Elapsed(now)

	degraded := model.MetricReport{
		Current:    snap.Degraded,
		Percent:    percentOf(snap.Degraded, run.Baseline.Total),
		ETASeconds: estimateMetric(run.Baseline.Degraded, snap.Degraded, elapsed),
	}
	misplaced := model.MetricReport{
		Current:    snap.Misplaced,
		Percent:    percentOf(snap.Misplaced, run.Baseline.Total),
		ETASeconds: estimateMetric(run.Baseline.Misplaced, snap.Misplaced, elapsed),
	}

	// The two projections are independent date(1) invocations; run them
	// concurrently so a slow conversion does not double the tick latency.
	g := new(errgroup.Group)
	g.Go(func() error {
		degraded.Completion = completionTime(conv, now, degraded.ETASeconds, log)
		return nil
	})
	g.Go(func() error {
		misplaced.Completion = completionTime(conv, now, misplaced.ETASeconds, log)
		return nil
	})
	_ = g.Wait()

	return model.Report{
		Timestamp: now,
		Snapshot:  snap,
		Degraded:  degraded,
		Misplaced: misplaced,
	}
}

// completionTime projects now + etaSeconds onto the local wall clock.
// Infinite or negative ETAs have no completion time and render as "N/A";
// conversion failures fall back to the UTC value with a warning.
func completionTime(conv localtime.Converter, now time.Time, etaSeconds float64, log zerolog.Logger) string {
	if math.IsInf(etaSeconds, 1) || etaSeconds < 0 || etaSeconds > maxProjectableSeconds {
		return "N/A"
	}
	utc := now.UTC().Add(time.Duration(etaSeconds * float64(time.Second)))
	local, err := conv.ToLocal(utc)
	if err != nil {
		log.Warn().Err(err).Msg("local time conversion failed, falling back to UTC display")
		return localtime.Fallback(utc)
	}
	return local
}
