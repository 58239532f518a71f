package engine

import (
	"math"
	"time"
)

// EstimateRemaining extrapolates the remaining seconds until current
// reaches zero, assuming progress continues at the average rate observed
// since the baseline: rate = (initial - current) / elapsed.
//
// Returns +Inf when no estimate can be made:
//   - elapsed is zero (insufficient data, guards divide-by-zero)
//   - no progress, or the count regressed (never reported as negative time)
//
// Returns 0 when current is already zero.
func EstimateRemaining(initial, current int64, elapsed time.Duration) float64 {
	elapsedSec := elapsed.Seconds()
	if elapsedSec == 0 {
		return math.Inf(1)
	}

	processed := initial - current
	if processed <= 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1)
	}

	rate := float64(processed) / elapsedSec
	return float64(current) / rate
}

// estimateMetric applies the per-metric baseline rule before delegating to
// EstimateRemaining: a metric whose baseline count was zero has nothing to
// extrapolate from — it is trivially complete while the current count stays
// at zero, and unknowable if the count appears mid-run.
func estimateMetric(baseline, current int64, elapsed time.Duration) float64 {
	if baseline > 0 {
		return EstimateRemaining(baseline, current, elapsed)
	}
	if current == 0 {
		return 0
	}
	return math.Inf(1)
}

// percentOf returns count as a percentage of total, or 0 when total is 0.
// The zero-total case covers the upstream inconsistency of a status report
// carrying positive counts against an empty cluster.
func percentOf(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
