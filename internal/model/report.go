package model

import (
	"math"
	"time"
)

// MetricReport holds the per-tick derived values for a single tracked
// metric (degraded or misplaced objects).
type MetricReport struct {
	// Current is the count from the latest snapshot.
	Current int64
	// Percent is Current as a percentage of the frozen baseline total;
	// 0 when the baseline total was 0 (division guarded).
	Percent float64
	// ETASeconds is the estimated remaining time. 0 means complete,
	// +Inf means no progress (or regression) since the baseline.
	ETASeconds float64
	// Completion is the projected local wall-clock completion time,
	// or "N/A" when ETASeconds is infinite.
	Completion string
}

// Complete reports whether the metric has reached zero.
func (m MetricReport) Complete() bool {
	return m.Current == 0
}

// Stalled reports whether the metric still has work outstanding but no
// finite ETA could be derived.
func (m MetricReport) Stalled() bool {
	return m.Current > 0 && math.IsInf(m.ETASeconds, 1)
}

// Report is the full derived state for one polling tick.
type Report struct {
	Timestamp time.Time
	Snapshot  Snapshot
	Degraded  MetricReport
	Misplaced MetricReport
}

// Done reports whether recovery has finished: both tracked counts at zero.
func (r Report) Done() bool {
	return r.Snapshot.Healthy()
}
