package engine

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ceph-eta/internal/model"
)

var reportStart = time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

func makeRun(degraded, misplaced, total int64) model.RunState {
	return model.NewRunState(model.Snapshot{
		Degraded:  degraded,
		Misplaced: misplaced,
		Total:     total,
		FetchedAt: reportStart,
	}, reportStart)
}

func TestBuildReport_LinearProgress(t *testing.T) {
	run := makeRun(100, 40, 200)
	snap := model.Snapshot{Degraded: 50, Misplaced: 20, Total: 200}
	now := reportStart.Add(10 * time.Second)

	conv := &mockConverter{}
	report := BuildReport(run, snap, now, conv, zerolog.Nop())

	assert.Equal(t, now, report.Timestamp)
	assert.InDelta(t, 25.0, report.Degraded.Percent, 1e-9)
	assert.InDelta(t, 10.0, report.Misplaced.Percent, 1e-9)
	// Half of each baseline processed in 10s → 10s remaining for each.
	assert.InDelta(t, 10.0, report.Degraded.ETASeconds, 1e-9)
	assert.InDelta(t, 10.0, report.Misplaced.ETASeconds, 1e-9)

	// Projection: now + 10s, converted by the mock.
	assert.True(t, strings.HasSuffix(report.Degraded.Completion, " CET"), "got %q", report.Degraded.Completion)
	assert.Contains(t, report.Degraded.Completion, "10:00:20")
	assert.Equal(t, 2, conv.callCount())
	assert.False(t, report.Done())
}

func TestBuildReport_FrozenBaselineTotal(t *testing.T) {
	run := makeRun(100, 0, 200)
	// Later snapshot reports a drifted total; percentages must still use 200.
	snap := model.Snapshot{Degraded: 50, Misplaced: 0, Total: 900}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	assert.InDelta(t, 25.0, report.Degraded.Percent, 1e-9)
}

func TestBuildReport_NoProgressHasNoCompletion(t *testing.T) {
	run := makeRun(100, 0, 200)
	snap := model.Snapshot{Degraded: 100, Misplaced: 0, Total: 200}

	conv := &mockConverter{}
	report := BuildReport(run, snap, reportStart.Add(10*time.Second), conv, zerolog.Nop())

	assert.True(t, math.IsInf(report.Degraded.ETASeconds, 1))
	assert.Equal(t, "N/A", report.Degraded.Completion)
	// Misplaced baseline was 0 and stayed 0 → complete, projection of +0s.
	assert.Equal(t, 0.0, report.Misplaced.ETASeconds)
	require.NotEqual(t, "N/A", report.Misplaced.Completion)
	// Only the finite ETA reached the converter.
	assert.Equal(t, 1, conv.callCount())
}

func TestBuildReport_ConversionFailureFallsBackToUTC(t *testing.T) {
	run := makeRun(100, 0, 200)
	snap := model.Snapshot{Degraded: 0, Misplaced: 0, Total: 200}
	now := reportStart.Add(20 * time.Second)

	conv := &mockConverter{ToLocalFn: func(time.Time) (string, error) {
		return "", errMockConvert
	}}
	report := BuildReport(run, snap, now, conv, zerolog.Nop())

	assert.Equal(t, "2026-08-27 10:00:20 UTC", report.Degraded.Completion)
	assert.True(t, report.Done())
}

func TestBuildReport_ZeroElapsed(t *testing.T) {
	run := makeRun(100, 50, 200)
	snap := run.Baseline
	report := BuildReport(run, snap, reportStart, &mockConverter{}, zerolog.Nop())

	assert.True(t, math.IsInf(report.Degraded.ETASeconds, 1))
	assert.True(t, math.IsInf(report.Misplaced.ETASeconds, 1))
	assert.Equal(t, "N/A", report.Degraded.Completion)
	assert.Equal(t, "N/A", report.Misplaced.Completion)
}

func TestCompletionTime_AbsurdETAIsNotProjected(t *testing.T) {
	got := completionTime(&mockConverter{}, reportStart, float64(maxProjectableSeconds)+1, zerolog.Nop())
	assert.Equal(t, "N/A", got)
}
