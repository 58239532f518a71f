package engine

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dm/ceph-eta/internal/model"
)

func adviceTitles(advice []model.Advice) []string {
	titles := make([]string, 0, len(advice))
	for _, a := range advice {
		titles = append(titles, a.Title)
	}
	return titles
}

func TestCalcAdvice_NothingNoteworthy(t *testing.T) {
	run := makeRun(100, 50, 200)
	snap := model.Snapshot{Degraded: 40, Misplaced: 20, Total: 200}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	advice := CalcAdvice(run, report)
	assert.NotNil(t, advice)
	assert.Empty(t, advice)
}

func TestCalcAdvice_ZeroTotalInconsistency(t *testing.T) {
	run := makeRun(5, 0, 0)
	snap := model.Snapshot{Degraded: 5, Total: 0}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	advice := CalcAdvice(run, report)
	assert.Contains(t, adviceTitles(advice), "Total object count is 0")
}

func TestCalcAdvice_BothStalled(t *testing.T) {
	run := makeRun(100, 50, 200)
	snap := model.Snapshot{Degraded: 100, Misplaced: 50, Total: 200}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	advice := CalcAdvice(run, report)
	titles := adviceTitles(advice)
	assert.Contains(t, titles, "Recovery appears stalled")
	assert.NotContains(t, titles, "Degraded count not improving")
}

func TestCalcAdvice_SingleMetricStalled(t *testing.T) {
	run := makeRun(100, 50, 200)
	snap := model.Snapshot{Degraded: 100, Misplaced: 25, Total: 200}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	advice := CalcAdvice(run, report)
	titles := adviceTitles(advice)
	assert.Contains(t, titles, "Degraded count not improving")
	assert.NotContains(t, titles, "Recovery appears stalled")
}

func TestCalcAdvice_Regression(t *testing.T) {
	run := makeRun(100, 50, 200)
	snap := model.Snapshot{Degraded: 150, Misplaced: 25, Total: 200}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	advice := CalcAdvice(run, report)
	assert.Contains(t, adviceTitles(advice), "Degraded count rising")
	// The regressed metric also reads as stalled (infinite ETA).
	assert.True(t, math.IsInf(report.Degraded.ETASeconds, 1))
}

func TestCalcAdvice_TotalDrift(t *testing.T) {
	run := makeRun(100, 50, 200)
	snap := model.Snapshot{Degraded: 40, Misplaced: 20, Total: 500}
	report := BuildReport(run, snap, reportStart.Add(time.Minute), &mockConverter{}, zerolog.Nop())

	advice := CalcAdvice(run, report)
	assert.Contains(t, adviceTitles(advice), "Total object count drifted")
}
