package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricReport_Complete(t *testing.T) {
	assert.True(t, MetricReport{Current: 0}.Complete())
	assert.False(t, MetricReport{Current: 1}.Complete())
}

func TestMetricReport_Stalled(t *testing.T) {
	inf := math.Inf(1)
	assert.True(t, MetricReport{Current: 10, ETASeconds: inf}.Stalled())
	assert.False(t, MetricReport{Current: 10, ETASeconds: 30}.Stalled())
	// Zero outstanding work is complete, not stalled, whatever the ETA.
	assert.False(t, MetricReport{Current: 0, ETASeconds: inf}.Stalled())
}

func TestReport_Done(t *testing.T) {
	assert.True(t, Report{Snapshot: Snapshot{Total: 100}}.Done())
	assert.False(t, Report{Snapshot: Snapshot{Degraded: 1, Total: 100}}.Done())
	assert.False(t, Report{Snapshot: Snapshot{Misplaced: 2, Total: 100}}.Done())
}
