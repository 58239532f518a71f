package engine

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateRemaining(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name    string
		initial int64
		current int64
		elapsed time.Duration
		want    float64
	}{
		{"no progress", 100, 100, 10 * time.Second, inf},
		{"fully processed", 100, 0, 10 * time.Second, 0},
		{"half processed", 100, 50, 10 * time.Second, 10},
		{"zero elapsed guards divide by zero", 100, 50, 0, inf},
		{"zero elapsed any counts", 0, 0, 0, inf},
		{"regression", 100, 150, 10 * time.Second, inf},
		{"initially zero and still zero", 0, 0, 10 * time.Second, 0},
		{"slow progress", 1000, 999, 100 * time.Second, 99900},
		{"one object left", 10, 1, 9 * time.Second, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimateRemaining(tc.initial, tc.current, tc.elapsed)
			if math.IsInf(tc.want, 1) {
				assert.True(t, math.IsInf(got, 1), "want +Inf, got %v", got)
				return
			}
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestEstimateMetric(t *testing.T) {
	cases := []struct {
		name     string
		baseline int64
		current  int64
		elapsed  time.Duration
		wantInf  bool
		want     float64
	}{
		{"baseline positive delegates", 100, 50, 10 * time.Second, false, 10},
		{"baseline zero current zero is complete", 0, 0, 10 * time.Second, false, 0},
		{"baseline zero but count appeared mid-run", 0, 25, 10 * time.Second, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := estimateMetric(tc.baseline, tc.current, tc.elapsed)
			if tc.wantInf {
				assert.True(t, math.IsInf(got, 1))
				return
			}
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestPercentOf(t *testing.T) {
	cases := []struct {
		name  string
		count int64
		total int64
		want  float64
	}{
		{"normal", 50, 200, 25},
		{"zero count", 0, 200, 0},
		{"zero total guarded", 50, 0, 0},
		{"full", 200, 200, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, percentOf(tc.count, tc.total), 1e-9)
		})
	}
}
