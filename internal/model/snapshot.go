package model

import "time"

// Snapshot holds the object counts extracted from a single status poll.
// A snapshot is produced fresh on every poll and never mutated.
type Snapshot struct {
	// Degraded is the count of objects lacking their full replica count.
	Degraded int64
	// Misplaced is the count of objects stored but not yet relocated to
	// their target placement.
	Misplaced int64
	// Total is the cluster-wide object count the degraded/misplaced counts
	// are measured against. May legitimately be 0 on an empty cluster.
	Total int64
	// FetchedAt records when the status command was run.
	FetchedAt time.Time
}

// Healthy reports whether the snapshot shows nothing left to recover.
func (s Snapshot) Healthy() bool {
	return s.Degraded == 0 && s.Misplaced == 0
}

// RunState is the immutable baseline of a monitoring run: the first
// successful snapshot and the moment it was taken. Percentages and ETAs for
// the whole run are computed against these values. The baseline total is
// deliberately never refreshed, even when a later snapshot reports a
// different cluster-wide count — a stable denominator beats a moving one
// for an operator watching a percentage shrink.
type RunState struct {
	Baseline  Snapshot
	StartTime time.Time
}

// NewRunState establishes the run baseline from the first snapshot.
func NewRunState(baseline Snapshot, start time.Time) RunState {
	return RunState{Baseline: baseline, StartTime: start}
}

// Elapsed returns the time since the run started.
func (r RunState) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.StartTime)
}
