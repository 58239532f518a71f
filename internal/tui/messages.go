package tui

import (
	"time"

	"github.com/dm/ceph-eta/internal/model"
)

// BaselineMsg delivers the first successful snapshot, which establishes
// the run baseline.
type BaselineMsg struct {
	Snapshot model.Snapshot
}

// ReportMsg delivers derived poll results for an established run.
type ReportMsg struct {
	Report model.Report
	Advice []model.Advice
}

// FetchErrorMsg signals a poll failure.
type FetchErrorMsg struct{ Err error }

// TickMsg triggers the next scheduled poll.
type TickMsg time.Time
