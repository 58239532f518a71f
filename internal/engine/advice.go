package engine

import (
	"fmt"

	"github.com/dm/ceph-eta/internal/format"
	"github.com/dm/ceph-eta/internal/model"
)

// CalcAdvice generates operator-facing observations from the current report
// and the run baseline. Returns an empty (non-nil) slice when there is
// nothing noteworthy.
func CalcAdvice(run model.RunState, report model.Report) []model.Advice {
	result := []model.Advice{}

	// Zero-total inconsistency: the status source reported work outstanding
	// against an empty cluster. Percentages are rendered as 0.00% in that
	// case, which is misleading rather than wrong.
	if run.Baseline.Total == 0 && !report.Snapshot.Healthy() {
		result = append(result, model.Advice{
			Severity: model.AdviceWarning,
			Title:    "Total object count is 0",
			Detail:   "Degraded/misplaced objects exist but the cluster reports 0 total objects. Percentages are not meaningful; the status source may be inconsistent.",
		})
	}

	// Stall: work outstanding, no finite ETA. Both metrics stalled usually
	// means recovery is blocked (e.g. nobackfill/norecover flags set).
	if report.Degraded.Stalled() && report.Misplaced.Stalled() {
		result = append(result, model.Advice{
			Severity: model.AdviceWarning,
			Title:    "Recovery appears stalled",
			Detail:   "Neither degraded nor misplaced counts have improved since monitoring started. Check cluster flags (nobackfill, norecover) and OSD state.",
		})
	} else {
		if report.Degraded.Stalled() {
			result = append(result, model.Advice{
				Severity: model.AdviceInfo,
				Title:    "Degraded count not improving",
				Detail:   fmt.Sprintf("%s degraded objects remain with no progress since the baseline.", format.Number(report.Degraded.Current)),
			})
		}
		if report.Misplaced.Stalled() {
			result = append(result, model.Advice{
				Severity: model.AdviceInfo,
				Title:    "Misplaced count not improving",
				Detail:   fmt.Sprintf("%s misplaced objects remain with no progress since the baseline.", format.Number(report.Misplaced.Current)),
			})
		}
	}

	// Regression: a count above its baseline means the situation worsened
	// mid-run (e.g. another OSD went down). The average-rate ETA will read
	// infinite until the count drops back below the baseline.
	if report.Snapshot.Degraded > run.Baseline.Degraded {
		result = append(result, model.Advice{
			Severity: model.AdviceWarning,
			Title:    "Degraded count rising",
			Detail: fmt.Sprintf("Degraded objects rose from %s at baseline to %s. Recovery may be losing ground to new failures.",
				format.Number(run.Baseline.Degraded), format.Number(report.Snapshot.Degraded)),
		})
	}

	// Baseline drift: the live total moved away from the frozen one.
	// Percentages keep using the baseline total; a large drift is worth a
	// restart of the monitor.
	if report.Snapshot.Total != run.Baseline.Total {
		result = append(result, model.Advice{
			Severity: model.AdviceInfo,
			Title:    "Total object count drifted",
			Detail: fmt.Sprintf("Cluster now reports %s total objects vs %s at baseline. Percentages still use the baseline total; restart the monitor to re-baseline.",
				format.Number(report.Snapshot.Total), format.Number(run.Baseline.Total)),
		})
	}

	return result
}
