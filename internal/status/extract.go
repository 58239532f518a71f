package status

import (
	"regexp"
	"strconv"

	"github.com/dm/ceph-eta/internal/model"
)

// Recognized fragments of `ceph -s` output. The ratio lines appear in the
// health section during recovery/rebalance; the summary lines appear in the
// data section (the num_objects form on newer Ceph releases).
var (
	reDegraded       = regexp.MustCompile(`(\d+)/(\d+) objects degraded`)
	reMisplaced      = regexp.MustCompile(`(\d+)/(\d+) objects misplaced`)
	reObjectsSummary = regexp.MustCompile(`\s+objects:\s+(\d+)\s+objects`)
	reNumObjects     = regexp.MustCompile(`num_objects:\s*(\d+)`)
)

// totalFallbacks is the ordered chain used to resolve the total object
// count when neither ratio line provided one; first match wins.
var totalFallbacks = []*regexp.Regexp{
	reObjectsSummary,
	reNumObjects,
}

// matchRatio extracts the two integers of an "N/M objects <state>" line.
func matchRatio(re *regexp.Regexp, raw string) (count, total int64, ok bool) {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, false
	}
	count, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	total, err = strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return count, total, true
}

// matchTotalFallback runs the fallback chain against the raw output.
func matchTotalFallback(raw string) (total int64, ok bool) {
	for _, re := range totalFallbacks {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// Extract parses the free-form status output into a Snapshot.
//
// The total object count is resolved first-match-wins: the denominator of
// the degraded line, else the denominator of the misplaced line, else the
// fallback chain. A matched "D/0 objects degraded" line still resolves the
// total (to 0) — presence of the match decides, not a positive value.
// When no pattern matched at all and both counts are zero, the cluster is
// assumed empty/healthy and the total defaults to 0.
//
// Returns ErrUnresolvableTotal when degraded or misplaced objects exist but
// no rule produced a total.
func Extract(raw string) (model.Snapshot, error) {
	var snap model.Snapshot

	degraded, degradedTotal, haveDegraded := matchRatio(reDegraded, raw)
	misplaced, misplacedTotal, haveMisplaced := matchRatio(reMisplaced, raw)
	snap.Degraded = degraded
	snap.Misplaced = misplaced

	switch {
	case haveDegraded:
		snap.Total = degradedTotal
	case haveMisplaced:
		snap.Total = misplacedTotal
	default:
		total, ok := matchTotalFallback(raw)
		if !ok && (snap.Degraded > 0 || snap.Misplaced > 0) {
			return model.Snapshot{}, ErrUnresolvableTotal
		}
		snap.Total = total
	}

	return snap, nil
}
