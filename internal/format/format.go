package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ETA renders a remaining-seconds estimate as [Dd ]HH:MM:SS.
//
//	+Inf  → "infinite (no progress or worsening)"
//	< 0   → "N/A (getting worse)" (defensive; the estimator never returns it)
//	0     → "00:00:00 (completed)"
//	3661  → "01:01:01"
//	90000 → "1d 01:00:00"
func ETA(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "infinite (no progress or worsening)"
	}
	if seconds < 0 {
		return "N/A (getting worse)"
	}
	if seconds == 0 {
		return "00:00:00 (completed)"
	}

	return clock(int64(seconds))
}

// Duration renders a duration as plain [Dd ]HH:MM:SS with no markers,
// e.g. for elapsed-time display. Negative durations clamp to zero.
func Duration(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}
	return clock(total)
}

// clock splits whole seconds into the [Dd ]HH:MM:SS form, omitting the
// days segment when zero.
func clock(total int64) string {
	days := total / 86400
	rem := total % 86400
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	secs := rem % 60

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// Percent formats a percentage with two decimal places, e.g. "34.56%".
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// Number formats an integer with comma-separated thousands.
// Example: 12345678 → "12,345,678".
func Number(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// insertCommas inserts comma separators into a digit string every 3 digits
// from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
