// Package localtime converts UTC timestamps into local wall-clock strings
// with a timezone abbreviation. The real implementation delegates to
// date(1), which applies the system timezone database reliably even in
// minimal environments where Go's own zone lookup may be unavailable.
package localtime

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Layout is the wall-clock layout used for all displayed timestamps.
const Layout = "2006-01-02 15:04:05"

// Converter turns a UTC timestamp into a local wall-clock string including
// the timezone abbreviation.
type Converter interface {
	ToLocal(utc time.Time) (string, error)
}

// DateCommand implements Converter by shelling out to date(1).
type DateCommand struct{}

// ToLocal runs `date -d '<utc> UTC' +'%Y-%m-%d %H:%M:%S %Z'` and returns
// its trimmed output.
func (DateCommand) ToLocal(utc time.Time) (string, error) {
	arg := utc.UTC().Format(Layout) + " UTC"
	out, err := exec.Command("date", "-d", arg, "+%Y-%m-%d %H:%M:%S %Z").Output()
	if err != nil {
		return "", fmt.Errorf("date conversion of %q: %w", arg, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Fallback renders the UTC value suffixed with "UTC", used when the
// converter fails.
func Fallback(utc time.Time) string {
	return utc.UTC().Format(Layout) + " UTC"
}
