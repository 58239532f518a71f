package status

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvableTotal indicates degraded or misplaced objects were found in
// the status output but no cluster-wide object count could be derived from
// any pattern. The caller should treat the tick as "status unavailable".
var ErrUnresolvableTotal = errors.New("degraded/misplaced objects present but total object count could not be determined")

// CommandError wraps a failed status command invocation: non-zero exit,
// missing binary, or unreadable output. Stderr is captured for diagnostics.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("status command %q failed: %v", e.Command, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
