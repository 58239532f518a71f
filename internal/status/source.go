package status

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dm/ceph-eta/internal/model"
)

// DefaultCommand is the status command run when none is configured.
const DefaultCommand = "ceph -s"

// Source produces status snapshots. Implementations other than
// CommandSource exist only in tests.
type Source interface {
	Fetch(ctx context.Context) (model.Snapshot, error)
	Describe() string
}

// CommandSource obtains snapshots by running an external status command
// and extracting object counts from its stdout. A fresh process is spawned
// per fetch; the command is not separately timeout-guarded beyond the
// caller's context.
type CommandSource struct {
	name string
	args []string
}

// NewCommandSource builds a CommandSource from a whitespace-separated
// command line, e.g. "ceph -s". Returns an error when the command is empty.
func NewCommandSource(command string) (*CommandSource, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("status command is empty")
	}
	return &CommandSource{name: fields[0], args: fields[1:]}, nil
}

// Describe returns the configured command line for display.
func (s *CommandSource) Describe() string {
	return strings.Join(append([]string{s.name}, s.args...), " ")
}

// Fetch runs the status command once and extracts a Snapshot from its
// output. Command failures are reported as *CommandError; extraction
// failures pass through from Extract.
func (s *CommandSource) Fetch(ctx context.Context) (model.Snapshot, error) {
	cmd := exec.CommandContext(ctx, s.name, s.args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return model.Snapshot{}, &CommandError{
			Command: s.Describe(),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}

	snap, err := Extract(stdout.String())
	if err != nil {
		return model.Snapshot{}, err
	}
	snap.FetchedAt = time.Now()
	return snap, nil
}
