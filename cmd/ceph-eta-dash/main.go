// Command ceph-eta-dash is a terminal dashboard over the same recovery
// estimation as ceph-eta: live degraded/misplaced counts, progress bars
// against the run baseline, ETAs, and count sparklines.
//
// Usage:
//
//	ceph-eta-dash [--interval 60s] [--cmd "ceph -s"]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dm/ceph-eta/internal/localtime"
	"github.com/dm/ceph-eta/internal/status"
	"github.com/dm/ceph-eta/internal/tui"
)

func main() {
	var (
		interval = flag.Duration("interval", 60*time.Second, "polling interval (e.g. 30s, 2m)")
		command  = flag.String("cmd", status.DefaultCommand, "status command to run")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ceph-eta-dash [--interval 60s] [--cmd \"ceph -s\"]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *interval <= 0 {
		fmt.Fprintln(os.Stderr, "error: --interval must be positive")
		os.Exit(1)
	}
	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument %q\n", flag.Args()[0])
		flag.Usage()
		os.Exit(1)
	}

	source, err := status.NewCommandSource(*command)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(source, localtime.DateCommand{}, *interval)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
