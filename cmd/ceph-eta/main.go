// Command ceph-eta polls `ceph -s` at a fixed interval and estimates the
// remaining time until degraded and misplaced object counts reach zero,
// by linear extrapolation from progress since the tool started.
//
// Usage:
//
//	ceph-eta [interval-seconds]
//
// The optional positional argument is the poll interval in whole seconds
// (default 60). Exit code 0 on clean completion or interrupt; 1 when the
// initial status cannot be obtained.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dm/ceph-eta/internal/localtime"
	"github.com/dm/ceph-eta/internal/runner"
	"github.com/dm/ceph-eta/internal/status"
)

const (
	defaultIntervalSeconds = 60
	minRecommendedSeconds  = 5
)

// parseInterval parses the optional positional interval argument.
// warn is true when the interval is below the recommended minimum.
func parseInterval(args []string) (interval time.Duration, warn bool, err error) {
	seconds := defaultIntervalSeconds
	switch len(args) {
	case 0:
	case 1:
		seconds, err = strconv.Atoi(args[0])
		if err != nil {
			return 0, false, fmt.Errorf("invalid interval %q: must be a whole number of seconds", args[0])
		}
		if seconds <= 0 {
			return 0, false, fmt.Errorf("invalid interval %d: must be positive", seconds)
		}
	default:
		return 0, false, fmt.Errorf("unexpected argument %q", args[1])
	}
	return time.Duration(seconds) * time.Second, seconds < minRecommendedSeconds, nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: ceph-eta [interval-seconds]\n\n")
		fmt.Fprintf(os.Stderr, "Estimates ETA for Ceph recovery (degraded and misplaced objects).\n")
		fmt.Fprintf(os.Stderr, "The optional argument is the poll interval in seconds (default %d).\n", defaultIntervalSeconds)
	}
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	interval, warn, err := parseInterval(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}
	if warn {
		log.Warn().Dur("interval", interval).Msg("poll interval is very short; consider 30 seconds or more")
	}

	source, err := status.NewCommandSource(status.DefaultCommand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner.Runner{
		Source:   source,
		Conv:     localtime.DateCommand{},
		Interval: interval,
		Out:      os.Stdout,
		Log:      log,
	}

	if err := r.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
