package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dm/ceph-eta/internal/model"
)

// scriptedSource implements status.Source, returning one scripted result
// per Fetch call. The last entry repeats once the script is exhausted.
type scriptedSource struct {
	mu      sync.Mutex
	script  []fetchResult
	fetches int
}

type fetchResult struct {
	snap model.Snapshot
	err  error
}

func (s *scriptedSource) Fetch(_ context.Context) (model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.fetches
	if i >= len(s.script) {
		i = len(s.script) - 1
	}
	s.fetches++
	r := s.script[i]
	return r.snap, r.err
}

func (s *scriptedSource) Describe() string { return "scripted" }

func (s *scriptedSource) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

// utcConverter implements localtime.Converter without invoking date(1).
type utcConverter struct{}

func (utcConverter) ToLocal(utc time.Time) (string, error) {
	return utc.UTC().Format("2006-01-02 15:04:05") + " UTC", nil
}

var errFetchFailed = errors.New("scripted fetch failure")
