package engine

import (
	"errors"
	"sync"
	"time"
)

// mockConverter implements localtime.Converter for testing. BuildReport
// invokes it from concurrent goroutines, so the call counter is locked.
type mockConverter struct {
	ToLocalFn func(utc time.Time) (string, error)

	mu    sync.Mutex
	calls int
}

func (m *mockConverter) ToLocal(utc time.Time) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.ToLocalFn != nil {
		return m.ToLocalFn(utc)
	}
	return utc.Format("2006-01-02 15:04:05") + " CET", nil
}

func (m *mockConverter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var errMockConvert = errors.New("mock conversion failure")
