package model

import "time"

const defaultHistoryCap = 60

// HistoryPoint is a single timestamped sample stored in the ring buffer.
type HistoryPoint struct {
	Timestamp time.Time
	Degraded  int64
	Misplaced int64
}

// History is a fixed-size ring buffer of HistoryPoints feeding the
// dashboard sparklines. When the buffer is full, new pushes overwrite the
// oldest entry.
type History struct {
	buf  []HistoryPoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewHistory creates a History with the given capacity.
// If capacity <= 0, the defaultHistoryCap (60) is used.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &History{
		buf: make([]HistoryPoint, capacity),
	}
}

// Push appends a new point to the history, overwriting the oldest if full.
func (h *History) Push(p HistoryPoint) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *History) Len() int {
	return h.size
}

// Clear resets the history to empty.
func (h *History) Clear() {
	h.head = 0
	h.size = 0
}

// DegradedValues returns the degraded counts in chronological order
// (oldest first) as float64 values for sparkline rendering.
func (h *History) DegradedValues() []float64 {
	return h.values(func(p HistoryPoint) float64 { return float64(p.Degraded) })
}

// MisplacedValues returns the misplaced counts in chronological order.
func (h *History) MisplacedValues() []float64 {
	return h.values(func(p HistoryPoint) float64 { return float64(p.Misplaced) })
}

func (h *History) values(f func(HistoryPoint) float64) []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		out[i] = f(h.buf[(start+i)%len(h.buf)])
	}
	return out
}
