package stabilizer

import "fmt"

// History is a fixed-capacity ring of the most recent smoothed
// distributions, oldest evicted first.
type History struct {
	data  [][]float64
	head  int // next write position
	count int // number of valid entries
}

// NewHistory returns a History retaining at most capacity entries.
func NewHistory(capacity int) (*History, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history: capacity must be positive, got %d", capacity)
	}
	return &History{data: make([][]float64, capacity)}, nil
}

// Push appends probs, evicting the oldest entry once the window is full.
func (h *History) Push(probs []float64) {
	h.data[h.head] = probs
	h.head = (h.head + 1) % len(h.data)
	if h.count < len(h.data) {
		h.count++
	}
}

// Snapshot returns the retained entries in chronological order (oldest
// first). The returned slice is fresh per call; the entries themselves are
// shared and must not be mutated by the caller.
func (h *History) Snapshot() [][]float64 {
	if h.count == 0 {
		return nil
	}
	out := make([][]float64, h.count)
	start := (h.head - h.count + len(h.data)) % len(h.data)
	for i := 0; i < h.count; i++ {
		out[i] = h.data[(start+i)%len(h.data)]
	}
	return out
}

// Len returns the number of retained entries.
func (h *History) Len() int { return h.count }

// Cap returns the configured capacity.
func (h *History) Cap() int { return len(h.data) }
