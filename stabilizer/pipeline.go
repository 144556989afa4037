package stabilizer

import (
	"fmt"
	"sync"
)

// Options configures a Pipeline.
type Options struct {
	NeutralIndex int
	BoostFactor  float64
	Alpha        float64
	HistorySize  int
}

// Pipeline chains the adjust, smooth and median stages over a single stream
// of raw per-frame distributions. Process is serialized by an internal
// mutex so a producer/consumer split stays safe; the pipeline still assumes
// a single logical stream.
type Pipeline struct {
	mu       sync.Mutex
	adjuster *Adjuster
	smoother *Smoother
	history  *History
}

// NewPipeline validates opts and builds the pipeline, failing fast on any
// out-of-range parameter.
func NewPipeline(opts Options) (*Pipeline, error) {
	adjuster, err := NewAdjuster(opts.BoostFactor, opts.NeutralIndex)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	smoother, err := NewSmoother(opts.Alpha)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	history, err := NewHistory(opts.HistorySize)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &Pipeline{adjuster: adjuster, smoother: smoother, history: history}, nil
}

// Process runs one raw observation through the pipeline and returns the
// display vector: the windowed median, or the freshly smoothed vector while
// the window is still empty.
func (p *Pipeline) Process(raw []float64) []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	adjusted := p.adjuster.Adjust(raw)
	smoothed := p.smoother.Smooth(adjusted)
	p.history.Push(smoothed)
	if median := Median(p.history.Snapshot()); len(median) > 0 {
		return median
	}
	return smoothed
}

// Window returns the retained smoothed distributions oldest-first, for
// consumers that render a time series alongside the display vector.
func (p *Pipeline) Window() [][]float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.history.Snapshot()
}
