package stabilizer

import "fmt"

// Smoother maintains an exponential moving average over a stream of
// probability vectors. One Smoother drives exactly one stream; it is not
// safe to share across independently evolving streams.
type Smoother struct {
	alpha float64
	state []float64
}

// NewSmoother returns a Smoother with smoothing factor alpha in (0, 1].
// Higher alpha weights the newest observation more.
func NewSmoother(alpha float64) (*Smoother, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("smoother: alpha must be in (0, 1], got %v", alpha)
	}
	return &Smoother{alpha: alpha}, nil
}

// Smooth folds probs into the moving average and returns a copy of the
// updated state. The first observation seeds the state verbatim. Shorter
// observations update only the overlapping prefix; indices past the overlap
// keep their previous value.
func (s *Smoother) Smooth(probs []float64) []float64 {
	if len(s.state) == 0 {
		s.state = append([]float64(nil), probs...)
	} else {
		n := min(len(probs), len(s.state))
		for i := 0; i < n; i++ {
			s.state[i] = s.alpha*probs[i] + (1-s.alpha)*s.state[i]
		}
	}
	return append([]float64(nil), s.state...)
}

// Initialized reports whether a first observation has seeded the state.
func (s *Smoother) Initialized() bool { return len(s.state) > 0 }
