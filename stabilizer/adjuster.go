package stabilizer

import "fmt"

// Adjuster rescales one class of a probability vector by a fixed boost
// factor and renormalizes the result to sum to 1.
type Adjuster struct {
	boost float64
	index int
}

// NewAdjuster returns an Adjuster boosting the class at index. boost must be
// positive and index non-negative.
func NewAdjuster(boost float64, index int) (*Adjuster, error) {
	if boost <= 0 {
		return nil, fmt.Errorf("adjuster: boost factor must be positive, got %v", boost)
	}
	if index < 0 {
		return nil, fmt.Errorf("adjuster: class index must be non-negative, got %d", index)
	}
	return &Adjuster{boost: boost, index: index}, nil
}

// Adjust returns a boosted, renormalized copy of probs. Vectors too short to
// contain the boosted class pass through without the boost, and a
// non-positive sum skips the renormalization rather than dividing by zero.
func (a *Adjuster) Adjust(probs []float64) []float64 {
	out := make([]float64, len(probs))
	copy(out, probs)
	if len(out) > a.index {
		out[a.index] *= a.boost
	}
	sum := 0.0
	for _, p := range out {
		sum += p
	}
	if sum > 0 {
		for i := range out {
			out[i] /= sum
		}
	}
	return out
}
