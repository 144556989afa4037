package stabilizer

import "sort"

// Median computes the per-class median across a history snapshot and returns
// nil when the snapshot is empty. The output width follows the first (oldest)
// entry; entries too short for a class simply omit it from that class's
// column, and a class whose column ends up empty reports 0. Even-sized
// columns use the lower-middle element after sorting, not an interpolated
// average.
func Median(history [][]float64) []float64 {
	if len(history) == 0 {
		return nil
	}
	classes := len(history[0])
	medians := make([]float64, classes)
	col := make([]float64, 0, len(history))
	for c := 0; c < classes; c++ {
		col = col[:0]
		for _, h := range history {
			if c < len(h) {
				col = append(col, h[c])
			}
		}
		if len(col) == 0 {
			continue
		}
		sort.Float64s(col)
		medians[c] = col[len(col)/2]
	}
	return medians
}
