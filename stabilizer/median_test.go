package stabilizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedianOddColumns(t *testing.T) {
	out := Median([][]float64{{0, 1}, {1, 0}, {0.5, 0.5}})
	require.Len(t, out, 2)
	require.InDelta(t, 0.5, out[0], 1e-9)
	require.InDelta(t, 0.5, out[1], 1e-9)
}

func TestMedianEmptyHistory(t *testing.T) {
	require.Nil(t, Median(nil))
	require.Nil(t, Median([][]float64{}))
}

func TestMedianEvenColumnUsesLowerMiddleIndex(t *testing.T) {
	// Two entries: the element at index len/2 == 1 of the sorted column.
	out := Median([][]float64{{0}, {1}})
	require.Equal(t, []float64{1}, out)

	out = Median([][]float64{{1}, {0}})
	require.Equal(t, []float64{1}, out)
}

func TestMedianShortEntriesOmitMissingColumns(t *testing.T) {
	out := Median([][]float64{{1, 2, 3}, {4}})
	// class 0 column [1 4] -> 4; classes 1 and 2 come from the long entry only.
	require.Equal(t, []float64{4, 2, 3}, out)
}

func TestMedianWidthFollowsOldestEntry(t *testing.T) {
	out := Median([][]float64{{1}, {2, 9}})
	require.Len(t, out, 1)
}

func TestMedianEmptyOldestEntryYieldsEmptyResult(t *testing.T) {
	require.Empty(t, Median([][]float64{{}, {5}}))
}
