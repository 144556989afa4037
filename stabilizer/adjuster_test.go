package stabilizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdjustBoostsAndNormalizes(t *testing.T) {
	a, err := NewAdjuster(2.0, 3)
	require.NoError(t, err)

	out := a.Adjust([]float64{0.25, 0.25, 0.25, 0.25})
	want := []float64{1.0 / 7, 1.0 / 7, 1.0 / 7, 4.0 / 7}
	require.Len(t, out, 4)
	for i := range want {
		require.InDelta(t, want[i], out[i], 1e-9)
	}
}

func TestAdjustOutputSumsToOne(t *testing.T) {
	a, err := NewAdjuster(1.5, 1)
	require.NoError(t, err)

	out := a.Adjust([]float64{3, 0.2, 9, 0.01, 5})
	sum := 0.0
	for _, p := range out {
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-5)
}

func TestAdjustZeroSumSkipsNormalization(t *testing.T) {
	a, err := NewAdjuster(2.0, 3)
	require.NoError(t, err)

	out := a.Adjust([]float64{0, 0, 0, 0})
	require.Equal(t, []float64{0, 0, 0, 0}, out)
}

func TestAdjustNegativeSumReturnsBoostedCopy(t *testing.T) {
	a, err := NewAdjuster(2.0, 0)
	require.NoError(t, err)

	out := a.Adjust([]float64{-1, 0.5})
	require.Equal(t, []float64{-2, 0.5}, out)
}

func TestAdjustShortVectorSkipsBoost(t *testing.T) {
	a, err := NewAdjuster(2.0, 3)
	require.NoError(t, err)

	out := a.Adjust([]float64{0.5, 0.5})
	require.Equal(t, []float64{0.5, 0.5}, out)
}

func TestAdjustEmptyInput(t *testing.T) {
	a, err := NewAdjuster(1.5, 3)
	require.NoError(t, err)

	require.Empty(t, a.Adjust(nil))
}

func TestAdjustDoesNotMutateInput(t *testing.T) {
	a, err := NewAdjuster(2.0, 0)
	require.NoError(t, err)

	in := []float64{0.4, 0.6}
	a.Adjust(in)
	require.Equal(t, []float64{0.4, 0.6}, in)
}

func TestNewAdjusterRejectsBadConfig(t *testing.T) {
	_, err := NewAdjuster(0, 3)
	require.Error(t, err)

	_, err = NewAdjuster(-1.5, 3)
	require.Error(t, err)

	_, err = NewAdjuster(1.5, -1)
	require.Error(t, err)
}
