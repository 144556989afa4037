package stabilizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipelineEndToEnd(t *testing.T) {
	p, err := NewPipeline(Options{
		NeutralIndex: 3,
		BoostFactor:  2.0,
		Alpha:        0.1,
		HistorySize:  3,
	})
	require.NoError(t, err)

	// A constant uniform input adjusts to the same vector every frame, so
	// the EMA stays at its seed and the median matches it exactly.
	want := []float64{1.0 / 7, 1.0 / 7, 1.0 / 7, 4.0 / 7}
	raw := []float64{0.25, 0.25, 0.25, 0.25}
	for i := 0; i < 3; i++ {
		display := p.Process(raw)
		require.Len(t, display, 4)
		for c := range want {
			require.InDelta(t, want[c], display[c], 1e-9)
		}
	}

	window := p.Window()
	require.Len(t, window, 3)
	for _, entry := range window {
		for c := range want {
			require.InDelta(t, want[c], entry[c], 1e-9)
		}
	}
}

func TestPipelineWindowEvictsOldest(t *testing.T) {
	p, err := NewPipeline(Options{
		NeutralIndex: 0,
		BoostFactor:  1.5,
		Alpha:        1.0,
		HistorySize:  2,
	})
	require.NoError(t, err)

	p.Process([]float64{1, 0})
	p.Process([]float64{0, 1})
	p.Process([]float64{1, 1})
	require.Len(t, p.Window(), 2)
}

func TestPipelineEmptyObservationFallsBackToSmoothed(t *testing.T) {
	p, err := NewPipeline(Options{
		NeutralIndex: 3,
		BoostFactor:  1.5,
		Alpha:        0.1,
		HistorySize:  4,
	})
	require.NoError(t, err)

	// With nothing smoothed yet an empty observation yields an empty median,
	// and the driver hands back the smoother output unchanged.
	require.Empty(t, p.Process(nil))
}

func TestNewPipelineRejectsBadOptions(t *testing.T) {
	base := Options{NeutralIndex: 3, BoostFactor: 1.5, Alpha: 0.1, HistorySize: 60}

	bad := base
	bad.Alpha = 0
	_, err := NewPipeline(bad)
	require.Error(t, err)

	bad = base
	bad.BoostFactor = -2
	_, err = NewPipeline(bad)
	require.Error(t, err)

	bad = base
	bad.HistorySize = 0
	_, err = NewPipeline(bad)
	require.Error(t, err)

	bad = base
	bad.NeutralIndex = -1
	_, err = NewPipeline(bad)
	require.Error(t, err)
}
