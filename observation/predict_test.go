package observation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gpdata/duration"
	"github.com/cwbudde/algo-gpdata/internal/testutil"
	"github.com/cwbudde/algo-gpdata/series"
)

func TestPredictionDefaultsToInputs(t *testing.T) {
	d := grid(t, 5)
	x, _ := d.Data()
	assert.Equal(t, x, d.PredictionX())
}

func TestPredictionBand(t *testing.T) {
	d := linear(t, 10)
	require.NoError(t, d.Transform(series.NewLinear(0.5, -1)))
	require.NoError(t, d.SetPredictionRange(0, 10, 11))

	mu := make([]float64, 11)
	variance := make([]float64, 11)
	for i := range variance {
		variance[i] = 1
	}
	require.NoError(t, d.SetPrediction("gp", mu, variance))
	assert.Equal(t, []string{"gp"}, d.Predictions())

	x, m, lo, hi, err := d.Prediction("gp", 2)
	require.NoError(t, err)
	require.Len(t, x, 11)
	assert.Equal(t, 10.0, x[10][0])
	for i := range m {
		assert.InDelta(t, -1, m[i], 1e-12)
		assert.InDelta(t, -2, lo[i], 1e-12)
		assert.InDelta(t, 0, hi[i], 1e-12)
	}
}

func TestPredictionErrors(t *testing.T) {
	d := linear(t, 10)
	_, _, _, _, err := d.Prediction("missing", 1)
	require.ErrorIs(t, err, ErrUnknownPrediction)

	require.ErrorIs(t, d.SetPrediction("gp", []float64{1}, []float64{1}), ErrLength)
	require.ErrorIs(t, d.SetPredictionRange(5, 5, 10), ErrEmptyRange)
	require.ErrorIs(t, d.SetPredictionRange(0, 5, 1), ErrInvalidValue)
	require.ErrorIs(t, d.SetPredictionX([][]float64{{1, 2}}), ErrInputDims)
	require.ErrorIs(t, d.SetPredictionX([][]float64{{math.NaN()}}), ErrInvalidValue)
	require.ErrorIs(t, d.SetPredictionRangeStep(0, 5, duration.Value(-1)), ErrInvalidValue)
}

func TestNewPredictionGridClearsPredictions(t *testing.T) {
	d := linear(t, 10)
	require.NoError(t, d.SetPrediction("gp", make([]float64, 10), make([]float64, 10)))

	require.NoError(t, d.SetPredictionRangeStep(math.Inf(-1), math.Inf(1), duration.Value(0.25)))
	assert.Empty(t, d.Predictions())
	x := d.PredictionX()
	require.Len(t, x, 37)
	assert.Equal(t, 0.0, x[0][0])
	assert.Equal(t, 9.0, x[36][0])

	require.NoError(t, d.SetPrediction("gp", make([]float64, 37), make([]float64, 37)))
	require.NoError(t, d.SetPredictionX([][]float64{{1}, {2}}))
	assert.Empty(t, d.Predictions())
}

func TestPredictionRestoresTrend(t *testing.T) {
	d, err := LoadFunction(func(x [][]float64) []float64 {
		y := make([]float64, len(x))
		for i, row := range x {
			y[i] = 3 * row[0]
		}
		return y
	}, []float64{0}, []float64{10}, 50, 0)
	require.NoError(t, err)
	require.NoError(t, d.TransformX(series.NewLinear(2, 0)))
	require.NoError(t, d.Transform(series.NewDetrend()))
	require.NoError(t, d.SetPredictionRange(0, 20, 5))

	require.NoError(t, d.SetPrediction("flat", make([]float64, 5), make([]float64, 5)))
	x, mu, _, _, err := d.Prediction("flat", 1)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, testutil.Column(x, 0), []float64{0, 5, 10, 15, 20}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, mu, []float64{0, 15, 30, 45, 60}, 1e-9)
}

func TestPredictionRangeStepInexactStep(t *testing.T) {
	d := linear(t, 10)
	require.NoError(t, d.SetPredictionRangeStep(0, 0.3, duration.Value(0.1)))
	testutil.RequireRowsNearlyEqual(t, d.PredictionX(), [][]float64{{0}, {0.1}, {0.2}, {0.3}}, 1e-12)
}
