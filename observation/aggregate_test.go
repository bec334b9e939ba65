package observation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gpdata/duration"
	"github.com/cwbudde/algo-gpdata/internal/testutil"
	"github.com/cwbudde/algo-gpdata/series"
)

func linear(t *testing.T, n int) *Data {
	t.Helper()
	x := testutil.UniformGrid(0, 1, n)
	d, err := New(x, x, seeded())
	require.NoError(t, err)
	return d
}

func TestAggregators(t *testing.T) {
	values := []float64{3, 1, 2, 6}
	assert.Equal(t, 3.0, Mean(values))
	assert.Equal(t, 12.0, Sum(values))
	assert.Equal(t, 2.5, Median(values))
	assert.Equal(t, 1.0, Min(values))
	assert.Equal(t, 6.0, Max(values))

	for _, f := range []AggregateFunc{Mean, Sum, Median, Min, Max} {
		assert.True(t, math.IsNaN(f(nil)))
	}
}

func TestAggregateWindows(t *testing.T) {
	tests := []struct {
		step        float64
		wantCenters []float64
		wantValues  []float64
	}{
		{2, []float64{1, 3, 5, 7, 9}, []float64{0.5, 2.5, 4.5, 6.5, 8.5}},
		{3, []float64{1.5, 4.5, 7.5}, []float64{1, 4, 7}},
		{9, []float64{4.5}, []float64{4}},
	}
	for _, tc := range tests {
		d := linear(t, 10)
		require.NoError(t, d.RemoveIndex(0, 4))
		require.NoError(t, d.Aggregate(duration.Value(tc.step), Mean))

		x, y := d.Data()
		require.Len(t, y, int(math.Ceil(9/tc.step)))
		assert.Equal(t, tc.wantCenters, testutil.Column(x, 0), "step %v", tc.step)
		testutil.RequireSliceNearlyEqual(t, y, tc.wantValues, 1e-12)
		assert.False(t, d.HasTestData())
	}
}

func TestAggregateEmptyWindow(t *testing.T) {
	d, err := New([]float64{0, 10}, []float64{4, 8})
	require.NoError(t, err)
	require.NoError(t, d.Aggregate(duration.Value(2), Sum))

	_, y := d.Data()
	require.Len(t, y, 5)
	assert.Equal(t, 4.0, y[0])
	for _, v := range y[1:] {
		assert.True(t, math.IsNaN(v))
	}
}

func TestAggregateKeepsTransforms(t *testing.T) {
	d := linear(t, 10)
	require.NoError(t, d.Transform(series.NewLinear(2, 0)))
	require.NoError(t, d.Aggregate(duration.Value(5), Max))

	_, y := d.Data()
	assert.Equal(t, []float64{4, 9}, y)
	_, ty := d.TrainingSpectrumData(0)
	testutil.RequireSliceNearlyEqual(t, ty, []float64{2, 4.5}, 1e-12)
}

func TestAggregateTimeAxis(t *testing.T) {
	d := hourly(t, 48)
	require.NoError(t, d.Aggregate(duration.Of(duration.MustParse("1D")), func(v []float64) float64 {
		return float64(len(v))
	}))

	x, y := d.Data()
	assert.Equal(t, []float64{24, 24}, y)
	assert.True(t, time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC).Equal(Time(x[0][0])))
	assert.True(t, time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC).Equal(Time(x[1][0])))
}

func TestAggregateValidation(t *testing.T) {
	d := linear(t, 10)
	require.ErrorIs(t, d.Aggregate(duration.Value(0), Mean), ErrInvalidValue)
	require.ErrorIs(t, d.Aggregate(duration.Of(duration.MustParse("1h")), Mean), duration.ErrCalendarStep)

	single, err := New([]float64{1}, []float64{1})
	require.NoError(t, err)
	require.ErrorIs(t, single.Aggregate(duration.Value(1), Mean), ErrNoData)
}

func TestFilterHalfOpen(t *testing.T) {
	d := linear(t, 10)
	require.NoError(t, d.RemoveIndex(3))
	require.NoError(t, d.Filter(2, 5))

	x, _ := d.Data()
	assert.Equal(t, [][]float64{{2}, {3}, {4}}, x)
	assert.Equal(t, []bool{true, false, true}, d.Mask())
}

func TestFilterValidation(t *testing.T) {
	d := linear(t, 10)
	require.ErrorIs(t, d.Filter(5, 5), ErrEmptyRange)
	require.ErrorIs(t, d.Filter(20, 30), ErrNoData)
	assert.Equal(t, 10, d.Len())
}
