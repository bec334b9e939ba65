package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gpdata/internal/testutil"
)

func TestSeriesApplyKeepsRaw(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	tr := NewWhiten()
	require.NoError(t, tr.Fit(nil, s.Transformed()))
	require.NoError(t, s.Apply(tr, nil))
	require.NoError(t, s.Apply(NewLinear(2, 0), nil))

	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Values())
	assert.Len(t, s.Transformers(), 2)

	chained, err := s.Forward(s.Values(), nil)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, s.Transformed(), chained, 1e-12)

	back, err := s.Backward(s.Transformed(), nil)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, back, s.Values(), 1e-12)
}

func TestSeriesSelectAndReset(t *testing.T) {
	s := New([]float64{10, 20, 30, 40})
	require.NoError(t, s.Apply(NewLinear(10, 0), nil))

	sub := s.Select([]int{3, 1})
	assert.Equal(t, []float64{40, 20}, sub.Values())
	testutil.RequireSliceNearlyEqual(t, sub.Transformed(), []float64{4, 2}, 1e-12)

	require.NoError(t, s.Reset([]float64{50, 60}, nil))
	assert.Equal(t, 2, s.Len())
	testutil.RequireSliceNearlyEqual(t, s.Transformed(), []float64{5, 6}, 1e-12)
	assert.Equal(t, 2, sub.Len())
}

func TestSeriesCloneIsIndependent(t *testing.T) {
	s := New([]float64{1, 2})
	c := s.Clone()
	require.NoError(t, c.Apply(NewLinear(2, 0), nil))

	assert.Empty(t, s.Transformers())
	assert.Equal(t, []float64{1, 2}, s.Transformed())
	assert.Equal(t, []float64{0.5, 1}, c.Transformed())
}

func TestSeriesApplyPropagatesErrors(t *testing.T) {
	s := New([]float64{1, 2, 3})
	err := s.Apply(NewDetrend(), nil)
	require.ErrorIs(t, err, ErrDimensions)
	assert.Empty(t, s.Transformers())
}
