package testutil

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformGrid(t *testing.T) {
	assert.Equal(t, []float64{1, 1.5, 2, 2.5}, UniformGrid(1, 0.5, 4))
}

func TestIrregularGridReproducible(t *testing.T) {
	a := IrregularGrid(3, 50, -1, 1)
	b := IrregularGrid(3, 50, -1, 1)
	require.Equal(t, a, b)
	require.True(t, sort.Float64sAreSorted(a))
	for _, v := range a {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
}

func TestSine(t *testing.T) {
	s := Sine([]float64{0, 0.25, 0.5}, 1, 2)
	assert.InDelta(t, 0, s[0], 1e-15)
	assert.InDelta(t, 2, s[1], 1e-15)
	assert.InDelta(t, 0, s[2], 1e-15)
}

func TestAdd(t *testing.T) {
	assert.Equal(t, []float64{3, 5}, Add([]float64{1, 2}, []float64{2, 3}))
	assert.Nil(t, Add())
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(9, 0.5, 64)
	require.Equal(t, a, DeterministicNoise(9, 0.5, 64))
	for _, v := range a {
		require.LessOrEqual(t, math.Abs(v), 0.5)
	}
}

func TestDC(t *testing.T) {
	assert.Equal(t, []float64{2, 2, 2}, DC(2, 3))
}
