package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2.0000001}, []float64{1, 2}, 1e-6)
}

func TestRequireRowsNearlyEqual(t *testing.T) {
	RequireRowsNearlyEqual(t, [][]float64{{1, 2}, {3}}, [][]float64{{1, 2}, {3 + 1e-9}}, 1e-6)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestColumn(t *testing.T) {
	assert.Equal(t, []float64{2, 4}, Column([][]float64{{1, 2}, {3, 4}}, 1))
}
