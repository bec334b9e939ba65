package peaks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gaussianCurve(n int, center, sigma, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		d := float64(i) - center
		out[i] = amplitude * math.Exp(-d*d/(2*sigma*sigma))
	}
	return out
}

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want []int
	}{
		{name: "single", x: []float64{0, 1, 3, 1, 0}, want: []int{2}},
		{name: "plateau middle", x: []float64{0, 2, 2, 2, 0}, want: []int{2}},
		{name: "even plateau rounds down", x: []float64{0, 2, 2, 0}, want: []int{1}},
		{name: "edges ignored", x: []float64{5, 1, 0, 1, 5}, want: nil},
		{name: "plateau into edge", x: []float64{0, 2, 2}, want: nil},
		{name: "several", x: []float64{0, 2, 0, 3, 0, 2, 0}, want: []int{1, 3, 5}},
		{name: "too short", x: []float64{1, 2}, want: nil},
		{name: "monotone", x: []float64{1, 2, 3, 4}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.x))
		})
	}
}

func TestSortByHeightIsStable(t *testing.T) {
	x := []float64{0, 2, 0, 3, 0, 2, 0}
	idx := Find(x)
	SortByHeight(x, idx)
	assert.Equal(t, []int{3, 1, 5}, idx)
}

func TestProminences(t *testing.T) {
	x := []float64{0, 2, 1, 3, 0}
	prom, left, right, err := Prominences(x, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, prom)
	assert.Equal(t, []int{0, 0}, left)
	assert.Equal(t, []int{2, 4}, right)

	_, _, _, err = Prominences(x, []int{7})
	require.Error(t, err)
}

func TestWidthsInterpolates(t *testing.T) {
	x := []float64{0, 1, 3, 1, 0}
	widths, heights, left, right, err := Widths(x, []int{2}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, widths[0], 1e-12)
	assert.InDelta(t, 1.5, heights[0], 1e-12)
	assert.InDelta(t, 1.25, left[0], 1e-12)
	assert.InDelta(t, 2.75, right[0], 1e-12)

	_, _, _, _, err = Widths(x, []int{2}, -1)
	require.Error(t, err)
}

func TestDetectGaussianPeak(t *testing.T) {
	const sigma = 5.0
	x := gaussianCurve(101, 50, sigma, 2)

	found, err := Detect(x, 0.5)
	require.NoError(t, err)
	require.Len(t, found, 1)

	p := found[0]
	assert.Equal(t, 50, p.Index)
	assert.InDelta(t, 2, p.Height, 1e-12)
	assert.InDelta(t, 2.3548*sigma, p.Width, 0.05)
	assert.InDelta(t, sigma, GaussianSigma(p.Width, p.Height, p.WidthHeight), 0.05)
}

func TestDetectOrdersByHeight(t *testing.T) {
	x := make([]float64, 200)
	for i, v := range gaussianCurve(200, 40, 4, 1) {
		x[i] += v
	}
	for i, v := range gaussianCurve(200, 140, 4, 3) {
		x[i] += v
	}

	found, err := Detect(x, 0.5)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, 140, found[0].Index)
	assert.Equal(t, 40, found[1].Index)
}

func TestDetectNoPeaks(t *testing.T) {
	found, err := Detect([]float64{1, 1, 1, 1}, 0.5)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGaussianSigma(t *testing.T) {
	assert.InDelta(t, 1, GaussianSigma(math.Sqrt(8*math.Ln2), 1, 0.5), 1e-12)
	assert.Zero(t, GaussianSigma(1, 1, 1))
	assert.Zero(t, GaussianSigma(1, 1, 0))
	assert.Zero(t, GaussianSigma(1, 1, 2))
}
