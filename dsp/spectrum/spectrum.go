package spectrum

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Power returns re[k]^2 + im[k]^2 for each bin.
//
// re and im must have the same length. This uses SIMD-optimized
// implementations when available.
func Power(re, im []float64) ([]float64, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("spectrum power length mismatch: %d != %d", len(re), len(im))
	}
	if len(re) == 0 {
		return nil, nil
	}
	out := make([]float64, len(re))
	vecmath.Power(out, re, im)
	return out, nil
}

// ScaleInPlace multiplies every value of data by scale.
func ScaleInPlace(data []float64, scale float64) {
	if len(data) == 0 {
		return
	}
	vecmath.ScaleBlock(data, data, scale)
}

// Space returns n evenly spaced frequencies covering [0, max], both ends
// included.
func Space(max float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("frequency space needs at least 2 points: %d", n)
	}
	if !(max > 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("frequency space maximum must be finite and > 0: %v", max)
	}
	return floats.Span(make([]float64, n), 0, max), nil
}

// Grid returns n evenly spaced frequencies covering (0, max]. It matches
// Space(max, n+1) with the zero frequency dropped, which keeps periodograms
// away from their undefined DC term.
func Grid(max float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("frequency grid needs at least 1 point: %d", n)
	}
	space, err := Space(max, n+1)
	if err != nil {
		return nil, err
	}
	return space[1:], nil
}

// MinGap returns the smallest non-zero distance between consecutive values of
// x after sorting. It returns 0 if x holds fewer than two distinct values.
func MinGap(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	gap := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		d := math.Abs(sorted[i] - sorted[i-1])
		if d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 0
	}
	return gap
}
