package peaks

import (
	"fmt"
	"math"
	"sort"
)

// Peak describes one local maximum of a sampled curve.
type Peak struct {
	Index       int     // sample index of the maximum
	Height      float64 // value at Index
	Prominence  float64 // height above the higher surrounding base
	Width       float64 // width in samples at WidthHeight
	WidthHeight float64 // evaluation height of Width
	Left, Right float64 // interpolated crossing positions (samples)
}

// Find returns the indices of all local maxima of x in increasing order.
//
// A sample is a maximum if it is strictly larger than its left neighbour and
// the first differing sample to its right. Plateaus report their middle
// index. The first and last samples are never peaks.
func Find(x []float64) []int {
	var out []int
	n := len(x)
	i := 1
	for i < n-1 {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < n-1 && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				out = append(out, (i+ahead-1)/2)
				i = ahead
			}
		}
		i++
	}
	return out
}

// SortByHeight reorders idx so that x[idx] is descending. Equal heights keep
// their original relative order.
func SortByHeight(x []float64, idx []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		return x[idx[a]] > x[idx[b]]
	})
}

// Prominences computes the prominence of each peak together with the indices
// of its left and right bases.
func Prominences(x []float64, idx []int) (prom []float64, left, right []int, err error) {
	prom = make([]float64, len(idx))
	left = make([]int, len(idx))
	right = make([]int, len(idx))

	for k, p := range idx {
		if p < 0 || p >= len(x) {
			return nil, nil, nil, fmt.Errorf("peak index %d out of range [0,%d)", p, len(x))
		}
		h := x[p]

		leftMin := h
		left[k] = p
		for i := p; i >= 0 && x[i] <= h; i-- {
			if x[i] < leftMin {
				leftMin = x[i]
				left[k] = i
			}
		}

		rightMin := h
		right[k] = p
		for i := p; i < len(x) && x[i] <= h; i++ {
			if x[i] < rightMin {
				rightMin = x[i]
				right[k] = i
			}
		}

		prom[k] = h - math.Max(leftMin, rightMin)
	}
	return prom, left, right, nil
}

// Widths measures each peak at relHeight of its prominence below the peak
// (0.5 gives the full width at half maximum for peaks on a zero baseline).
//
// It returns the widths in samples, the evaluation heights and the
// interpolated left and right crossing positions.
func Widths(x []float64, idx []int, relHeight float64) (widths, heights, leftIPs, rightIPs []float64, err error) {
	if relHeight < 0 {
		return nil, nil, nil, nil, fmt.Errorf("peak width relative height must be >= 0: %v", relHeight)
	}
	prom, bases, ends, err := Prominences(x, idx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	widths = make([]float64, len(idx))
	heights = make([]float64, len(idx))
	leftIPs = make([]float64, len(idx))
	rightIPs = make([]float64, len(idx))

	for k, p := range idx {
		iMin, iMax := bases[k], ends[k]
		height := x[p] - prom[k]*relHeight
		heights[k] = height

		i := p
		for iMin < i && height < x[i] {
			i--
		}
		leftIP := float64(i)
		if x[i] < height {
			leftIP += (height - x[i]) / (x[i+1] - x[i])
		}

		i = p
		for i < iMax && height < x[i] {
			i++
		}
		rightIP := float64(i)
		if x[i] < height {
			rightIP -= (height - x[i]) / (x[i-1] - x[i])
		}

		widths[k] = rightIP - leftIP
		leftIPs[k] = leftIP
		rightIPs[k] = rightIP
	}
	return widths, heights, leftIPs, rightIPs, nil
}

// Detect finds all peaks of x, measures them at relHeight and returns them
// ordered by height, strongest first.
func Detect(x []float64, relHeight float64) ([]Peak, error) {
	idx := Find(x)
	if len(idx) == 0 {
		return nil, nil
	}
	SortByHeight(x, idx)

	prom, _, _, err := Prominences(x, idx)
	if err != nil {
		return nil, err
	}
	widths, heights, left, right, err := Widths(x, idx, relHeight)
	if err != nil {
		return nil, err
	}

	out := make([]Peak, len(idx))
	for k, p := range idx {
		out[k] = Peak{
			Index:       p,
			Height:      x[p],
			Prominence:  prom[k],
			Width:       widths[k],
			WidthHeight: heights[k],
			Left:        left[k],
			Right:       right[k],
		}
	}
	return out, nil
}

// GaussianSigma converts a full width measured at height of a Gaussian peak
// with the given amplitude into the Gaussian standard deviation:
//
//	sigma = width / sqrt(8 * ln(amplitude/height))
//
// For height == amplitude/2 this is the usual FWHM/2.3548. Degenerate inputs
// (height <= 0, height >= amplitude, non-finite results) yield 0.
func GaussianSigma(width, amplitude, height float64) float64 {
	if !(height > 0) || !(amplitude > height) {
		return 0
	}
	sigma := width / math.Sqrt(8*math.Log(amplitude/height))
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return 0
	}
	return sigma
}
