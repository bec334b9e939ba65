package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// AllFinite reports whether every value of data is finite. It returns the index
// of the first offending value, or -1.
func AllFinite(data []float64) (bool, int) {
	for i, v := range data {
		if !IsFinite(v) {
			return false, i
		}
	}
	return true, -1
}

// Cycle returns a slice of length n that repeats values cyclically, starting
// over at values[0] after the last element. A nil or empty input yields n
// zeros; an input longer than n is truncated.
func Cycle(values []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(values) == 0 {
		return out
	}
	for i := range out {
		out[i] = values[i%len(values)]
	}
	return out
}
