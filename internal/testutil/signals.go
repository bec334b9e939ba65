package testutil

import (
	"math"
	"math/rand/v2"
	"sort"
)

// UniformGrid returns n evenly spaced coordinates start, start+step, ...
func UniformGrid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// IrregularGrid returns n sorted coordinates drawn uniformly from [start, end)
// with a fixed seed, so that tests on unevenly sampled data are reproducible.
func IrregularGrid(seed uint64, n int, start, end float64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + rng.Float64()*(end-start)
	}
	sort.Float64s(out)
	return out
}

// Sine evaluates amplitude*sin(2*pi*freq*x) at every coordinate of x.
// freq is in cycles per axis unit.
func Sine(x []float64, freq, amplitude float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*v)
	}
	return out
}

// Add returns the element-wise sum of equally long slices.
func Add(parts ...[]float64) []float64 {
	if len(parts) == 0 {
		return nil
	}
	out := make([]float64, len(parts[0]))
	for _, p := range parts {
		for i := range out {
			out[i] += p[i]
		}
	}
	return out
}

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 1))
	out := make([]float64, length)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
