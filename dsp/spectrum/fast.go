package spectrum

import (
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/floats"
)

const (
	// fastOversampling is the FFT length per output frequency.
	fastOversampling = 8
	// fastOrder is the number of grid nodes each sample is spread onto.
	fastOrder = 6
	// fastFloor is the relative size below which a quadrature term is
	// treated as degenerate.
	fastFloor = 1e-9
)

// LombScargleFast computes the periodogram of LombScargle on Grid(maxFreq, n)
// with the Press-Rybicki method: samples are spread onto a uniform grid by
// Lagrange extirpolation and the trigonometric sums come from FFTs, so the
// cost is O(len(x) + n log n) instead of O(len(x) * n).
//
// maxFreq is angular. The result approximates LombScargle to about 1e-3
// of the peak power.
func LombScargleFast(x, y []float64, maxFreq float64, n int, normalize bool) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("lomb-scargle requires non-empty samples")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("lomb-scargle x/y length mismatch: %d != %d", len(x), len(y))
	}
	if _, err := Grid(maxFreq, n); err != nil {
		return nil, err
	}

	// Bin k of the trig sums is the cyclic frequency k*df; bin 0 is dropped.
	df := maxFreq / float64(n) / (2 * math.Pi)
	ch, sh, err := trigSums(x, y, df, n+1)
	if err != nil {
		return nil, err
	}
	ones := make([]float64, len(x))
	for i := range ones {
		ones[i] = 1
	}
	c2, s2, err := trigSums(x, ones, 2*df, n+1)
	if err != nil {
		return nil, err
	}

	count := float64(len(x))
	out := make([]float64, n)
	for k := 1; k <= n; k++ {
		theta := math.Atan2(s2[k], c2[k])
		sTau, cTau := math.Sincos(theta / 2)
		s2Tau, c2Tau := math.Sincos(theta)

		yc := ch[k]*cTau + sh[k]*sTau
		ys := sh[k]*cTau - ch[k]*sTau
		cc := 0.5 * (count + c2[k]*c2Tau + s2[k]*s2Tau)
		ss := 0.5 * (count - c2[k]*c2Tau - s2[k]*s2Tau)
		// When the samples are nearly aligned at 2w, extirpolation error
		// leaves ss near or below zero while ys does not vanish with it.
		var p float64
		if cc > fastFloor*count {
			p += yc * yc / cc
		}
		if ss > fastFloor*count {
			p += ys * ys / ss
		}
		out[k-1] = math.Max(0, 0.5*p)
	}

	if normalize {
		energy := floats.Dot(y, y)
		if energy == 0 {
			for i := range out {
				out[i] = 0
			}
			return out, nil
		}
		ScaleInPlace(out, 2/energy)
	}
	return out, nil
}

// trigSums returns C[k] = sum h*cos(2*pi*k*df*t) and S[k] = sum h*sin(...)
// for k in [0, bins).
func trigSums(t, h []float64, df float64, bins int) (c, s []float64, err error) {
	size := 1 << bits.Len(uint(bins*fastOversampling-1))
	t0 := floats.Min(t)

	grid := make([]complex128, size)
	for i, v := range t {
		_, frac := math.Modf((v - t0) * df)
		extirpolate(grid, frac*float64(size), h[i])
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, nil, fmt.Errorf("lomb-scargle fft plan: %w", err)
	}
	spec := make([]complex128, size)
	if err := plan.Forward(spec, grid); err != nil {
		return nil, nil, fmt.Errorf("lomb-scargle fft: %w", err)
	}

	c = make([]float64, bins)
	s = make([]float64, bins)
	for k := range c {
		// The grid is real, so conj(spec[k]) holds the sum with e^{+i...}.
		sum := complex(real(spec[k]), -imag(spec[k]))
		sin, cos := math.Sincos(2 * math.Pi * float64(k) * df * t0)
		sum *= complex(cos, sin)
		c[k] = real(sum)
		s[k] = imag(sum)
	}
	return c, s, nil
}

// extirpolate spreads value at fractional position p onto fastOrder
// neighbouring nodes of the periodic grid, with Lagrange weights, so that
// sum_j w_j*e^{i*a*m_j} approximates e^{i*a*p} for small a.
func extirpolate(grid []complex128, p, value float64) {
	size := len(grid)
	base := math.Floor(p)
	if p == base {
		grid[int(base)%size] += complex(value, 0)
		return
	}

	lo := int(base) - fastOrder/2 + 1
	for j := 0; j < fastOrder; j++ {
		node := float64(lo + j)
		w := 1.0
		for i := 0; i < fastOrder; i++ {
			if i != j {
				w *= (p - float64(lo+i)) / (node - float64(lo+i))
			}
		}
		idx := ((lo+j)%size + size) % size
		grid[idx] += complex(value*w, 0)
	}
}
