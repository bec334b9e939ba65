package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// LombScargle computes the Lomb-Scargle periodogram of the samples (x, y) at
// the given angular frequencies.
//
// For each frequency w the time offset tau is chosen so that the sine and
// cosine terms are orthogonal over the sample coordinates:
//
//	tan(2*w*tau) = sum(sin(2*w*x)) / sum(cos(2*w*x))
//	P(w) = 0.5 * [ (sum y*cos(w(x-tau)))^2 / sum cos^2(w(x-tau))
//	             + (sum y*sin(w(x-tau)))^2 / sum sin^2(w(x-tau)) ]
//
// The data is not pre-centered. With normalize set, the periodogram is scaled
// by 2/(y·y), the normalization used to fit mixtures to the spectrum shape.
//
// freqs must be non-zero; x and y must have the same non-zero length.
func LombScargle(x, y, freqs []float64, normalize bool) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("lomb-scargle requires non-empty samples")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("lomb-scargle x/y length mismatch: %d != %d", len(x), len(y))
	}

	out := make([]float64, len(freqs))
	for i, w := range freqs {
		if w == 0 {
			return nil, fmt.Errorf("lomb-scargle frequency must be non-zero at index %d", i)
		}

		var xc, xs, cc, ss, cs float64
		for j, t := range x {
			s, c := math.Sincos(w * t)
			xc += y[j] * c
			xs += y[j] * s
			cc += c * c
			ss += s * s
			cs += c * s
		}

		tau := math.Atan2(2*cs, cc-ss) / (2 * w)
		sTau, cTau := math.Sincos(w * tau)
		cTau2 := cTau * cTau
		sTau2 := sTau * sTau
		csTau := 2 * cTau * sTau

		re := cTau*xc + sTau*xs
		im := cTau*xs - sTau*xc
		out[i] = 0.5 * (re*re/(cTau2*cc+csTau*cs+sTau2*ss) +
			im*im/(cTau2*ss-csTau*cs+sTau2*cc))
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
