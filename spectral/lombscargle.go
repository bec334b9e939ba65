package spectral

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/dsp/peaks"
)

// DefaultLombScarglePoints is the default periodogram grid size.
const DefaultLombScarglePoints = 50000

// LombScargle estimates peaks from the Lomb-Scargle periodogram of each
// dimension. Amplitudes are periodogram heights; widths are measured at half
// prominence and converted to Gaussian standard deviations.
func LombScargle(src Source, opts ...core.EstimatorOption) (*Estimate, error) {
	cfg, err := config(DefaultLombScarglePoints, opts)
	if err != nil {
		return nil, err
	}

	dims := src.InputDims()
	est := newEstimate(dims, cfg.Components)
	nyquist := Nyquist(src)
	for i := 0; i < dims; i++ {
		if nyquist[i] == 0 {
			klog.V(2).InfoS("lomb-scargle skipped dimension without spacing", "dim", i)
			continue
		}
		x, y := src.TrainingSpectrumData(i)

		freqs, psd, err := periodogram(x, y, 2*math.Pi*nyquist[i], cfg, false)
		if err != nil {
			return nil, fmt.Errorf("lomb-scargle dim %d: %w", i, err)
		}
		found, err := peaks.Detect(psd, 0.5)
		if err != nil {
			return nil, fmt.Errorf("lomb-scargle dim %d: %w", i, err)
		}
		klog.V(2).InfoS("lomb-scargle peaks", "dim", i, "nyquist", nyquist[i], "found", len(found), "components", cfg.Components)
		if len(found) == 0 {
			continue
		}

		amplitudes, positions, variances := peakTriples(found, freqs)
		est.setPadded(i, amplitudes, positions, variances)
	}
	return est, nil
}

// peakTriples converts peaks on an angular frequency grid into heights,
// positions in cycles and Gaussian widths in cycles.
func peakTriples(found []peaks.Peak, freqs []float64) (amplitudes, positions, variances []float64) {
	df := freqs[0]
	if len(freqs) > 1 {
		df = freqs[1] - freqs[0]
	}
	amplitudes = make([]float64, len(found))
	positions = make([]float64, len(found))
	variances = make([]float64, len(found))
	for k, p := range found {
		width := p.Width * df / (2 * math.Pi)
		amplitudes[k] = p.Height
		positions[k] = freqs[p.Index] / (2 * math.Pi)
		variances[k] = peaks.GaussianSigma(width, p.Height, p.WidthHeight)
	}
	return amplitudes, positions, variances
}
