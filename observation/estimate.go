package observation

import (
	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/spectral"
)

// TrainingSpectrumData returns the training inputs along dim and the
// training outputs, both in transformed units.
func (d *Data) TrainingSpectrumData(dim int) (x, y []float64) {
	return masked(d.x[dim].Transformed(), d.mask), masked(d.y.Transformed(), d.mask)
}

// NyquistEstimation estimates the Nyquist frequency of each input dimension.
func (d *Data) NyquistEstimation() []float64 {
	return spectral.Nyquist(d)
}

// BNSEEstimation estimates spectral peaks with Bayesian non-parametric
// spectral estimation.
func (d *Data) BNSEEstimation(opts ...core.EstimatorOption) (*spectral.Estimate, error) {
	return spectral.BNSE(d, opts...)
}

// LombScargleEstimation estimates spectral peaks from the Lomb-Scargle
// periodogram.
func (d *Data) LombScargleEstimation(opts ...core.EstimatorOption) (*spectral.Estimate, error) {
	return spectral.LombScargle(d, opts...)
}

// GMMEstimation estimates spectral peaks with a Gaussian mixture fitted to
// the normalized periodogram.
func (d *Data) GMMEstimation(opts ...core.EstimatorOption) (*spectral.Estimate, error) {
	return spectral.GaussianMixture(d, opts...)
}

var _ spectral.Source = (*Data)(nil)
