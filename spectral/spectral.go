package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/dsp/spectrum"
)

// Source provides the training data of each input dimension.
type Source interface {
	InputDims() int
	// TrainingSpectrumData returns the masked, transformed inputs along dim
	// and the aligned transformed observations.
	TrainingSpectrumData(dim int) (x, y []float64)
}

// Estimate holds per-dimension peak parameters, each shaped (dims, Q).
type Estimate struct {
	Amplitude [][]float64
	Mean      [][]float64
	Variance  [][]float64
}

func newEstimate(dims, q int) *Estimate {
	e := &Estimate{
		Amplitude: make([][]float64, dims),
		Mean:      make([][]float64, dims),
		Variance:  make([][]float64, dims),
	}
	for i := 0; i < dims; i++ {
		e.Amplitude[i] = make([]float64, q)
		e.Mean[i] = make([]float64, q)
		e.Variance[i] = make([]float64, q)
	}
	return e
}

// setPadded fills row dim with the peaks padded to the row length.
func (e *Estimate) setPadded(dim int, amplitudes, means, variances []float64) {
	q := len(e.Amplitude[dim])
	e.Amplitude[dim] = Pad(amplitudes, q)
	e.Mean[dim] = Pad(means, q)
	e.Variance[dim] = Pad(variances, q)
}

// Components returns Q, the number of peaks per dimension.
func (e *Estimate) Components() int {
	if len(e.Amplitude) == 0 {
		return 0
	}
	return len(e.Amplitude[0])
}

// Pad applies the peak padding policy: values are repeated cyclically until
// q entries exist, an empty input gives q zeros and a longer input is
// truncated.
func Pad(values []float64, q int) []float64 {
	return core.Cycle(values, q)
}

// Nyquist estimates the Nyquist frequency of each input dimension as 0.5
// divided by the smallest non-zero distance between training inputs. A
// dimension with fewer than two distinct inputs yields 0.
func Nyquist(src Source) []float64 {
	out := make([]float64, src.InputDims())
	for i := range out {
		x, _ := src.TrainingSpectrumData(i)
		if gap := spectrum.MinGap(x); gap > 0 {
			out[i] = 0.5 / gap
		}
	}
	return out
}

// periodogram evaluates the Lomb-Scargle periodogram on
// spectrum.Grid(maxFreq, cfg.GridPoints).
func periodogram(x, y []float64, maxFreq float64, cfg core.EstimatorConfig, normalize bool) (freqs, psd []float64, err error) {
	freqs, err = spectrum.Grid(maxFreq, cfg.GridPoints)
	if err != nil {
		return nil, nil, err
	}
	if cfg.FastPeriodogram {
		psd, err = spectrum.LombScargleFast(x, y, maxFreq, cfg.GridPoints, normalize)
	} else {
		psd, err = spectrum.LombScargle(x, y, freqs, normalize)
	}
	if err != nil {
		return nil, nil, err
	}
	return freqs, psd, nil
}

func config(defaultPoints int, opts []core.EstimatorOption) (core.EstimatorConfig, error) {
	cfg := core.ApplyEstimatorOptions(defaultPoints, opts...)
	if cfg.Components < 1 {
		return cfg, fmt.Errorf("%w: components must be >= 1: %d", ErrConfig, cfg.Components)
	}
	if cfg.GridPoints < 2 {
		return cfg, fmt.Errorf("%w: grid points must be >= 2: %d", ErrConfig, cfg.GridPoints)
	}
	if cfg.MaxEvaluations < 0 {
		return cfg, fmt.Errorf("%w: max evaluations must be >= 0: %d", ErrConfig, cfg.MaxEvaluations)
	}
	return cfg, nil
}
