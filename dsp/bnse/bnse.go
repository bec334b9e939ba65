package bnse

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/dsp/peaks"
	"github.com/cwbudde/algo-gpdata/dsp/spectrum"
)

var (
	errNoFreqSpace = errors.New("bnse: frequency space not set")
	errNoMoments   = errors.New("bnse: moments not computed")
	errSingular    = errors.New("bnse: covariance matrix is not positive definite")
)

const (
	defaultEvaluations = 400
	defaultJitter      = 1e-5
	penalty            = 1e300
)

// Option configures an Estimator.
type Option func(*config)

type config struct {
	evaluations int
	jitter      float64
	initial     *Hyperparameters
}

// WithMaxEvaluations limits the likelihood evaluations spent in Train.
func WithMaxEvaluations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.evaluations = n
		}
	}
}

// WithJitter sets the diagonal jitter, relative to sigma^2, added to the
// covariance matrix.
func WithJitter(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.jitter = v
		}
	}
}

// WithHyperparameters replaces the data-driven initial hyperparameters.
func WithHyperparameters(h Hyperparameters) Option {
	return func(c *config) {
		c.initial = &h
	}
}

// Estimator performs Bayesian non-parametric spectral estimation on one
// series. Use it in order: SetFreqSpace, Train, ComputeMoments, FreqPeaks.
type Estimator struct {
	cfg    config
	t, y   []float64 // centered sample times and observations
	alpha  float64   // window precision
	params Hyperparameters

	freqs  []float64
	meanRe []float64
	meanIm []float64
}

// New creates an estimator for samples (x, y).
func New(x, y []float64, opts ...Option) (*Estimator, error) {
	cfg := config{
		evaluations: defaultEvaluations,
		jitter:      defaultJitter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(x) < 2 {
		return nil, fmt.Errorf("bnse: need at least 2 samples: %d", len(x))
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("bnse: x/y length mismatch: %d != %d", len(x), len(y))
	}
	lo, hi := floats.Min(x), floats.Max(x)
	span := hi - lo
	if !(span > 0) {
		return nil, fmt.Errorf("bnse: sample times must span a non-zero interval")
	}

	center := (lo + hi) / 2
	t := make([]float64, len(x))
	for i, v := range x {
		t[i] = v - center
	}

	_, std := stat.PopMeanStdDev(y, nil)
	if !(std > 0) {
		std = 1
	}
	lengthScale := 10 * span / float64(len(x)-1)

	e := &Estimator{
		cfg:   cfg,
		t:     t,
		y:     append([]float64(nil), y...),
		alpha: 0.5 / ((span / 2) * (span / 2)),
		params: Hyperparameters{
			Sigma: std,
			Gamma: 0.5 / (lengthScale * lengthScale),
			Theta: 0,
			Noise: std / 10,
		},
	}
	if cfg.initial != nil {
		e.params = *cfg.initial
	}
	return e, nil
}

// Hyperparameters returns the current kernel and noise parameters.
func (e *Estimator) Hyperparameters() Hyperparameters {
	return e.params
}

// SetFreqSpace sets the evaluation grid to n frequencies covering [0, maxFreq]
// in cycles per unit.
func (e *Estimator) SetFreqSpace(maxFreq float64, n int) error {
	freqs, err := spectrum.Space(maxFreq, n)
	if err != nil {
		return fmt.Errorf("bnse: %w", err)
	}
	e.freqs = freqs
	e.meanRe, e.meanIm = nil, nil
	return nil
}

// LogLikelihood returns the log marginal likelihood of the observations under
// the current hyperparameters.
func (e *Estimator) LogLikelihood() (float64, error) {
	ll, _, err := e.evaluate(e.params)
	return ll, err
}

// Train maximizes the log marginal likelihood over the hyperparameters. If the
// search ends on a worse point than it started from, the initial values are
// kept.
func (e *Estimator) Train() error {
	start, _, err := e.evaluate(e.params)
	if err != nil {
		return err
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			ll, _, err := e.evaluate(unpack(p))
			if err != nil || math.IsNaN(ll) {
				return penalty
			}
			return -ll
		},
	}
	settings := &optimize.Settings{FuncEvaluations: e.cfg.evaluations}

	result, err := optimize.Minimize(problem, e.params.pack(), settings, &optimize.NelderMead{})
	if result == nil {
		return fmt.Errorf("bnse: training failed: %w", err)
	}
	if err != nil {
		klog.V(3).InfoS("bnse training stopped early", "err", err)
	}

	if trained := unpack(result.X); -result.F > start && !math.IsNaN(result.F) {
		e.params = trained
	}
	klog.V(3).InfoS("bnse trained",
		"sigma", e.params.Sigma, "gamma", e.params.Gamma,
		"theta", e.params.Theta, "noise", e.params.Noise,
		"evaluations", result.Stats.FuncEvaluations)
	e.meanRe, e.meanIm = nil, nil
	return nil
}

// ComputeMoments evaluates the posterior mean of the real and imaginary parts
// of the windowed spectrum on the frequency grid.
func (e *Estimator) ComputeMoments() error {
	if len(e.freqs) == 0 {
		return errNoFreqSpace
	}
	_, weights, err := e.evaluate(e.params)
	if err != nil {
		return err
	}

	re := make([]float64, len(e.freqs))
	im := make([]float64, len(e.freqs))
	for k, xi := range e.freqs {
		var sr, si float64
		for i, s := range e.t {
			cr, ci := e.params.crossCovariance(xi, s, e.alpha)
			sr += cr * weights[i]
			si += ci * weights[i]
		}
		re[k] = sr
		im[k] = si
	}
	e.meanRe, e.meanIm = re, im
	return nil
}

// PSD returns the frequency grid and the power of the posterior mean spectrum.
func (e *Estimator) PSD() (freqs, psd []float64, err error) {
	if e.meanRe == nil {
		return nil, nil, errNoMoments
	}
	psd, err = spectrum.Power(e.meanRe, e.meanIm)
	if err != nil {
		return nil, nil, err
	}
	return e.freqs, psd, nil
}

// FreqPeaks returns the PSD peaks ordered by strength: their heights, their
// positions in cycles per unit and their Gaussian-equivalent widths. It
// returns empty slices if moments have not been computed or no peak exists.
func (e *Estimator) FreqPeaks() (amplitudes, positions, variances []float64) {
	freqs, psd, err := e.PSD()
	if err != nil || len(freqs) < 2 {
		return nil, nil, nil
	}
	found, err := peaks.Detect(psd, 0.5)
	if err != nil {
		return nil, nil, nil
	}

	df := freqs[1] - freqs[0]
	for _, p := range found {
		amplitudes = append(amplitudes, p.Height)
		positions = append(positions, freqs[p.Index])
		variances = append(variances, peaks.GaussianSigma(p.Width*df, p.Height, p.WidthHeight))
	}
	return amplitudes, positions, variances
}

// evaluate returns the log marginal likelihood and the GP weights
// (K + noise^2*I)^-1 y for h.
func (e *Estimator) evaluate(h Hyperparameters) (float64, []float64, error) {
	n := len(e.t)
	jitter := e.cfg.jitter * h.Sigma * h.Sigma
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := h.kernel(e.t[i] - e.t[j])
			if i == j {
				v += h.Noise*h.Noise + jitter
			}
			cov.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return math.Inf(-1), nil, errSingular
	}

	var w mat.VecDense
	if err := chol.SolveVecTo(&w, mat.NewVecDense(n, e.y)); err != nil {
		return math.Inf(-1), nil, fmt.Errorf("bnse: %w", err)
	}
	weights := w.RawVector().Data

	fit := floats.Dot(e.y, weights)
	ll := -0.5*fit - 0.5*chol.LogDet() - 0.5*float64(n)*math.Log(2*math.Pi)
	return ll, weights, nil
}
