package mixture

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	errEmptySamples  = errors.New("mixture samples must not be empty")
	errNoComponents  = errors.New("mixture needs at least one initial mean")
	errZeroMass      = errors.New("mixture sample weights sum to zero")
	errNegativeValue = errors.New("mixture sample weights must be >= 0")
)

const minComponentMass = 10 * 2.220446049250313e-16

// Model is a fitted one-dimensional Gaussian mixture.
type Model struct {
	Weights    []float64 // mixing proportions, summing to 1
	Means      []float64
	Variances  []float64
	LowerBound float64 // weighted mean log-likelihood at the last iteration
	Iterations int
	Converged  bool
}

// Option configures a fit.
type Option func(*config)

type config struct {
	maxIter  int
	tol      float64
	regCovar float64
}

func defaultConfig() config {
	return config{
		maxIter:  100,
		tol:      1e-3,
		regCovar: 1e-6,
	}
}

// WithMaxIterations limits the number of EM iterations.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIter = n
		}
	}
}

// WithTolerance sets the convergence threshold on the change of the weighted
// mean log-likelihood between iterations.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

// WithRegularization adds reg to every component variance to keep it
// positive.
func WithRegularization(reg float64) Option {
	return func(c *config) {
		if reg >= 0 {
			c.regCovar = reg
		}
	}
}

// Fit fits len(means) Gaussian components to the samples x with the given
// non-negative weights. A nil weights slice weighs every sample equally.
func Fit(x, weights, means []float64, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(x) == 0 {
		return nil, errEmptySamples
	}
	if len(means) == 0 {
		return nil, errNoComponents
	}
	if weights == nil {
		weights = make([]float64, len(x))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(x) {
		return nil, fmt.Errorf("mixture weights length mismatch: %d != %d", len(weights), len(x))
	}
	for _, w := range weights {
		if w < 0 {
			return nil, errNegativeValue
		}
	}
	total := floats.Sum(weights)
	if !(total > 0) {
		return nil, errZeroMass
	}

	k := len(means)
	m := &Model{
		Weights:   make([]float64, k),
		Means:     append([]float64(nil), means...),
		Variances: make([]float64, k),
	}
	m.initialize(x, weights, total, cfg.regCovar)

	resp := make([][]float64, k)
	for j := range resp {
		resp[j] = make([]float64, len(x))
	}
	logProb := make([]float64, k)
	wr := make([]float64, len(x))

	m.LowerBound = math.Inf(-1)
	for iter := 1; iter <= cfg.maxIter; iter++ {
		prev := m.LowerBound

		// E-step: responsibilities and weighted mean log-likelihood.
		var ll float64
		for i, v := range x {
			for j := range logProb {
				logProb[j] = math.Log(m.Weights[j]) + logNormal(v, m.Means[j], m.Variances[j])
			}
			norm := floats.LogSumExp(logProb)
			for j := range logProb {
				resp[j][i] = math.Exp(logProb[j] - norm)
			}
			ll += weights[i] * norm
		}
		m.LowerBound = ll / total

		// M-step.
		for j := 0; j < k; j++ {
			vecmath.MulBlock(wr, weights, resp[j])
			nk := floats.Sum(wr) + minComponentMass
			m.Weights[j] = nk / (total + float64(k)*minComponentMass)
			if nk <= minComponentMass*2 {
				continue
			}
			mean, variance := stat.PopMeanVariance(x, wr)
			m.Means[j] = mean
			m.Variances[j] = variance + cfg.regCovar
		}

		m.Iterations = iter
		if math.Abs(m.LowerBound-prev) < cfg.tol {
			m.Converged = true
			break
		}
	}

	return m, nil
}

// initialize sets weights and variances from a hard assignment of every
// sample to its nearest initial mean. Components that receive no mass get the
// overall variance and a vanishing weight.
func (m *Model) initialize(x, weights []float64, total, reg float64) {
	k := len(m.Means)
	mass := make([]float64, k)
	sq := make([]float64, k)

	for i, v := range x {
		best := 0
		for j := 1; j < k; j++ {
			if math.Abs(v-m.Means[j]) < math.Abs(v-m.Means[best]) {
				best = j
			}
		}
		d := v - m.Means[best]
		mass[best] += weights[i]
		sq[best] += weights[i] * d * d
	}

	_, overall := stat.PopMeanVariance(x, weights)
	for j := range m.Means {
		m.Weights[j] = (mass[j] + minComponentMass) / (total + float64(k)*minComponentMass)
		if mass[j] > 0 && sq[j] > 0 {
			m.Variances[j] = sq[j]/mass[j] + reg
		} else {
			m.Variances[j] = overall + reg
		}
	}
}

// Density evaluates the mixture density at v.
func (m *Model) Density(v float64) float64 {
	var sum float64
	for j := range m.Means {
		sum += m.Weights[j] * math.Exp(logNormal(v, m.Means[j], m.Variances[j]))
	}
	return sum
}

func logNormal(v, mean, variance float64) float64 {
	d := v - mean
	return -0.5 * (math.Log(2*math.Pi*variance) + d*d/variance)
}
