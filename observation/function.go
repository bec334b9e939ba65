package observation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

var errNilFunc = errors.New("observation: nil function")

// LoadFunction samples f at n inputs between start and end, one bound per
// input dimension, and adds i.i.d. Gaussian noise with the given variance.
// Inputs are evenly spaced with both ends included, or uniform random with
// WithRandomInputs. f is evaluated once and kept as the latent function.
func LoadFunction(f Func, start, end []float64, n int, variance float64, opts ...Option) (*Data, error) {
	if f == nil {
		return nil, errNilFunc
	}
	if len(start) == 0 {
		return nil, fmt.Errorf("%w: no input dimensions", ErrInputDims)
	}
	if len(start) != len(end) {
		return nil, fmt.Errorf("%w: %d starts and %d ends", ErrLength, len(start), len(end))
	}
	for i := range start {
		if !(start[i] < end[i]) {
			return nil, fmt.Errorf("%w: dimension %d: [%v, %v]", ErrEmptyRange, i, start[i], end[i])
		}
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: need at least one point: %d", ErrInvalidValue, n)
	}
	if !(variance >= 0) || math.IsInf(variance, 0) {
		return nil, fmt.Errorf("%w: noise variance must be finite and >= 0: %v", ErrInvalidValue, variance)
	}

	o := applyOptions(opts)
	cols := make([][]float64, len(start))
	for i := range cols {
		cols[i] = make([]float64, n)
		switch {
		case o.randomInputs:
			for k := range cols[i] {
				cols[i][k] = start[i] + o.rng.Float64()*(end[i]-start[i])
			}
		case n == 1:
			cols[i][0] = start[i]
		default:
			floats.Span(cols[i], start[i], end[i])
		}
	}

	y := f(columnsToRows(cols))
	if len(y) != n {
		return nil, fmt.Errorf("%w: function returned %d values for %d inputs", ErrLength, len(y), n)
	}
	if variance > 0 {
		noise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance), Src: o.rng}
		for i := range y {
			y[i] += noise.Rand()
		}
	}

	data, err := newData(cols, y, false, o)
	if err != nil {
		return nil, err
	}
	data.f = f
	return data, nil
}

// SetFunction sets the latent function, the noise-free signal behind the
// observations. f is checked with a single zero row.
func (d *Data) SetFunction(f Func) error {
	if f == nil {
		return errNilFunc
	}
	zero := [][]float64{make([]float64, d.InputDims())}
	if got := f(zero); len(got) != 1 {
		return fmt.Errorf("%w: function returned %d values for 1 input", ErrLength, len(got))
	}
	d.f = f
	return nil
}

// Function returns the latent function, or nil.
func (d *Data) Function() Func {
	return d.f
}

// EvalFunction evaluates the latent function at the given input rows.
func (d *Data) EvalFunction(x [][]float64) ([]float64, error) {
	if d.f == nil {
		return nil, errNilFunc
	}
	y := d.f(x)
	if len(y) != len(x) {
		return nil, fmt.Errorf("%w: function returned %d values for %d inputs", ErrLength, len(y), len(x))
	}
	return y, nil
}

func columnsToRows(cols [][]float64) [][]float64 {
	if len(cols) == 0 {
		return nil
	}
	rows := make([][]float64, len(cols[0]))
	for k := range rows {
		rows[k] = make([]float64, len(cols))
		for i, col := range cols {
			rows[k][i] = col[k]
		}
	}
	return rows
}
