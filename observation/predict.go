package observation

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/duration"
	"github.com/cwbudde/algo-gpdata/series"
)

// PredictionX returns the raw prediction inputs as rows.
func (d *Data) PredictionX() [][]float64 {
	cols := make([][]float64, len(d.xPred))
	for i, s := range d.xPred {
		cols[i] = s.Values()
	}
	return columnsToRows(cols)
}

// SetPredictionX sets the prediction inputs from rows shaped
// (n, inputDims) and clears stored predictions.
func (d *Data) SetPredictionX(rows [][]float64) error {
	cols := make([][]float64, d.InputDims())
	for i, row := range rows {
		if len(row) != d.InputDims() {
			return fmt.Errorf("%w: prediction row %d has %d columns, want %d", ErrInputDims, i, len(row), d.InputDims())
		}
		for dim, v := range row {
			cols[dim] = append(cols[dim], v)
		}
	}
	return d.setPredictionColumns(cols)
}

// SetPredictionRange sets n evenly spaced prediction inputs over
// [start, end] and clears stored predictions. Infinite bounds are clamped to
// the observed span.
func (d *Data) SetPredictionRange(start, end float64, n int) error {
	if err := d.requireSingleDim("prediction range"); err != nil {
		return err
	}
	start, end, err := d.clampToSpan(start, end)
	if err != nil {
		return err
	}
	if !(start < end) {
		return fmt.Errorf("%w: [%v, %v]", ErrEmptyRange, start, end)
	}
	if n < 2 {
		return fmt.Errorf("%w: prediction range needs at least 2 points: %d", ErrInvalidValue, n)
	}
	return d.setPredictionColumns([][]float64{floats.Span(make([]float64, n), start, end)})
}

// SetPredictionRangeStep sets prediction inputs start, start+step, ... up to
// and including end, and clears stored predictions.
func (d *Data) SetPredictionRangeStep(start, end float64, step duration.Step) error {
	if err := d.requireSingleDim("prediction range"); err != nil {
		return err
	}
	start, end, err := d.clampToSpan(start, end)
	if err != nil {
		return err
	}
	if !(start < end) {
		return fmt.Errorf("%w: [%v, %v]", ErrEmptyRange, start, end)
	}
	s, err := step.Along(d.timeAxis)
	if err != nil {
		return err
	}
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: prediction step must be finite and > 0: %v", ErrInvalidValue, s)
	}

	steps := (end - start) / s
	if k := math.Round(steps); core.NearlyEqual(steps, k, 1e-9) {
		steps = k
	}
	n := int(math.Floor(steps)) + 1
	x := make([]float64, n)
	for k := range x {
		x[k] = start + float64(k)*s
	}
	return d.setPredictionColumns([][]float64{x})
}

func (d *Data) setPredictionColumns(cols [][]float64) error {
	preds := make([]*series.Series, len(cols))
	for i, col := range cols {
		if ok, k := core.AllFinite(col); !ok {
			return fmt.Errorf("%w: prediction input %d of dimension %d is %v", ErrInvalidValue, k, i, col[k])
		}
		preds[i] = d.x[i].Clone()
		if err := preds[i].Reset(col, nil); err != nil {
			return err
		}
	}
	d.xPred = preds
	d.muPred = map[string][]float64{}
	d.varPred = map[string][]float64{}
	return nil
}

// SetPrediction stores a prediction made in transformed units at the
// prediction inputs. mu and variance must match the prediction grid.
func (d *Data) SetPrediction(name string, mu, variance []float64) error {
	n := d.xPred[0].Len()
	if len(mu) != n || len(variance) != n {
		return fmt.Errorf("%w: prediction %q has %d means and %d variances for %d inputs",
			ErrLength, name, len(mu), len(variance), n)
	}
	d.muPred[name] = append([]float64(nil), mu...)
	d.varPred[name] = append([]float64(nil), variance...)
	return nil
}

// Predictions returns the sorted names of the stored predictions.
func (d *Data) Predictions() []string {
	names := make([]string, 0, len(d.muPred))
	for name := range d.muPred {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prediction returns the raw prediction inputs and the named prediction in
// original units: the mean and the band mu ± sigma*sqrt(variance), both
// mapped back through the output transforms.
func (d *Data) Prediction(name string, sigma float64) (x [][]float64, mu, lower, upper []float64, err error) {
	m, ok := d.muPred[name]
	if !ok {
		return nil, nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownPrediction, name)
	}
	v := d.varPred[name]

	lo := make([]float64, len(m))
	hi := make([]float64, len(m))
	for i := range m {
		band := sigma * math.Sqrt(v[i])
		lo[i] = m[i] - band
		hi[i] = m[i] + band
	}

	xs, err := d.outputInputs(d.xPred)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if mu, err = d.y.BackwardEach(m, xs); err != nil {
		return nil, nil, nil, nil, err
	}
	if lower, err = d.y.BackwardEach(lo, xs); err != nil {
		return nil, nil, nil, nil, err
	}
	if upper, err = d.y.BackwardEach(hi, xs); err != nil {
		return nil, nil, nil, nil, err
	}
	return d.PredictionX(), mu, lower, upper, nil
}
