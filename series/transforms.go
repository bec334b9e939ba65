package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Linear maps y to (y-Offset)/Scale.
type Linear struct {
	Scale  float64
	Offset float64
}

// NewLinear returns a linear transform.
func NewLinear(scale, offset float64) *Linear {
	return &Linear{Scale: scale, Offset: offset}
}

// Fit only validates the parameters.
func (t *Linear) Fit(_ [][]float64, _ []float64) error {
	if t.Scale == 0 {
		return fmt.Errorf("%w: linear scale must be non-zero", ErrDegenerate)
	}
	return nil
}

// Forward returns (y-Offset)/Scale.
func (t *Linear) Forward(y []float64, _ [][]float64) ([]float64, error) {
	out := append([]float64(nil), y...)
	floats.AddConst(-t.Offset, out)
	floats.Scale(1/t.Scale, out)
	return out, nil
}

// Backward returns Scale*y+Offset.
func (t *Linear) Backward(y []float64, _ [][]float64) ([]float64, error) {
	out := append([]float64(nil), y...)
	floats.Scale(t.Scale, out)
	floats.AddConst(t.Offset, out)
	return out, nil
}

// Normalize maps the fitted range [min, max] onto [-1, 1].
type Normalize struct {
	Min, Max float64
}

// NewNormalize returns an unfitted normalize transform.
func NewNormalize() *Normalize {
	return &Normalize{}
}

// Fit records the range of y.
func (t *Normalize) Fit(_ [][]float64, y []float64) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: normalize needs data", ErrDegenerate)
	}
	t.Min, t.Max = floats.Min(y), floats.Max(y)
	if t.Min == t.Max {
		return fmt.Errorf("%w: normalize range is empty: %v", ErrDegenerate, t.Min)
	}
	return nil
}

// Forward returns -1 + 2*(y-Min)/(Max-Min).
func (t *Normalize) Forward(y []float64, _ [][]float64) ([]float64, error) {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = -1 + 2*(v-t.Min)/(t.Max-t.Min)
	}
	return out, nil
}

// Backward returns (y+1)/2*(Max-Min)+Min.
func (t *Normalize) Backward(y []float64, _ [][]float64) ([]float64, error) {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = (v+1)/2*(t.Max-t.Min) + t.Min
	}
	return out, nil
}

// Detrend removes a least-squares polynomial trend in the single input
// dimension.
type Detrend struct {
	Degree int
	// Coef holds the polynomial coefficients, constant term first.
	Coef []float64
}

// NewDetrend returns a linear detrend transform.
func NewDetrend() *Detrend {
	return &Detrend{Degree: 1}
}

// Fit solves the least-squares polynomial of y over x[0].
func (t *Detrend) Fit(x [][]float64, y []float64) error {
	if err := checkSingleDim(x, y); err != nil {
		return err
	}
	if t.Degree < 0 {
		return fmt.Errorf("%w: detrend degree must be >= 0: %d", ErrDegenerate, t.Degree)
	}
	cols := t.Degree + 1
	if len(y) < cols {
		return fmt.Errorf("%w: detrend of degree %d needs %d points: %d", ErrDegenerate, t.Degree, cols, len(y))
	}

	a := mat.NewDense(len(y), cols, nil)
	for i, v := range x[0] {
		p := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, p)
			p *= v
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, mat.NewVecDense(len(y), append([]float64(nil), y...))); err != nil {
		return fmt.Errorf("%w: detrend: %v", ErrDegenerate, err)
	}
	t.Coef = make([]float64, cols)
	for j := range t.Coef {
		t.Coef[j] = coef.AtVec(j)
	}
	return nil
}

// Forward subtracts the trend.
func (t *Detrend) Forward(y []float64, x [][]float64) ([]float64, error) {
	return t.shift(y, x, -1)
}

// Backward adds the trend back.
func (t *Detrend) Backward(y []float64, x [][]float64) ([]float64, error) {
	return t.shift(y, x, 1)
}

func (t *Detrend) shift(y []float64, x [][]float64, sign float64) ([]float64, error) {
	if err := checkSingleDim(x, y); err != nil {
		return nil, err
	}
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = v + sign*t.eval(x[0][i])
	}
	return out, nil
}

func (t *Detrend) eval(v float64) float64 {
	var sum float64
	for j := len(t.Coef) - 1; j >= 0; j-- {
		sum = sum*v + t.Coef[j]
	}
	return sum
}

// Log takes the logarithm of values shifted so that the fitted minimum maps
// to log(1), then removes the mean. Values at or below -Shift yield NaN.
type Log struct {
	Shift float64
	Mean  float64
}

// NewLog returns an unfitted log transform.
func NewLog() *Log {
	return &Log{}
}

// Fit computes the shift 1-min(y) and the mean of the shifted logarithm.
func (t *Log) Fit(_ [][]float64, y []float64) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: log needs data", ErrDegenerate)
	}
	t.Shift = 1 - floats.Min(y)
	logs := make([]float64, len(y))
	for i, v := range y {
		logs[i] = math.Log(v + t.Shift)
	}
	t.Mean = stat.Mean(logs, nil)
	return nil
}

// Forward returns log(y+Shift)-Mean.
func (t *Log) Forward(y []float64, _ [][]float64) ([]float64, error) {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = math.Log(v+t.Shift) - t.Mean
	}
	return out, nil
}

// Backward returns exp(y+Mean)-Shift.
func (t *Log) Backward(y []float64, _ [][]float64) ([]float64, error) {
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = math.Exp(v+t.Mean) - t.Shift
	}
	return out, nil
}

// Whiten standardizes values to zero mean and unit population variance.
type Whiten struct {
	Mean, Std float64
}

// NewWhiten returns an unfitted whitening transform.
func NewWhiten() *Whiten {
	return &Whiten{}
}

// Fit records the mean and population standard deviation of y.
func (t *Whiten) Fit(_ [][]float64, y []float64) error {
	if len(y) == 0 {
		return fmt.Errorf("%w: whiten needs data", ErrDegenerate)
	}
	t.Mean, t.Std = stat.PopMeanStdDev(y, nil)
	if !(t.Std > 0) {
		return fmt.Errorf("%w: whiten standard deviation is %v", ErrDegenerate, t.Std)
	}
	return nil
}

// Forward returns (y-Mean)/Std.
func (t *Whiten) Forward(y []float64, _ [][]float64) ([]float64, error) {
	out := append([]float64(nil), y...)
	floats.AddConst(-t.Mean, out)
	floats.Scale(1/t.Std, out)
	return out, nil
}

// Backward returns y*Std+Mean.
func (t *Whiten) Backward(y []float64, _ [][]float64) ([]float64, error) {
	out := append([]float64(nil), y...)
	floats.Scale(t.Std, out)
	floats.AddConst(t.Mean, out)
	return out, nil
}

func checkSingleDim(x [][]float64, y []float64) error {
	if len(x) != 1 {
		return fmt.Errorf("%w: need exactly one input dimension: %d", ErrDimensions, len(x))
	}
	if len(x[0]) != len(y) {
		return fmt.Errorf("%w: x/y length mismatch: %d != %d", ErrDimensions, len(x[0]), len(y))
	}
	return nil
}

var (
	_ Transformer = (*Linear)(nil)
	_ Transformer = (*Normalize)(nil)
	_ Transformer = (*Detrend)(nil)
	_ Transformer = (*Log)(nil)
	_ Transformer = (*Whiten)(nil)
)
