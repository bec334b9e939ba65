package series

import "fmt"

// Transformer is a fitted, reversible mapping of observation values.
//
// Fit estimates the parameters from y and the aligned input columns x.
// Forward and Backward return new slices and never modify their arguments.
type Transformer interface {
	Fit(x [][]float64, y []float64) error
	Forward(y []float64, x [][]float64) ([]float64, error)
	Backward(y []float64, x [][]float64) ([]float64, error)
}

// Series stores raw values, the transforms applied to them and the cached
// transformed values.
type Series struct {
	raw         []float64
	transforms  []Transformer
	transformed []float64
}

// New returns an untransformed series holding a copy of values.
func New(values []float64) *Series {
	raw := append([]float64(nil), values...)
	return &Series{
		raw:         raw,
		transformed: append([]float64(nil), raw...),
	}
}

// Len returns the number of values.
func (s *Series) Len() int {
	return len(s.raw)
}

// Values returns a copy of the raw values.
func (s *Series) Values() []float64 {
	return append([]float64(nil), s.raw...)
}

// Transformed returns a copy of the transformed values.
func (s *Series) Transformed() []float64 {
	return append([]float64(nil), s.transformed...)
}

// At returns the raw and transformed value at index i.
func (s *Series) At(i int) (raw, transformed float64) {
	return s.raw[i], s.transformed[i]
}

// Transformers returns the applied transforms in application order.
func (s *Series) Transformers() []Transformer {
	return append([]Transformer(nil), s.transforms...)
}

// Apply appends a fitted transformer to the chain and transforms the cached
// values with it. x holds the input columns aligned with the series.
func (s *Series) Apply(t Transformer, x [][]float64) error {
	out, err := t.Forward(s.transformed, x)
	if err != nil {
		return err
	}
	if len(out) != len(s.raw) {
		return fmt.Errorf("%w: transform returned %d values for %d", ErrDimensions, len(out), len(s.raw))
	}
	s.transforms = append(s.transforms, t)
	s.transformed = out
	return nil
}

// Forward passes values through the whole transform chain.
func (s *Series) Forward(values []float64, x [][]float64) ([]float64, error) {
	return s.ForwardN(values, x, len(s.transforms))
}

// ForwardN passes values through the first n transforms of the chain.
func (s *Series) ForwardN(values []float64, x [][]float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative chain length %d", ErrDimensions, n)
	}
	return s.ForwardEach(values, repeat(x, n))
}

// ForwardEach passes values through the first len(xs) transforms of the
// chain, giving transform k the input columns xs[k].
func (s *Series) ForwardEach(values []float64, xs [][][]float64) ([]float64, error) {
	if len(xs) > len(s.transforms) {
		return nil, fmt.Errorf("%w: %d input sets for %d transforms", ErrDimensions, len(xs), len(s.transforms))
	}
	out := append([]float64(nil), values...)
	for k, x := range xs {
		var err error
		if out, err = s.transforms[k].Forward(out, x); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Backward undoes the transform chain, last transform first.
func (s *Series) Backward(values []float64, x [][]float64) ([]float64, error) {
	return s.BackwardEach(values, repeat(x, len(s.transforms)))
}

// BackwardEach undoes the transform chain, giving transform k the input
// columns xs[k].
func (s *Series) BackwardEach(values []float64, xs [][][]float64) ([]float64, error) {
	if len(xs) != len(s.transforms) {
		return nil, fmt.Errorf("%w: %d input sets for %d transforms", ErrDimensions, len(xs), len(s.transforms))
	}
	out := append([]float64(nil), values...)
	for k := len(s.transforms) - 1; k >= 0; k-- {
		var err error
		if out, err = s.transforms[k].Backward(out, xs[k]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func repeat(x [][]float64, n int) [][][]float64 {
	xs := make([][][]float64, n)
	for k := range xs {
		xs[k] = x
	}
	return xs
}

// Select returns a new series holding the values at idx, in that order, with
// the same transform chain.
func (s *Series) Select(idx []int) *Series {
	out := &Series{
		raw:         make([]float64, len(idx)),
		transforms:  s.Transformers(),
		transformed: make([]float64, len(idx)),
	}
	for k, i := range idx {
		out.raw[k] = s.raw[i]
		out.transformed[k] = s.transformed[i]
	}
	return out
}

// Reset replaces the raw values and recomputes the transformed values with
// the existing chain. Transformers are not refitted.
func (s *Series) Reset(values []float64, x [][]float64) error {
	return s.ResetEach(values, repeat(x, len(s.transforms)))
}

// ResetEach is Reset with the input columns given per transform, as in
// ForwardEach.
func (s *Series) ResetEach(values []float64, xs [][][]float64) error {
	if len(xs) != len(s.transforms) {
		return fmt.Errorf("%w: %d input sets for %d transforms", ErrDimensions, len(xs), len(s.transforms))
	}
	transformed, err := s.ForwardEach(values, xs)
	if err != nil {
		return err
	}
	s.raw = append([]float64(nil), values...)
	s.transformed = transformed
	return nil
}

// Clone returns a copy of s. Transformers are shared since they are not
// modified after fitting.
func (s *Series) Clone() *Series {
	return &Series{
		raw:         s.Values(),
		transforms:  s.Transformers(),
		transformed: s.Transformed(),
	}
}
