package observation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/series"
)

// Range is a closed interval on an input axis.
type Range struct {
	Start, End float64
}

// Func is a latent function evaluated on input rows shaped (n, inputDims).
type Func func(x [][]float64) []float64

// Data holds the observations of one output channel.
type Data struct {
	name     string
	xLabels  []string
	yLabel   string
	timeAxis bool

	x []*series.Series
	y *series.Series
	// yDepth[k] is the length of the input transform chains when output
	// transform k was applied.
	yDepth  []int
	mask    []bool
	removed [][]Range

	xPred   []*series.Series
	muPred  map[string][]float64
	varPred map[string][]float64

	f   Func
	rng *rand.Rand
}

// Option configures construction of a Data value.
type Option func(*options)

type options struct {
	name         string
	xLabels      []string
	yLabel       string
	rng          *rand.Rand
	randomInputs bool
}

// WithName sets the data name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLabels sets one label per input dimension and the output label.
func WithLabels(xLabels []string, yLabel string) Option {
	return func(o *options) {
		o.xLabels = append([]string(nil), xLabels...)
		o.yLabel = yLabel
	}
}

// WithRand sets the generator used by random removal and by LoadFunction.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithRandomInputs makes LoadFunction draw inputs uniformly instead of on an
// even grid. Other constructors ignore it.
func WithRandomInputs() Option {
	return func(o *options) {
		o.randomInputs = true
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	return o
}

// New creates data with a single numeric input axis.
func New(x, y []float64, opts ...Option) (*Data, error) {
	return newData([][]float64{x}, y, false, applyOptions(opts))
}

// NewMulti creates data from input rows shaped (n, inputDims).
func NewMulti(rows [][]float64, y []float64, opts ...Option) (*Data, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrNoData)
	}
	dims := len(rows[0])
	if dims == 0 {
		return nil, fmt.Errorf("%w: rows have no columns", ErrInputDims)
	}
	cols := make([][]float64, dims)
	for d := range cols {
		cols[d] = make([]float64, len(rows))
	}
	for i, row := range rows {
		if len(row) != dims {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInputDims, i, len(row), dims)
		}
		for d, v := range row {
			cols[d][i] = v
		}
	}
	return newData(cols, y, false, applyOptions(opts))
}

// NewFromMap creates data from labeled input columns. labels selects the
// columns and fixes the order of the input dimensions.
func NewFromMap(cols map[string][]float64, labels []string, y []float64, opts ...Option) (*Data, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: labels are required for mapped input", ErrInputDims)
	}
	ordered := make([][]float64, len(labels))
	for d, label := range labels {
		col, ok := cols[label]
		if !ok {
			return nil, fmt.Errorf("%w: missing input column %q", ErrInputDims, label)
		}
		ordered[d] = col
	}
	o := applyOptions(opts)
	if o.xLabels == nil {
		o.xLabels = append([]string(nil), labels...)
	}
	return newData(ordered, y, false, o)
}

// NewFromTime creates data on a time axis. Instants are stored as Unix
// seconds.
func NewFromTime(t []time.Time, y []float64, opts ...Option) (*Data, error) {
	x := make([]float64, len(t))
	for i, v := range t {
		x[i] = Seconds(v)
	}
	return newData([][]float64{x}, y, true, applyOptions(opts))
}

// Seconds converts t to the float64 axis value of a time axis.
func Seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Time converts a time axis value back to an instant in UTC.
func Time(v float64) time.Time {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).UTC()
}

func newData(cols [][]float64, y []float64, timeAxis bool, o options) (*Data, error) {
	n := len(y)
	if n == 0 {
		return nil, fmt.Errorf("%w: Y is empty", ErrNoData)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no input dimensions", ErrInputDims)
	}
	for d, col := range cols {
		if len(col) != n {
			return nil, fmt.Errorf("%w: X dimension %d has %d values, Y has %d", ErrLength, d, len(col), n)
		}
		if ok, i := core.AllFinite(col); !ok {
			return nil, fmt.Errorf("%w: X dimension %d index %d is %v", ErrInvalidValue, d, i, col[i])
		}
	}

	dims := len(cols)
	xLabels := o.xLabels
	switch {
	case xLabels == nil && dims == 1:
		xLabels = []string{"X"}
	case xLabels == nil:
		xLabels = make([]string, dims)
		for d := range xLabels {
			xLabels[d] = fmt.Sprintf("X%d", d)
		}
	case len(xLabels) != dims:
		return nil, fmt.Errorf("%w: %d labels for %d input dimensions", ErrInputDims, len(xLabels), dims)
	}
	yLabel := o.yLabel
	if yLabel == "" {
		yLabel = "Y"
	}
	name := o.name
	if name == "" {
		name = o.yLabel
	}

	ys := append([]float64(nil), y...)
	xs := make([][]float64, dims)
	for d, col := range cols {
		xs[d] = append([]float64(nil), col...)
	}
	if dims == 1 {
		sortAxis(xs[0], ys)
	}

	data := &Data{
		name:     name,
		xLabels:  xLabels,
		yLabel:   yLabel,
		timeAxis: timeAxis,
		x:        make([]*series.Series, dims),
		y:        series.New(ys),
		mask:     make([]bool, n),
		removed:  make([][]Range, dims),
		muPred:   map[string][]float64{},
		varPred:  map[string][]float64{},
		rng:      o.rng,
	}
	for d := range xs {
		data.x[d] = series.New(xs[d])
	}
	for i := range data.mask {
		data.mask[i] = true
	}
	data.xPred = data.cloneX()
	return data, nil
}

// sortAxis stably sorts x ascending and applies the same order to y.
func sortAxis(x, y []float64) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })

	sx := make([]float64, len(x))
	sy := make([]float64, len(y))
	for k, i := range idx {
		sx[k], sy[k] = x[i], y[i]
	}
	copy(x, sx)
	copy(y, sy)
}

func (d *Data) cloneX() []*series.Series {
	out := make([]*series.Series, len(d.x))
	for i, s := range d.x {
		out[i] = s.Clone()
	}
	return out
}

// Name returns the data name.
func (d *Data) Name() string { return d.name }

// SetName sets the data name.
func (d *Data) SetName(name string) { d.name = name }

// Labels returns the input labels and the output label.
func (d *Data) Labels() (xLabels []string, yLabel string) {
	return append([]string(nil), d.xLabels...), d.yLabel
}

// SetLabels sets one label per input dimension and the output label.
func (d *Data) SetLabels(xLabels []string, yLabel string) error {
	if len(xLabels) != d.InputDims() {
		return fmt.Errorf("%w: %d labels for %d input dimensions", ErrInputDims, len(xLabels), d.InputDims())
	}
	d.xLabels = append([]string(nil), xLabels...)
	d.yLabel = yLabel
	return nil
}

// IsTimeAxis reports whether the single input axis holds Unix seconds.
func (d *Data) IsTimeAxis() bool { return d.timeAxis }

// InputDims returns the number of input dimensions.
func (d *Data) InputDims() int { return len(d.x) }

// Len returns the number of observations, training and test.
func (d *Data) Len() int { return d.y.Len() }

// Mask returns a copy of the training mask. True marks training data.
func (d *Data) Mask() []bool {
	return append([]bool(nil), d.mask...)
}

// HasTestData reports whether any observation has been removed from the
// training set.
func (d *Data) HasTestData() bool {
	for _, m := range d.mask {
		if !m {
			return true
		}
	}
	return false
}

// RemovedRanges returns the ranges recorded by range removal along dim.
func (d *Data) RemovedRanges(dim int) []Range {
	if dim < 0 || dim >= len(d.removed) {
		return nil
	}
	return append([]Range(nil), d.removed[dim]...)
}

// Data returns all observations as raw input rows and outputs.
func (d *Data) Data() (x [][]float64, y []float64) {
	return d.rows(func(bool) bool { return true })
}

// TrainData returns the raw training observations.
func (d *Data) TrainData() (x [][]float64, y []float64) {
	return d.rows(func(m bool) bool { return m })
}

// TestData returns the raw observations removed from training.
func (d *Data) TestData() (x [][]float64, y []float64) {
	return d.rows(func(m bool) bool { return !m })
}

func (d *Data) rows(keep func(bool) bool) (x [][]float64, y []float64) {
	cols := make([][]float64, len(d.x))
	for i, s := range d.x {
		cols[i] = s.Values()
	}
	yv := d.y.Values()
	x = [][]float64{}
	y = []float64{}
	for i, m := range d.mask {
		if !keep(m) {
			continue
		}
		row := make([]float64, len(cols))
		for dim, col := range cols {
			row[dim] = col[i]
		}
		x = append(x, row)
		y = append(y, yv[i])
	}
	return x, y
}

// maskedColumns returns the masked transformed inputs per dimension and the
// masked transformed outputs.
func (d *Data) maskedColumns() (x [][]float64, y []float64) {
	x = make([][]float64, len(d.x))
	for i, s := range d.x {
		x[i] = masked(s.Transformed(), d.mask)
	}
	return x, masked(d.y.Transformed(), d.mask)
}

func (d *Data) transformedColumns() [][]float64 {
	return transformedColumns(d.x)
}

func transformedColumns(xs []*series.Series) [][]float64 {
	out := make([][]float64, len(xs))
	for i, s := range xs {
		out[i] = s.Transformed()
	}
	return out
}

// outputInputs returns, for each output transform, the columns of xs in the
// input units that transform was fitted in.
func (d *Data) outputInputs(xs []*series.Series) ([][][]float64, error) {
	out := make([][][]float64, len(d.yDepth))
	byDepth := map[int][][]float64{}
	for k, depth := range d.yDepth {
		cols, ok := byDepth[depth]
		if !ok {
			cols = make([][]float64, len(xs))
			for i, s := range xs {
				c, err := s.ForwardN(s.Values(), nil, depth)
				if err != nil {
					return nil, err
				}
				cols[i] = c
			}
			byDepth[depth] = cols
		}
		out[k] = cols
	}
	return out, nil
}

func masked(values []float64, mask []bool) []float64 {
	out := make([]float64, 0, len(values))
	for i, v := range values {
		if mask[i] {
			out = append(out, v)
		}
	}
	return out
}

func (d *Data) requireSingleDim(op string) error {
	if len(d.x) != 1 {
		return fmt.Errorf("%w: %s needs one input dimension, have %d", ErrInputDims, op, len(d.x))
	}
	return nil
}

// span returns the first and last raw value of the single input axis.
func (d *Data) span() (first, last float64) {
	first, _ = d.x[0].At(0)
	last, _ = d.x[0].At(d.x[0].Len() - 1)
	return first, last
}

// clampToSpan replaces -Inf bounds with the first and +Inf bounds with the
// last observed input.
func (d *Data) clampToSpan(start, end float64) (float64, float64, error) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return 0, 0, fmt.Errorf("%w: NaN bound", ErrInvalidValue)
	}
	first, last := d.span()
	clamp := func(v float64) float64 {
		switch {
		case math.IsInf(v, -1):
			return first
		case math.IsInf(v, 1):
			return last
		}
		return v
	}
	return clamp(start), clamp(end), nil
}

// Copy returns a deep copy. The random generator is shared.
func (d *Data) Copy() *Data {
	out := *d
	out.xLabels = append([]string(nil), d.xLabels...)
	out.x = d.cloneX()
	out.y = d.y.Clone()
	out.yDepth = append([]int(nil), d.yDepth...)
	out.mask = d.Mask()
	out.removed = make([][]Range, len(d.removed))
	for i := range d.removed {
		out.removed[i] = d.RemovedRanges(i)
	}
	out.xPred = make([]*series.Series, len(d.xPred))
	for i, s := range d.xPred {
		out.xPred[i] = s.Clone()
	}
	out.muPred = copyPredictions(d.muPred)
	out.varPred = copyPredictions(d.varPred)
	return &out
}

func copyPredictions(m map[string][]float64) map[string][]float64 {
	out := make(map[string][]float64, len(m))
	for k, v := range m {
		out[k] = append([]float64(nil), v...)
	}
	return out
}
