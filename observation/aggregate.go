package observation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/duration"
	"github.com/cwbudde/algo-gpdata/series"
)

// AggregateFunc reduces the outputs falling in one window to a single value.
// It may receive an empty slice.
type AggregateFunc func(values []float64) float64

func reducer(f func(stats.Float64Data) (float64, error)) AggregateFunc {
	return func(values []float64) float64 {
		if len(values) == 0 {
			return math.NaN()
		}
		v, err := f(values)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// Built-in aggregators. They return NaN for an empty window.
var (
	Mean   = reducer(stats.Mean)
	Sum    = reducer(stats.Sum)
	Median = reducer(stats.Median)
	Min    = reducer(stats.Min)
	Max    = reducer(stats.Max)
)

// Filter keeps only the observations with input in [start, end) and discards
// the rest, mask entries included.
func (d *Data) Filter(start, end float64) error {
	if err := d.requireSingleDim("filter"); err != nil {
		return err
	}
	if !(start < end) {
		return fmt.Errorf("%w: [%v, %v)", ErrEmptyRange, start, end)
	}

	x := d.x[0].Values()
	var keep []int
	for i, v := range x {
		if v >= start && v < end {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return fmt.Errorf("%w: nothing in [%v, %v)", ErrNoData, start, end)
	}

	mask := make([]bool, len(keep))
	for k, i := range keep {
		mask[k] = d.mask[i]
	}
	d.x[0] = d.x[0].Select(keep)
	d.y = d.y.Select(keep)
	d.mask = mask
	klog.V(4).InfoS("filtered data", "data", d.name, "start", start, "end", end, "kept", len(keep), "of", len(x))
	return nil
}

// Aggregate re-bins the observations into windows of the given step. Window
// k covers [first+k*step, first+(k+1)*step) and is represented by its
// center; there are ceil((last-first)/step) windows. f receives all raw
// outputs of a window regardless of the mask. Existing transforms are kept
// without refitting and the mask is reset to all training.
func (d *Data) Aggregate(step duration.Step, f AggregateFunc) error {
	if err := d.requireSingleDim("aggregate"); err != nil {
		return err
	}
	if f == nil {
		f = Mean
	}
	s, err := step.Along(d.timeAxis)
	if err != nil {
		return err
	}
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: aggregation step must be finite and > 0: %v", ErrInvalidValue, s)
	}

	first, last := d.span()
	count := int(math.Ceil((last - first) / s))
	if count < 1 {
		return fmt.Errorf("%w: span [%v, %v] holds no window of %v", ErrNoData, first, last, s)
	}

	x := d.x[0].Values()
	y := d.y.Values()
	centers := make([]float64, count)
	values := make([]float64, count)
	window := make([]float64, 0, len(y))
	for k := range centers {
		centers[k] = first + s/2 + float64(k)*s
		lo, hi := centers[k]-s/2, centers[k]+s/2
		window = window[:0]
		for i, v := range x {
			if v >= lo && v < hi {
				window = append(window, y[i])
			}
		}
		values[k] = f(window)
	}

	nx := d.x[0].Clone()
	if err := nx.Reset(centers, nil); err != nil {
		return err
	}
	xs, err := d.outputInputs([]*series.Series{nx})
	if err != nil {
		return err
	}
	ny := d.y.Clone()
	if err := ny.ResetEach(values, xs); err != nil {
		return err
	}

	d.x[0] = nx
	d.y = ny
	d.mask = make([]bool, count)
	for i := range d.mask {
		d.mask[i] = true
	}
	klog.V(4).InfoS("aggregated data", "data", d.name, "step", s, "windows", count, "from", len(x))
	return nil
}
