package observation

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/duration"
)

// RemoveRandomly removes n observations, drawn uniformly without
// replacement, from the training set.
func (d *Data) RemoveRandomly(n int) error {
	if n < 0 || n > d.Len() {
		return fmt.Errorf("%w: cannot remove %d of %d observations", ErrInvalidValue, n, d.Len())
	}
	for _, i := range d.rng.Perm(d.Len())[:n] {
		d.mask[i] = false
	}
	klog.V(4).InfoS("removed observations randomly", "data", d.name, "count", n)
	return nil
}

// RemoveRandomlyPct removes round(pct*Len()) observations at random. pct
// must lie in [0, 1].
func (d *Data) RemoveRandomlyPct(pct float64) error {
	if !(pct >= 0 && pct <= 1) {
		return fmt.Errorf("%w: fraction must be in [0, 1]: %v", ErrInvalidValue, pct)
	}
	return d.RemoveRandomly(int(math.Round(pct * float64(d.Len()))))
}

// RemoveRange removes observations with input in [start, end], both ends
// included, and records the range. Infinite bounds are clamped to the
// observed span.
func (d *Data) RemoveRange(start, end float64) error {
	if err := d.requireSingleDim("remove range"); err != nil {
		return err
	}
	start, end, err := d.clampToSpan(start, end)
	if err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("%w: [%v, %v]", ErrEmptyRange, start, end)
	}
	d.removeRange(start, end)
	return nil
}

// RemoveRelativeRange removes observations between two fractions of the
// observed span: 0 is the first and 1 the last input. Fractions are clamped
// to [0, 1].
func (d *Data) RemoveRelativeRange(startPct, endPct float64) error {
	if err := d.requireSingleDim("remove relative range"); err != nil {
		return err
	}
	if math.IsNaN(startPct) || math.IsNaN(endPct) {
		return fmt.Errorf("%w: NaN fraction", ErrInvalidValue)
	}
	first, last := d.span()
	start := first + core.Clamp(startPct, 0, 1)*(last-first)
	end := first + core.Clamp(endPct, 0, 1)*(last-first)
	if start > end {
		return fmt.Errorf("%w: [%v, %v]", ErrEmptyRange, start, end)
	}
	d.removeRange(start, end)
	return nil
}

func (d *Data) removeRange(start, end float64) {
	x := d.x[0].Values()
	removed := 0
	for i, v := range x {
		if v >= start && v <= end {
			d.mask[i] = false
			removed++
		}
	}
	d.removed[0] = append(d.removed[0], Range{Start: start, End: end})
	klog.V(4).InfoS("removed range", "data", d.name, "start", start, "end", end, "count", removed)
}

// RemoveRandomRanges removes n non-overlapping ranges of the given width to
// simulate sensor failure. Each range starts at an observation drawn
// uniformly from the eligible ones: starts must leave width before the last
// observation (the first observation past that cut-off is still allowed, so
// the last point can be removed) and must not lie within width of an earlier
// pick. Observations in [start, start+width) are removed and
// [start, start+width] is recorded.
//
// n < 1 is a no-op. If the ranges cannot fit, or no eligible start remains,
// an error is returned and nothing is removed.
func (d *Data) RemoveRandomRanges(n int, width duration.Step) error {
	if err := d.requireSingleDim("remove random ranges"); err != nil {
		return err
	}
	if n < 1 {
		return nil
	}
	w, err := width.Along(d.timeAxis)
	if err != nil {
		return err
	}
	if !(w > 0) {
		return fmt.Errorf("%w: range width must be > 0: %v", ErrInvalidValue, w)
	}

	x := d.x[0].Values()
	first, last := d.span()
	if (last-first)-float64(n)*w <= 0 {
		return fmt.Errorf("%w: %d ranges of width %v leave no data", ErrNoData, n, w)
	}

	eligible := make([]bool, len(x))
	count := 0
	for i, v := range x {
		if v <= last-w {
			eligible[i] = true
			count++
		}
	}
	if count < len(eligible) {
		eligible[count] = true
	}

	mask := d.Mask()
	ranges := make([]Range, 0, n)
	candidates := make([]int, 0, len(x))
	for k := 0; k < n; k++ {
		candidates = candidates[:0]
		for i, ok := range eligible {
			if ok {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			return fmt.Errorf("%w: no eligible start left for range %d of %d", ErrNoData, k+1, n)
		}

		start := x[candidates[d.rng.IntN(len(candidates))]]
		for i, v := range x {
			if v > start-w && v < start+w {
				eligible[i] = false
			}
			if v >= start && v < start+w {
				mask[i] = false
			}
		}
		ranges = append(ranges, Range{Start: start, End: start + w})
	}

	d.mask = mask
	d.removed[0] = append(d.removed[0], ranges...)
	klog.V(4).InfoS("removed random ranges", "data", d.name, "count", n, "width", w)
	return nil
}

// RemoveIndex removes the observations at the given indices. All indices are
// checked before any is removed.
func (d *Data) RemoveIndex(idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= d.Len() {
			return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidValue, i, d.Len())
		}
	}
	for _, i := range idx {
		d.mask[i] = false
	}
	klog.V(4).InfoS("removed indices", "data", d.name, "count", len(idx))
	return nil
}
