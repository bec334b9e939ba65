package observation

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/series"
)

// Transform fits t on the training outputs and inputs in transformed units
// and applies it to all outputs.
func (d *Data) Transform(t series.Transformer) error {
	x, y := d.maskedColumns()
	if err := t.Fit(x, y); err != nil {
		return err
	}
	if err := d.y.Apply(t, d.transformedColumns()); err != nil {
		return err
	}
	d.yDepth = append(d.yDepth, len(d.x[0].Transformers()))
	klog.V(4).InfoS("transformed output", "data", d.name, "transform", fmt.Sprintf("%T", t))
	return nil
}

// TransformX applies one transformer per input dimension. Each is fitted on
// the training values of its own axis, in transformed units. The prediction
// inputs follow the same chain. Output transforms applied earlier keep
// seeing the inputs in the units they were fitted in.
func (d *Data) TransformX(ts ...series.Transformer) error {
	if len(ts) != d.InputDims() {
		return fmt.Errorf("%w: %d transformers for %d input dimensions", ErrInputDims, len(ts), d.InputDims())
	}

	x, _ := d.maskedColumns()
	for i, t := range ts {
		if err := t.Fit(nil, x[i]); err != nil {
			return fmt.Errorf("input dimension %d: %w", i, err)
		}
	}

	xs := d.cloneX()
	preds := make([]*series.Series, len(d.xPred))
	for i, t := range ts {
		if err := xs[i].Apply(t, nil); err != nil {
			return fmt.Errorf("input dimension %d: %w", i, err)
		}
		preds[i] = d.xPred[i].Clone()
		if err := preds[i].Apply(t, nil); err != nil {
			return fmt.Errorf("input dimension %d: %w", i, err)
		}
	}
	d.x = xs
	d.xPred = preds
	klog.V(4).InfoS("transformed inputs", "data", d.name, "dims", len(ts))
	return nil
}
