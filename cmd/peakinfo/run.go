package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"text/tabwriter"

	"k8s.io/klog/v2"

	"github.com/cwbudde/algo-gpdata/dsp/core"
	"github.com/cwbudde/algo-gpdata/duration"
	"github.com/cwbudde/algo-gpdata/observation"
	"github.com/cwbudde/algo-gpdata/series"
	"github.com/cwbudde/algo-gpdata/spectral"
)

func newTransform(name string) (series.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "detrend":
		return series.NewDetrend(), nil
	case "normalize":
		return series.NewNormalize(), nil
	case "log":
		return series.NewLog(), nil
	case "whiten":
		return series.NewWhiten(), nil
	}
	return nil, fmt.Errorf("unknown transform %q", name)
}

// readCSV reads two numeric columns. A first row that does not parse is
// treated as a header.
func readCSV(r io.Reader) (x, y []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("line %d: need 2 columns, have %d", line, len(rec))
		}
		xv, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		yv, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if line == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("line %d: %w", line, errors.Join(errX, errY))
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	return x, y, nil
}

func run(cfg Config, in io.Reader, out io.Writer) error {
	x, y, err := readCSV(in)
	if err != nil {
		return fmt.Errorf("read samples: %w", err)
	}
	data, err := observation.New(x, y, observation.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	if err != nil {
		return err
	}

	if cfg.Aggregate != "" {
		step, err := duration.ParseStep(cfg.Aggregate)
		if err != nil {
			return err
		}
		if err := data.Aggregate(step, observation.Mean); err != nil {
			return fmt.Errorf("aggregate: %w", err)
		}
	}
	if cfg.RemoveRandomRanges != "" {
		n, width, err := parseRanges(cfg.RemoveRandomRanges)
		if err != nil {
			return err
		}
		if err := data.RemoveRandomRanges(n, width); err != nil {
			return fmt.Errorf("remove random ranges: %w", err)
		}
	}
	for _, name := range cfg.Transforms {
		t, err := newTransform(name)
		if err != nil {
			return err
		}
		if err := data.Transform(t); err != nil {
			return fmt.Errorf("transform %s: %w", name, err)
		}
	}

	_, train := data.TrainData()
	klog.V(1).InfoS("loaded samples", "points", data.Len(), "train", len(train))
	if _, err := fmt.Fprintf(out, "points: %d (train %d)\nnyquist: %.6g\n\n",
		data.Len(), len(train), data.NyquistEstimation()[0]); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	opts := []core.EstimatorOption{core.WithComponents(cfg.Components)}
	if cfg.Points > 0 {
		opts = append(opts, core.WithGridPoints(cfg.Points))
	}
	if cfg.Fast {
		opts = append(opts, core.WithFastPeriodogram(true))
	}
	if cfg.MaxEvaluations > 0 {
		opts = append(opts, core.WithMaxEvaluations(cfg.MaxEvaluations))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Method\tPeak\tAmplitude\tFrequency\tVariance\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t---------\t---------\t--------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, method := range cfg.methods() {
		est, err := estimate(data, method, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		for k := 0; k < est.Components(); k++ {
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.6g\t%.6g\n",
				method, k+1, est.Amplitude[0][k], est.Mean[0][k], est.Variance[0][k]); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	return tw.Flush()
}

func estimate(data *observation.Data, method string, opts []core.EstimatorOption) (*spectral.Estimate, error) {
	switch method {
	case "bnse":
		return data.BNSEEstimation(opts...)
	case "gmm":
		return data.GMMEstimation(opts...)
	default:
		return data.LombScargleEstimation(opts...)
	}
}
