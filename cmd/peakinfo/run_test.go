package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-gpdata/internal/testutil"
)

func sineCSV(header bool) string {
	var b strings.Builder
	if header {
		b.WriteString("time,value\n")
	}
	for i := 0; i < 200; i++ {
		x := 0.1*float64(i) + 0.02*math.Sin(float64(i))
		fmt.Fprintf(&b, "%g,%g\n", x, math.Sin(2*math.Pi*0.5*x))
	}
	return b.String()
}

// peakRows returns the table rows of out keyed by method.
func peakRows(t *testing.T, out string) map[string][]float64 {
	t.Helper()
	rows := map[string][]float64{}
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 5 || fields[1] != "1" {
			continue
		}
		vals := make([]float64, 3)
		for i := range vals {
			v, err := strconv.ParseFloat(fields[i+2], 64)
			require.NoError(t, err)
			vals[i] = v
		}
		rows[fields[0]] = vals
	}
	return rows
}

func TestReadCSV(t *testing.T) {
	x, y, err := readCSV(strings.NewReader("x,y\n1,2\n 3, 4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, x)
	assert.Equal(t, []float64{2, 4}, y)

	x, _, err = readCSV(strings.NewReader("1,2,extra\n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, x)
}

func TestReadCSVErrors(t *testing.T) {
	_, _, err := readCSV(strings.NewReader("1,2\nfoo,4\n"))
	assert.ErrorContains(t, err, "line 2")

	_, _, err = readCSV(strings.NewReader("1\n"))
	assert.ErrorContains(t, err, "need 2 columns")
}

func TestRunLombScargle(t *testing.T) {
	cfg := defaultConfig()
	cfg.Points = 5000

	var out bytes.Buffer
	require.NoError(t, run(cfg, strings.NewReader(sineCSV(true)), &out))

	assert.Contains(t, out.String(), "points: 200 (train 200)")
	assert.Contains(t, out.String(), "nyquist:")
	rows := peakRows(t, out.String())
	require.Contains(t, rows, "lombscargle")
	assert.InDelta(t, 0.5, rows["lombscargle"][1], 0.01)
}

func TestRunFastPeriodogram(t *testing.T) {
	cfg := defaultConfig()
	cfg.Points = 5000
	cfg.Fast = true

	var out bytes.Buffer
	require.NoError(t, run(cfg, strings.NewReader(sineCSV(true)), &out))
	rows := peakRows(t, out.String())
	require.Contains(t, rows, "lombscargle")
	assert.InDelta(t, 0.5, rows["lombscargle"][1], 0.01)
}

func TestRunPipeline(t *testing.T) {
	cfg := defaultConfig()
	cfg.Method = "gmm"
	cfg.Points = 5000
	cfg.Transforms = []string{"detrend", "whiten"}
	cfg.RemoveRandomRanges = "2:1"
	cfg.Seed = 3

	var out bytes.Buffer
	require.NoError(t, run(cfg, strings.NewReader(sineCSV(false)), &out))

	assert.NotContains(t, out.String(), "(train 200)")
	rows := peakRows(t, out.String())
	require.Contains(t, rows, "gmm")
	assert.InDelta(t, 0.5, rows["gmm"][1], 0.05)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(defaultConfig(), strings.NewReader("x,y\n"), &out)
	assert.Error(t, err, "header only")

	cfg := defaultConfig()
	cfg.Aggregate = "1d"
	err = run(cfg, strings.NewReader(sineCSV(false)), &out)
	assert.Error(t, err, "calendar step on a numeric axis")
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.csv")
	x := testutil.IrregularGrid(5, 150, 0, 20)
	var b strings.Builder
	for i, v := range testutil.Sine(x, 0.5, 2) {
		fmt.Fprintf(&b, "%g,%g\n", x[i], v)
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	cfgPath := filepath.Join(dir, "peakinfo.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("method: gmm\ncomponents: 2\n"), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "--method", "lombscargle", "--points", "4000", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "lombscargle  2")
	assert.NotContains(t, out.String(), "gmm")
}

func TestRootCommandRejectsBadFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--method", "fft", "samples.csv"})
	assert.Error(t, cmd.Execute())
}
