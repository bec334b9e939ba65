package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peakinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
method: gmm
components: 3
maxEvaluations: 50
transforms: [detrend, whiten]
removeRandomRanges: "2:5"
`), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gmm", cfg.Method)
	assert.Equal(t, 3, cfg.Components)
	assert.Equal(t, 50, cfg.MaxEvaluations)
	assert.Equal(t, []string{"detrend", "whiten"}, cfg.Transforms)
	assert.Equal(t, "2:5", cfg.RemoveRandomRanges)
	assert.Equal(t, uint64(1), cfg.Seed, "unset fields keep defaults")
	require.NoError(t, cfg.validate())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components: [1, 2"), 0o600))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestConfigOverride(t *testing.T) {
	cfg := Config{Method: "gmm", Components: 3, Seed: 9}
	flags := Config{Method: "bnse", Components: 5, Seed: 2}

	cfg.override(flags, func(name string) bool { return name == "components" })
	assert.Equal(t, "gmm", cfg.Method)
	assert.Equal(t, 5, cfg.Components)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"all methods", func(c *Config) { c.Method = "all" }, true},
		{"unknown method", func(c *Config) { c.Method = "fft" }, false},
		{"zero components", func(c *Config) { c.Components = 0 }, false},
		{"negative points", func(c *Config) { c.Points = -1 }, false},
		{"negative evaluations", func(c *Config) { c.MaxEvaluations = -1 }, false},
		{"unknown transform", func(c *Config) { c.Transforms = []string{"detrend", "boxcox"} }, false},
		{"bad aggregate", func(c *Config) { c.Aggregate = "3 parsecs" }, false},
		{"numeric aggregate", func(c *Config) { c.Aggregate = "2.5" }, true},
		{"bad ranges", func(c *Config) { c.RemoveRandomRanges = "2" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.edit(&cfg)
			err := cfg.validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseRanges(t *testing.T) {
	n, width, err := parseRanges("3:1.5")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	w, err := width.Along(false)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, w, 1e-12)

	_, _, err = parseRanges("x:1")
	assert.Error(t, err)
	_, _, err = parseRanges("2:")
	assert.Error(t, err)
}

func TestConfigMethods(t *testing.T) {
	assert.Equal(t, []string{"bnse"}, Config{Method: "bnse"}.methods())
	assert.Equal(t, []string{"lombscargle", "bnse", "gmm"}, Config{Method: "all"}.methods())
}
