package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-gpdata/duration"
)

var methods = []string{"lombscargle", "bnse", "gmm"}

// Config holds the peakinfo settings. Flags override values read from a
// config file.
type Config struct {
	Method             string   `yaml:"method"`
	Components         int      `yaml:"components"`
	Points             int      `yaml:"points"`
	MaxEvaluations     int      `yaml:"maxEvaluations"`
	Fast               bool     `yaml:"fast"`
	Transforms         []string `yaml:"transforms"`
	Aggregate          string   `yaml:"aggregate"`
	RemoveRandomRanges string   `yaml:"removeRandomRanges"`
	Seed               uint64   `yaml:"seed"`
}

func defaultConfig() Config {
	return Config{
		Method:     "lombscargle",
		Components: 1,
		Seed:       1,
	}
}

func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// override copies the fields of flags whose flag was set on the command line.
func (c *Config) override(flags Config, changed func(name string) bool) {
	if changed("method") {
		c.Method = flags.Method
	}
	if changed("components") {
		c.Components = flags.Components
	}
	if changed("points") {
		c.Points = flags.Points
	}
	if changed("max-evaluations") {
		c.MaxEvaluations = flags.MaxEvaluations
	}
	if changed("fast") {
		c.Fast = flags.Fast
	}
	if changed("transform") {
		c.Transforms = flags.Transforms
	}
	if changed("aggregate") {
		c.Aggregate = flags.Aggregate
	}
	if changed("remove-random-ranges") {
		c.RemoveRandomRanges = flags.RemoveRandomRanges
	}
	if changed("seed") {
		c.Seed = flags.Seed
	}
}

func (c Config) methods() []string {
	if c.Method == "all" {
		return methods
	}
	return []string{c.Method}
}

func (c Config) validate() error {
	known := c.Method == "all"
	for _, m := range methods {
		known = known || c.Method == m
	}
	if !known {
		return fmt.Errorf("unknown method %q", c.Method)
	}
	if c.Components < 1 {
		return fmt.Errorf("components must be >= 1: %d", c.Components)
	}
	if c.Points < 0 {
		return fmt.Errorf("points must be >= 0: %d", c.Points)
	}
	if c.MaxEvaluations < 0 {
		return fmt.Errorf("max evaluations must be >= 0: %d", c.MaxEvaluations)
	}
	for _, name := range c.Transforms {
		if _, err := newTransform(name); err != nil {
			return err
		}
	}
	if c.Aggregate != "" {
		if _, err := duration.ParseStep(c.Aggregate); err != nil {
			return fmt.Errorf("aggregate: %w", err)
		}
	}
	if c.RemoveRandomRanges != "" {
		if _, _, err := parseRanges(c.RemoveRandomRanges); err != nil {
			return err
		}
	}
	return nil
}

// parseRanges parses "n:width".
func parseRanges(s string) (int, duration.Step, error) {
	count, width, ok := strings.Cut(s, ":")
	if !ok {
		return 0, duration.Step{}, fmt.Errorf("remove-random-ranges must be n:width: %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil {
		return 0, duration.Step{}, fmt.Errorf("remove-random-ranges count: %w", err)
	}
	step, err := duration.ParseStep(width)
	if err != nil {
		return 0, duration.Step{}, fmt.Errorf("remove-random-ranges width: %w", err)
	}
	return n, step, nil
}
