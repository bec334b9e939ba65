// Command peakinfo estimates the dominant spectral peaks of an unevenly
// sampled series read from CSV.
//
// Usage:
//
//	peakinfo [flags] data.csv
//
// The file holds two numeric columns, x and y, with an optional header row.
// Use "-" to read from standard input.
//
// Examples:
//
//	peakinfo samples.csv
//	peakinfo --method all -q 3 --transform detrend,whiten samples.csv
//	peakinfo --remove-random-ranges 2:5 --seed 7 samples.csv
//	peakinfo --config peakinfo.yaml samples.csv
//	peakinfo --fast --points 200000 samples.csv
package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		klog.ErrorS(err, "peakinfo failed")
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	overrides := defaultConfig()

	cmd := &cobra.Command{
		Use:   "peakinfo [flags] data.csv",
		Short: "Estimate spectral peaks of an unevenly sampled series",
		Long: `Reads x,y samples from CSV, optionally transforms the output and
removes random ranges, then prints the Nyquist estimate and the strongest
spectral peaks found by the selected estimators.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultConfig()
			if configPath != "" {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfg.override(overrides, cmd.Flags().Changed)
			if err := cfg.validate(); err != nil {
				return err
			}

			in := os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(cfg, in, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file; flags override its values")
	flags.StringVar(&overrides.Method, "method", overrides.Method, "estimator: lombscargle, bnse, gmm or all")
	flags.IntVarP(&overrides.Components, "components", "q", overrides.Components, "number of peaks per estimator")
	flags.IntVar(&overrides.Points, "points", overrides.Points, "frequency grid size, 0 for the estimator default")
	flags.IntVar(&overrides.MaxEvaluations, "max-evaluations", overrides.MaxEvaluations, "BNSE training likelihood evaluations, 0 for the default")
	flags.BoolVar(&overrides.Fast, "fast", overrides.Fast, "use the FFT-based periodogram for lombscargle and gmm")
	flags.StringSliceVar(&overrides.Transforms, "transform", overrides.Transforms, "output transforms in order: detrend, normalize, log, whiten")
	flags.StringVar(&overrides.Aggregate, "aggregate", overrides.Aggregate, "aggregate into windows of this step (number or duration) using the mean")
	flags.StringVar(&overrides.RemoveRandomRanges, "remove-random-ranges", overrides.RemoveRandomRanges, "remove n ranges of the given width, as n:width")
	flags.Uint64Var(&overrides.Seed, "seed", overrides.Seed, "random seed for range removal")
	flags.AddGoFlagSet(flag.CommandLine)
	return cmd
}
