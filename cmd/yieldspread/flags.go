package main

import (
	"github.com/spf13/cobra"

	"github.com/seenimoa/yieldspread/internal/config"
)

// addSpreadFlags registers the flags shared by the report commands.
func addSpreadFlags(c *cobra.Command) {
	c.Flags().StringP("input", "i", "", "input bond CSV (overrides input.path)")
	c.Flags().String("benchmark-out", "", "benchmark report path (overrides output.benchmark_path)")
	c.Flags().String("curve-out", "", "curve report path (overrides output.curve_path)")
	c.Flags().StringP("format", "f", "", "report format: csv, text or json")
	c.Flags().Bool("percent", false, "append % to spread values")
	c.Flags().Bool("absolute", false, "report absolute yield differences instead of signed")
	c.Flags().Int("decimals", 0, "decimal places for spreads")
	c.Flags().Bool("extrapolate", false, "extrapolate the government curve beyond its end points")
	c.Flags().IntP("workers", "w", 0, "evaluate bonds with this many concurrent workers")
}

// applyOverrides copies explicitly set flags onto cfg and returns the config
// keys they overrode.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) ([]string, error) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}
	var keys []string

	strs := []struct {
		name, key string
		target    *string
	}{
		{"log-level", "logging.level", &cfg.Logging.Level},
		{"log-format", "logging.format", &cfg.Logging.Format},
		{"input", "input.path", &cfg.Input.Path},
		{"benchmark-out", "output.benchmark_path", &cfg.Output.BenchmarkPath},
		{"curve-out", "output.curve_path", &cfg.Output.CurvePath},
		{"format", "output.format", &cfg.Output.Format},
	}
	for _, s := range strs {
		if !changed(s.name) {
			continue
		}
		v, err := flags.GetString(s.name)
		if err != nil {
			return nil, err
		}
		*s.target = v
		keys = append(keys, s.key)
	}

	if changed("percent") {
		cfg.Output.PercentSuffix, _ = flags.GetBool("percent")
		keys = append(keys, "output.percent_suffix")
	}
	if changed("extrapolate") {
		cfg.Curve.Extrapolate, _ = flags.GetBool("extrapolate")
		keys = append(keys, "curve.extrapolate")
	}
	if changed("absolute") {
		if abs, _ := flags.GetBool("absolute"); abs {
			cfg.Spread.Convention = "absolute"
		} else {
			cfg.Spread.Convention = "signed"
		}
		keys = append(keys, "spread.convention")
	}
	if changed("decimals") {
		cfg.Spread.Decimals, _ = flags.GetInt("decimals")
		keys = append(keys, "spread.decimals")
	}
	if changed("workers") {
		cfg.Compute.Workers, _ = flags.GetInt("workers")
		keys = append(keys, "compute.workers")
	}
	return keys, nil
}
