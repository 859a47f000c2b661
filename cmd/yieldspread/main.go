// yieldspread: corporate bond yield spreads against government benchmarks.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seenimoa/yieldspread/internal/config"
	"github.com/seenimoa/yieldspread/internal/logging"
	"github.com/seenimoa/yieldspread/internal/pipeline"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set up before every command runs.
var (
	cfg      *config.Config
	flagKeys []string // config keys overridden by command-line flags
	logger   *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yieldspread",
	Short: "Corporate bond yield spreads against government benchmarks",
	Long: `yieldspread reads a CSV table of corporate and government bonds and reports,
for every corporate bond, the spread to its nearest-term government benchmark
and the spread to a linearly interpolated government yield curve.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagKeys, err = applyOverrides(cmd, cfg); err != nil {
			return err
		}
		logger = logging.New(cfg.Logging, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format override (text, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(curveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config is needed to print the version.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("yieldspread %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Benchmark Command ---

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark [input] [output]",
	Short: "Spread of each corporate bond to its nearest-term government bond",
	Long: `Match every corporate bond to the government bond with the closest term and
report corporate yield minus benchmark yield.

Ties on term distance go to the shorter government term, then to the
alphabetically first identifier.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setPositional(args, &cfg.Input.Path, &cfg.Output.BenchmarkPath)
		return run(cmd, pipeline.Reports{Benchmark: true})
	},
}

// --- Curve Command ---

var curveCmd = &cobra.Command{
	Use:   "curve [input] [output]",
	Short: "Spread of each corporate bond to the interpolated government curve",
	Long: `Build a piecewise-linear government yield curve and report corporate yield
minus the curve yield at each corporate bond's term.

Terms outside the government term range fail unless --extrapolate is set.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setPositional(args, &cfg.Input.Path, &cfg.Output.CurvePath)
		return run(cmd, pipeline.Reports{Curve: true})
	},
}

// --- Run Command ---

var runCmd = &cobra.Command{
	Use:   "run [input] [benchmark-output] [curve-output]",
	Short: "Write both the benchmark and the curve report",
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		setPositional(args, &cfg.Input.Path, &cfg.Output.BenchmarkPath, &cfg.Output.CurvePath)
		return run(cmd, pipeline.AllReports())
	},
}

func init() {
	for _, c := range []*cobra.Command{benchmarkCmd, curveCmd, runCmd} {
		addSpreadFlags(c)
	}
}

// --- Config Command ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where each value comes from",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE\tENV")
		for _, s := range config.Settings(cfg, flagKeys...) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Key, s.Value, s.Source, s.Env)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%v\n", err)
		}
		return nil
	},
}

func run(cmd *cobra.Command, which pipeline.Reports) error {
	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}
	_, err = p.Run(cmd.Context(), which)
	return err
}

// setPositional assigns positional arguments to their config targets in order.
func setPositional(args []string, targets ...*string) {
	for i, a := range args {
		if i < len(targets) {
			*targets[i] = a
		}
	}
}
