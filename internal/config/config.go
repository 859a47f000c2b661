// Package config handles configuration loading for yieldspread.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. YIELDSPREAD_CURVE_EXTRAPOLATE.
const EnvPrefix = "YIELDSPREAD"

// Config represents the complete application configuration.
type Config struct {
	Input   InputConfig   `mapstructure:"input"   yaml:"input"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Spread  SpreadConfig  `mapstructure:"spread"  yaml:"spread"`
	Curve   CurveConfig   `mapstructure:"curve"   yaml:"curve"`
	Compute ComputeConfig `mapstructure:"compute" yaml:"compute"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// InputConfig locates the bond table.
type InputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// OutputConfig controls where and how reports are written.
type OutputConfig struct {
	BenchmarkPath string `mapstructure:"benchmark_path" yaml:"benchmark_path"`
	CurvePath     string `mapstructure:"curve_path"     yaml:"curve_path"`
	Format        string `mapstructure:"format"         yaml:"format"` // "csv", "text", "json"
	PercentSuffix bool   `mapstructure:"percent_suffix" yaml:"percent_suffix"`
}

// SpreadConfig controls yield difference conventions.
type SpreadConfig struct {
	Convention string `mapstructure:"convention" yaml:"convention"` // "signed" or "absolute"
	Decimals   int    `mapstructure:"decimals"   yaml:"decimals"`
}

// CurveConfig controls the government yield curve.
type CurveConfig struct {
	Extrapolate bool `mapstructure:"extrapolate" yaml:"extrapolate"`
}

// ComputeConfig controls evaluation parallelism.
type ComputeConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.yieldspread/config.yaml (home directory)
//  3. /etc/yieldspread/config.yaml (system)
//
// Environment variables override config file values.
// Format: YIELDSPREAD_<SECTION>_<KEY>, e.g., YIELDSPREAD_COMPUTE_WORKERS
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".yieldspread"))
	v.AddConfigPath("/etc/yieldspread")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return unmarshal(v)
}

// Default returns the configuration with no file and no environment applied.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := unmarshal(v)
	return cfg
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Input.Path) == "" {
		problems = append(problems, "input.path is required")
	}
	switch c.Output.Format {
	case "csv", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("output.format %q must be csv, text or json", c.Output.Format))
	}
	switch c.Spread.Convention {
	case "signed", "absolute":
	default:
		problems = append(problems, fmt.Sprintf("spread.convention %q must be signed or absolute", c.Spread.Convention))
	}
	if c.Spread.Decimals < 0 || c.Spread.Decimals > 10 {
		problems = append(problems, fmt.Sprintf("spread.decimals %d must be between 0 and 10", c.Spread.Decimals))
	}
	if c.Compute.Workers < 1 {
		problems = append(problems, fmt.Sprintf("compute.workers %d must be at least 1", c.Compute.Workers))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be text or json", c.Logging.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "sample_input.csv")

	v.SetDefault("output.benchmark_path", "benchmark_spread.csv")
	v.SetDefault("output.curve_path", "curve_spread.csv")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.percent_suffix", false)

	v.SetDefault("spread.convention", "signed")
	v.SetDefault("spread.decimals", 2)

	v.SetDefault("curve.extrapolate", false)

	v.SetDefault("compute.workers", 1)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
