package config

import (
	"fmt"
	"os"
	"strings"
)

// SettingSource represents where an effective setting comes from.
type SettingSource string

const (
	SourceFlag    SettingSource = "flag"
	SourceEnv     SettingSource = "env"
	SourceConfig  SettingSource = "config"
	SourceDefault SettingSource = "default"
)

// Setting is one effective configuration value.
type Setting struct {
	Key    string        `json:"key"`
	Value  string        `json:"value"`
	Env    string        `json:"env"`
	Source SettingSource `json:"source"`
}

// Settings lists every effective setting of cfg in a stable order together
// with the source it was taken from. flagKeys names the settings that were
// overridden on the command line.
func Settings(cfg *Config, flagKeys ...string) []Setting {
	fromFlag := make(map[string]bool, len(flagKeys))
	for _, k := range flagKeys {
		fromFlag[k] = true
	}

	def := Default()
	pairs := []struct {
		key      string
		val, dfl any
	}{
		{"input.path", cfg.Input.Path, def.Input.Path},
		{"output.benchmark_path", cfg.Output.BenchmarkPath, def.Output.BenchmarkPath},
		{"output.curve_path", cfg.Output.CurvePath, def.Output.CurvePath},
		{"output.format", cfg.Output.Format, def.Output.Format},
		{"output.percent_suffix", cfg.Output.PercentSuffix, def.Output.PercentSuffix},
		{"spread.convention", cfg.Spread.Convention, def.Spread.Convention},
		{"spread.decimals", cfg.Spread.Decimals, def.Spread.Decimals},
		{"curve.extrapolate", cfg.Curve.Extrapolate, def.Curve.Extrapolate},
		{"compute.workers", cfg.Compute.Workers, def.Compute.Workers},
		{"logging.level", cfg.Logging.Level, def.Logging.Level},
		{"logging.format", cfg.Logging.Format, def.Logging.Format},
	}

	out := make([]Setting, 0, len(pairs))
	for _, p := range pairs {
		s := checkSetting(p.key, fmt.Sprint(p.val), fmt.Sprint(p.dfl))
		if fromFlag[p.key] {
			s.Source = SourceFlag
		}
		out = append(out, s)
	}
	return out
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// checkSetting decides where a value came from.
func checkSetting(key, value, defaultValue string) Setting {
	s := Setting{Key: key, Value: value, Env: EnvName(key)}
	switch {
	case os.Getenv(s.Env) != "":
		s.Source = SourceEnv
	case value == defaultValue:
		s.Source = SourceDefault
	default:
		s.Source = SourceConfig
	}
	return s
}
