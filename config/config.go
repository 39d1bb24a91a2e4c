// SPDX-License-Identifier: MIT

// Package config holds the on-disk settings of the polysecret command.
//
// Settings are layered: DefaultConfig, then an optional YAML file, then
// POLYSECRET_* environment variables, then command-line flags (applied by the
// caller). Options turns the result into secret.Option values.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polysecret/secret"
)

// ErrInvalidConfig reports a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Output formats understood by the command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment overrides.
const (
	EnvWorkers  = "POLYSECRET_WORKERS"
	EnvLogLevel = "POLYSECRET_LOG_LEVEL"
	EnvFormat   = "POLYSECRET_FORMAT"
	EnvVerify   = "POLYSECRET_VERIFY"
)

// Config is the full settings tree.
type Config struct {
	Reconstruct ReconstructConfig `yaml:"reconstruct"`
	Logging     LoggingConfig     `yaml:"logging"`
	Output      OutputConfig      `yaml:"output"`
}

// ReconstructConfig mirrors the secret package options.
type ReconstructConfig struct {
	Round           bool    `yaml:"round"`
	RoundingEpsilon float64 `yaml:"rounding_epsilon"`
	Verify          bool    `yaml:"verify"`
	VerifyEpsilon   float64 `yaml:"verify_epsilon"`
	Workers         int     `yaml:"workers"`
}

// LoggingConfig selects the zap level ("debug", "info", "warn", "error").
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // FormatText or FormatJSON
	Color  bool   `yaml:"color"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Reconstruct: ReconstructConfig{
			Round:           secret.DefaultRound,
			RoundingEpsilon: secret.DefaultRoundingEpsilon,
			Verify:          secret.DefaultVerify,
			VerifyEpsilon:   secret.DefaultVerifyEpsilon,
			Workers:         secret.DefaultWorkers,
		},
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{Format: FormatText, Color: true},
	}
}

// Load reads a YAML file over DefaultConfig and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvWorkers, v)
		}
		c.Reconstruct.Workers = n
	}
	if v := os.Getenv(EnvVerify); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvVerify, v)
		}
		c.Reconstruct.Verify = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.Format = v
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	r := c.Reconstruct
	if badEpsilon(r.RoundingEpsilon) {
		return fmt.Errorf("%w: rounding_epsilon %v", ErrInvalidConfig, r.RoundingEpsilon)
	}
	if badEpsilon(r.VerifyEpsilon) {
		return fmt.Errorf("%w: verify_epsilon %v", ErrInvalidConfig, r.VerifyEpsilon)
	}
	if r.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, r.Workers)
	}
	if _, err := c.ZapLevel(); err != nil {
		return err
	}
	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		return fmt.Errorf("%w: output format %q (valid: %s, %s)", ErrInvalidConfig, c.Output.Format, FormatText, FormatJSON)
	}

	return nil
}

func badEpsilon(eps float64) bool {
	return math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0
}

// ZapLevel parses Logging.Level.
func (c *Config) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return lvl, nil
}

// Options converts the reconstruct settings into secret options. Call
// Validate first; invalid epsilons or worker counts make the setters panic.
func (c *Config) Options(logger *zap.Logger) []secret.Option {
	r := c.Reconstruct
	opts := []secret.Option{
		secret.WithWorkers(r.Workers),
		secret.WithLogger(logger),
	}
	if r.Round {
		opts = append(opts, secret.WithRoundingEpsilon(r.RoundingEpsilon))
	} else {
		opts = append(opts, secret.WithoutRounding())
	}
	if r.Verify {
		opts = append(opts, secret.WithVerifyEpsilon(r.VerifyEpsilon))
	}

	return opts
}
