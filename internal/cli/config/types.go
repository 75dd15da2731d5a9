// SPDX-License-Identifier: MIT

// Package config loads particula CLI settings from defaults, a YAML file,
// PARTICULA_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Defaults applied before any other source.
const (
	DefaultOutput   = OutputTable
	DefaultLogLevel = "warn"
	DefaultWorkers  = 8
)

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the fully merged CLI configuration.
type Config struct {
	// Output selects table or JSON rendering.
	Output string `koanf:"output"`

	// LogJSON switches warnings and diagnostics to JSON lines on stderr.
	LogJSON bool `koanf:"log_json"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`

	// DataDir, when set, replaces the embedded reference tables with the
	// elements/isotopes/particles files found in that directory.
	DataDir string `koanf:"data_dir"`

	// Workers bounds concurrent resolution in batch mode.
	Workers int `koanf:"workers"`
}

// Validate checks enumerations and bounds.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return errors.WithHint(
			errors.Wrapf(ErrInvalidConfig, "output %q", c.Output),
			"use --output table or --output json")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}

	return nil
}

// Level returns the parsed log level; call after Validate.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}

	return lvl
}
