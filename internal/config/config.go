// Package config loads layered configuration for the almanac CLI.
//
// Sources, lowest precedence first:
//  1. embedded defaults.toml
//  2. the user config file (--config, or config.toml under the XDG config home)
//  3. ALMANAC_* environment variables (ALMANAC_ENGINE_WORKERS -> engine.workers)
//  4. explicit overrides, typically command-line flags
package config

import (
	"errors"
	"fmt"

	"almanac-resolver/internal/almanac"
	"almanac-resolver/internal/rangemap"
)

// Config is the merged configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Engine EngineConfig `koanf:"engine"`
	Output OutputConfig `koanf:"output"`
}

// LogConfig controls logging.
type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// EngineConfig controls pipeline construction and queries.
type EngineConfig struct {
	Workers int    `koanf:"workers"`
	Overlap string `koanf:"overlap"`
}

// OutputConfig controls document export.
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Validate checks values that cannot be enforced by types alone.
func (c *Config) Validate() error {
	var errs []error

	if c.Engine.Workers < 0 {
		errs = append(errs, fmt.Errorf("engine.workers must not be negative, got %d", c.Engine.Workers))
	}

	if _, err := c.OverlapPolicy(); err != nil {
		errs = append(errs, fmt.Errorf("engine.overlap: %w", err))
	}

	if _, err := c.OutputFormat(); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}

	return errors.Join(errs...)
}

// OverlapPolicy parses Engine.Overlap.
func (c *Config) OverlapPolicy() (rangemap.OverlapPolicy, error) {
	return rangemap.ParseOverlapPolicy(c.Engine.Overlap)
}

// OutputFormat parses Output.Format.
func (c *Config) OutputFormat() (almanac.Format, error) {
	return almanac.ParseFormat(c.Output.Format)
}
