// Package config provides the configuration system for signalframe.
// It defines a single Config structure describing one windowing run,
// organized into logical sections:
//   - Input: delimiters and header handling for the data log
//   - Window: column selection, buffer sizing, downsampling, row limit
//   - Logging: log level and encoding
//
// The configuration is fixed for the lifetime of a run; it is loaded once,
// validated, and passed by value into the windowing engine.
//
// Example usage:
//
//	cfg := config.Default()
//	cfg.Window.BufferSize = 256
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"github.com/signalframe/signalframe/pkg/errors"
)

// Config is the configuration for a single windowing run.
type Config struct {
	// Input describes the shape of the data log
	Input InputConfig `yaml:"input" json:"input"`

	// Window controls column selection and window construction
	Window WindowConfig `yaml:"window" json:"window"`

	// Logging controls log output
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// InputConfig describes how input lines are split into fields.
type InputConfig struct {
	// ValueDelimiter separates fields within a line
	ValueDelimiter string `yaml:"value_delimiter" json:"value_delimiter"`
	// DecimalDelimiter is the decimal separator used inside numeric fields
	DecimalDelimiter string `yaml:"decimal_delimiter" json:"decimal_delimiter"`
	// HasHeaders declares whether the first line holds column labels
	HasHeaders bool `yaml:"has_headers" json:"has_headers"`
}

// WindowConfig controls how windows are assembled from input rows.
type WindowConfig struct {
	// Columns lists the columns to keep, as 1-based indexes or header labels
	Columns []Selector `yaml:"columns" json:"columns"`
	// BufferSize is the number of samples per selected column per output row
	BufferSize int `yaml:"buffer_size" json:"buffer_size"`
	// DownsampleFactor keeps every Nth input line (1 keeps every line)
	DownsampleFactor int `yaml:"downsample_factor" json:"downsample_factor"`
	// RowLimit caps the number of output rows ("all" for unbounded)
	RowLimit RowLimit `yaml:"row_limit" json:"row_limit"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level sets logging verbosity (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding selects the log format (console or json)
	Encoding string `yaml:"encoding" json:"encoding"`
}

// Default returns a Config with the standard data-logging defaults:
// comma-separated values, '.' decimals, no headers, columns 2 and 3,
// 128 samples per column, no downsampling, unbounded output.
func Default() Config {
	return Config{
		Input: InputConfig{
			ValueDelimiter:   ",",
			DecimalDelimiter: ".",
			HasHeaders:       false,
		},
		Window: WindowConfig{
			Columns:          []Selector{Index(2), Index(3)},
			BufferSize:       128,
			DownsampleFactor: 1,
			RowLimit:         Unbounded(),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Validate validates the configuration for correctness.
// It checks required fields and ensures values are within acceptable ranges.
// Column selector rules (empty list, mixed kinds, label resolution) are
// enforced when the selectors are resolved against the input.
func (c *Config) Validate() error {
	if c.Input.ValueDelimiter == "" {
		return errors.New(errors.ErrorTypeConfig, "value_delimiter must not be empty")
	}
	if c.Input.DecimalDelimiter == "" {
		return errors.New(errors.ErrorTypeConfig, "decimal_delimiter must not be empty")
	}
	if c.Window.BufferSize < 1 {
		return errors.Newf(errors.ErrorTypeConfig, "buffer_size must be positive, got %d", c.Window.BufferSize)
	}
	if c.Window.DownsampleFactor < 1 {
		return errors.Newf(errors.ErrorTypeConfig, "downsample_factor must be at least 1, got %d", c.Window.DownsampleFactor)
	}
	return nil
}
