// Package config provides configuration management for the label worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"relabel/internal/export"
)

// Configuration validation errors.
var (
	ErrNoBrands           = errors.New("pipeline.brands must list at least one brand")
	ErrEmptyBrand         = errors.New("pipeline.brands entries must be non-empty")
	ErrNegativeDelay      = errors.New("pacing.min_delay_ms must be non-negative")
	ErrInvalidDelayRange  = errors.New("pacing.max_delay_ms must be >= pacing.min_delay_ms")
	ErrInvalidFormat      = errors.New("output.format must be one of: tsv, csv, json")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrNegativeSampleSize = errors.New("logging.sample_results must be non-negative")
)

// Config represents the complete worker configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Pacing   PacingConfig   `yaml:"pacing"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig contains the normalization settings.
type PipelineConfig struct {
	// Brands is the ordered catalog; first match wins.
	Brands []string `yaml:"brands"`
}

// PacingConfig controls the artificial per-record delay used to pace
// observable progress. It never affects results.
type PacingConfig struct {
	Enabled    bool `yaml:"enabled"`
	MinDelayMs int  `yaml:"min_delay_ms"`
	MaxDelayMs int  `yaml:"max_delay_ms"`
}

// OutputConfig defines export behavior.
type OutputConfig struct {
	Path          string `yaml:"path"`
	Format        string `yaml:"format"`
	IncludeHeader bool   `yaml:"include_header"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level         string `yaml:"level"`
	ShowProgress  bool   `yaml:"show_progress"`
	SampleResults int    `yaml:"sample_results"`
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Brands: []string{"CRF", "CARF", "CARREFOUR", "PAPERMATE", "PM", "SHARPIE", "ROTRING"},
		},
		Pacing: PacingConfig{
			Enabled:    false,
			MinDelayMs: 40,
			MaxDelayMs: 220,
		},
		Output: OutputConfig{
			Path:          "out/labels.tsv",
			Format:        export.FormatTSV,
			IncludeHeader: true,
		},
		Logging: LoggingConfig{
			Level:         "info",
			ShowProgress:  true,
			SampleResults: 5,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Pipeline.Brands) == 0 {
		return ErrNoBrands
	}

	for i, brand := range c.Pipeline.Brands {
		if brand == "" {
			return fmt.Errorf("%w: brands[%d]", ErrEmptyBrand, i)
		}
	}

	if c.Pacing.MinDelayMs < 0 {
		return ErrNegativeDelay
	}

	if c.Pacing.MaxDelayMs < c.Pacing.MinDelayMs {
		return ErrInvalidDelayRange
	}

	switch c.Output.Format {
	case export.FormatTSV, export.FormatCSV, export.FormatJSON:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	if c.Logging.SampleResults < 0 {
		return ErrNegativeSampleSize
	}

	return nil
}

// MinDelay returns the lower pacing bound as a duration.
func (p *PacingConfig) MinDelay() time.Duration {
	return time.Duration(p.MinDelayMs) * time.Millisecond
}

// MaxDelay returns the upper pacing bound as a duration.
func (p *PacingConfig) MaxDelay() time.Duration {
	return time.Duration(p.MaxDelayMs) * time.Millisecond
}

// String returns a short description of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Brands: %d, Pacing: %v, Output: %s (%s)}",
		len(c.Pipeline.Brands),
		c.Pacing.Enabled,
		c.Output.Path,
		c.Output.Format,
	)
}
