// Package config provides configuration for the mockfish programs.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/mockfish-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics on LogFile: 0=nothing, 1=summaries,
	// 2=running commentary.
	Verbosity int

	Output  *OutputConfig
	Rules   *RulesConfig
	Play    *PlayConfig
	Perft   *PerftConfig
	Storage *StorageConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Rules:      NewRulesConfig(),
		Play:       NewPlayConfig(),
		Perft:      NewPerftConfig(),
		Storage:    NewStorageConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks value ranges, returning an error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0-2", c.Verbosity)
	}
	if c.Perft.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers %d must be at least 1", c.Perft.Workers)
	}
	if c.Perft.MaxDepth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft max depth %d must be at least 1", c.Perft.MaxDepth)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output and log writers are required")
	}
	return nil
}
