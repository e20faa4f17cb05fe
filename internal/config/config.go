// Package config provides configuration for the chess referee.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Verbosity levels understood by the CLI logger.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // state transitions
	Verbose = 2 // search progress and rejected moves
)

// Config holds all program configuration.
type Config struct {
	Search   *SearchConfig
	Game     *GameConfig
	Analysis *AnalysisConfig

	Verbosity int // 0=quiet, 1=state transitions, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Analysis:   NewAnalysisConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that receives boards, moves and analysis lines.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every sub-configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d outside [%d, %d]: %w",
			c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return errors.Wrap(err, "search")
	}
	if err := c.Game.Validate(); err != nil {
		return errors.Wrap(err, "game")
	}
	if err := c.Analysis.Validate(); err != nil {
		return errors.Wrap(err, "analysis")
	}
	return nil
}
