package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// AnalysisConfig holds settings for batch analysis of many positions.
type AnalysisConfig struct {
	// Workers is the number of positions analysed concurrently.
	Workers int

	// BufferSize is the job and result channel capacity. Zero means
	// twice the worker count.
	BufferSize int
}

// NewAnalysisConfig creates an AnalysisConfig using one worker per CPU.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.BufferSize < 0 {
		return fmt.Errorf("negative buffer size %d: %w", a.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
