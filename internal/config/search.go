package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/search"
)

// SearchConfig holds settings for the move advisor.
type SearchConfig struct {
	// Depth is the search depth in plies.
	Depth int

	// Workers is the number of root moves searched in parallel.
	Workers int

	// Timeout bounds a single search; zero means no limit.
	Timeout time.Duration
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   search.DefaultDepth,
		Workers: 1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > search.MaxDepth {
		return fmt.Errorf("depth %d outside [1, %d]: %w", s.Depth, search.MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("negative timeout %v: %w", s.Timeout, errors.ErrInvalidConfig)
	}
	return nil
}

// Options converts the configuration into search engine options.
func (s *SearchConfig) Options() []search.Option {
	return []search.Option{
		search.WithDepth(s.Depth),
		search.WithWorkers(s.Workers),
		search.WithTimeout(s.Timeout),
	}
}
