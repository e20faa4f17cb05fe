package search

import (
	"time"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-referee-go/internal/hashing"
)

// Search limits and defaults.
const (
	// MaxDepth bounds the recursion depth of any search.
	MaxDepth = 8

	DefaultDepth = 3

	// DefaultEvalCacheSize caps the number of cached leaf evaluations.
	DefaultEvalCacheSize = 1 << 18
)

// Option configures an Engine.
type Option func(*Engine)

// WithDepth sets the maximum search depth in plies. Values are clamped to
// [1, MaxDepth].
func WithDepth(depth int) Option {
	return func(e *Engine) {
		e.depth = min(max(depth, 1), MaxDepth)
	}
}

// WithWorkers sets how many root moves are searched in parallel.
// Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = max(n, 1)
	}
}

// WithTimeout sets a wall-clock budget per search. Zero means no limit
// beyond the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithLogger sets the logger for search progress.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithEvalCache shares an evaluation cache between engines. A nil cache
// disables caching.
func WithEvalCache(cache *hashing.EvalCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}
