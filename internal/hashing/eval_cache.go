package hashing

import (
	"sync"
	"sync/atomic"
)

// EvalCache memoises static evaluation scores by Zobrist key. It is safe
// for concurrent use by parallel searches.
type EvalCache struct {
	mu          sync.RWMutex
	scores      map[uint64]int
	maxCapacity int

	hits   atomic.Int64
	misses atomic.Int64
}

// NewEvalCache creates a cache holding at most maxCapacity scores.
// maxCapacity of 0 means unlimited capacity.
func NewEvalCache(maxCapacity int) *EvalCache {
	return &EvalCache{
		scores:      make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached score for the key, if present.
func (c *EvalCache) Get(key uint64) (int, bool) {
	c.mu.RLock()
	score, ok := c.scores[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return score, ok
}

// Put stores a score. Once the cache is full new keys are dropped.
func (c *EvalCache) Put(key uint64, score int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.scores[key]; !ok && c.isFull() {
		return
	}
	c.scores[key] = score
}

// Len returns the number of cached scores.
func (c *EvalCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *EvalCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFull()
}

func (c *EvalCache) isFull() bool {
	return c.maxCapacity > 0 && len(c.scores) >= c.maxCapacity
}

// Stats returns the number of lookups that hit and missed.
func (c *EvalCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Clear removes every cached score and resets the statistics.
func (c *EvalCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scores = make(map[uint64]int)
	c.hits.Store(0)
	c.misses.Store(0)
}
