// Package clock implements a chess clock with a per-move increment.
//
// Time is measured from the wall clock on demand rather than by a ticking
// goroutine: a running clock records when it was started and the remaining
// time is derived from the elapsed duration.
package clock

import (
	"fmt"
	"sync"
	"time"
)

// Clock is one player's clock. It is safe for concurrent use, so a display
// loop may poll it while the game applies moves.
type Clock struct {
	mu sync.Mutex

	initial   time.Duration
	increment time.Duration
	remaining time.Duration // as of startedAt when running
	startedAt time.Time
	running   bool
	started   bool
	stopped   bool

	now func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces the time source.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// New creates a stopped clock holding initial time. Each Pause adds
// increment.
func New(initial, increment time.Duration, opts ...Option) *Clock {
	c := &Clock{
		initial:   initial,
		increment: increment,
		remaining: initial,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start starts the clock the first time it is called. Later calls, and
// calls after Stop, do nothing.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || c.stopped {
		return
	}
	c.started = true
	c.run()
}

// Pause stops the clock and credits the increment.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.halt()
	if c.remaining > 0 {
		c.remaining += c.increment
	}
}

// Resume restarts a paused clock that still has time left.
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.running || c.remaining <= 0 {
		return
	}
	c.started = true
	c.run()
}

// Stop freezes the clock until Reset.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.halt()
	c.stopped = true
}

// Reset stops the clock and restores the initial time.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.initial
	c.running = false
	c.started = false
	c.stopped = false
}

// Expired reports whether the clock has run out of time.
func (c *Clock) Expired() bool {
	return c.Remaining() <= 0
}

// Running reports whether the clock is counting down.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running && c.current() > 0
}

// Remaining returns the time left, never negative.
func (c *Clock) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current()
}

// String formats the remaining time as m:ss.hh.
func (c *Clock) String() string {
	left := c.Remaining()
	minutes := left / time.Minute
	seconds := (left % time.Minute) / time.Second
	hundredths := (left % time.Second) / (10 * time.Millisecond)
	return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, hundredths)
}

func (c *Clock) run() {
	c.startedAt = c.now()
	c.running = true
}

func (c *Clock) halt() {
	if !c.running {
		return
	}
	c.remaining = c.current()
	c.running = false
}

func (c *Clock) current() time.Duration {
	left := c.remaining
	if c.running {
		left -= c.now().Sub(c.startedAt)
	}
	return max(left, 0)
}
