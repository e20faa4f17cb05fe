// Package worker analyses many positions in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// Job is one position to analyse.
type Job struct {
	Index  int // original position in the input, for reordering
	Label  string
	Board  *chess.Board
	ToMove chess.Colour
}

// Result is the analysis of one Job.
type Result struct {
	Index int
	Label string
	Move  chess.Move
	Score int
	Depth int
	Nodes int64
	Err   error
}

// AnalyzeFunc analyses a single job. It should return promptly once ctx
// is done.
type AnalyzeFunc func(ctx context.Context, job Job) Result

// Pool runs an AnalyzeFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	analyze    AnalyzeFunc
	wg         sync.WaitGroup
	stopped    atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, a buffer of twice the worker
// count. Cancelling ctx stops the pool as Stop does.
func NewPool(ctx context.Context, analyze AnalyzeFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		analyze:    analyze,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize == 0 {
		p.bufferSize = 2 * p.numWorkers
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker analyses jobs until the job channel is closed. Jobs received
// after Stop are answered with the context error without being analysed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if err := p.ctx.Err(); err != nil {
			p.results <- Result{Index: job.Index, Label: job.Label, Err: err}
			continue
		}
		res := p.analyze(p.ctx, job)
		res.Index, res.Label = job.Index, job.Label
		p.results <- res
	}
}

// Submit queues a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It returns false if the buffer
// is full or the pool has been stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running analyses; queued jobs are drained with an error
// result instead of being analysed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
	p.cancel()
}

// IsStopped reports whether Stop was called or the pool's context ended.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load() || p.ctx.Err() != nil
}

// Close closes the job channel and waits for the workers to finish, then
// closes the result channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
