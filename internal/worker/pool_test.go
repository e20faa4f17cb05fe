package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// noopAnalyzeFunc returns an analyze function that does nothing.
func noopAnalyzeFunc() AnalyzeFunc {
	return func(ctx context.Context, job Job) Result {
		return Result{}
	}
}

// countingAnalyzeFunc returns an analyze function that increments a counter.
func countingAnalyzeFunc(counter *int32) AnalyzeFunc {
	return func(ctx context.Context, job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Score: job.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func testJob(i int) Job {
	return Job{Index: i, Board: chess.NewInitialBoard(), ToMove: chess.White}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var analyzed int32
	pool := NewPool(context.Background(), countingAnalyzeFunc(&analyzed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(testJob(i))
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numJobs {
		t.Errorf("results = %d; want %d", resultCount, numJobs)
	}
	if got := atomic.LoadInt32(&analyzed); got != numJobs {
		t.Errorf("analyzed = %d; want %d", got, numJobs)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(context.Background(), noopAnalyzeFunc(), WithBufferSize(5))
	pool.Start()

	const numJobs = 5
	for i := 0; i < numJobs; i++ {
		pool.Submit(testJob(i))
	}

	go pool.Close()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
}

// TestPoolStopCancelsJobs verifies that jobs after Stop report the
// cancellation instead of being analysed.
func TestPoolStopCancelsJobs(t *testing.T) {
	var analyzed int32
	release := make(chan struct{})
	blocking := func(ctx context.Context, job Job) Result {
		atomic.AddInt32(&analyzed, 1)
		select {
		case <-release:
		case <-ctx.Done():
			return Result{Err: ctx.Err()}
		}
		return Result{}
	}

	pool := NewPool(context.Background(), blocking, WithWorkers(1), WithBufferSize(10))
	pool.Start()

	const numJobs = 5
	for i := 0; i < numJobs; i++ {
		pool.Submit(testJob(i))
	}
	pool.Stop()
	close(release)

	go pool.Close()

	seen := 0
	for res := range pool.Results() {
		seen++
		if res.Err != nil && !errors.Is(res.Err, context.Canceled) {
			t.Errorf("job %d: Err = %v, want context.Canceled", res.Index, res.Err)
		}
	}
	if seen != numJobs {
		t.Errorf("results = %d; want %d", seen, numJobs)
	}
	if got := atomic.LoadInt32(&analyzed); got > 1 {
		t.Errorf("analyzed = %d after Stop; want at most 1", got)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(context.Background(), noopAnalyzeFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolParentContext verifies that cancelling the parent context stops the pool.
func TestPoolParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, noopAnalyzeFunc())

	cancel()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after its context is cancelled")
	}
	if pool.TrySubmit(testJob(0)) {
		t.Error("TrySubmit should fail on a stopped pool")
	}
	pool.Start()
	pool.Close()
}

// TestPoolTrySubmit tests non-blocking submission.
func TestPoolTrySubmit(t *testing.T) {
	slow := func(ctx context.Context, job Job) Result {
		select {
		case <-time.After(100 * time.Millisecond):
		case <-ctx.Done():
		}
		return Result{}
	}

	// Small buffer to test blocking behavior
	pool := NewPool(context.Background(), slow, WithBufferSize(2))
	pool.Start()

	// First two should succeed (buffer size 2)
	if !pool.TrySubmit(testJob(0)) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(testJob(1)) {
		t.Error("second TrySubmit should succeed")
	}

	// Third might fail if buffer is full (timing-dependent, just verify no panic)
	pool.TrySubmit(testJob(2))

	// After stop, TrySubmit should return false
	pool.Stop()
	if pool.TrySubmit(testJob(3)) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

// TestPoolResultsKeepIndex verifies every result carries its job's index
// and label, whatever the analyze function returns.
func TestPoolResultsKeepIndex(t *testing.T) {
	variableDelay := func(ctx context.Context, job Job) Result {
		if job.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return Result{Index: -1, Label: "overwritten"}
	}

	pool := NewPool(context.Background(), variableDelay, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		job := testJob(i)
		job.Label = string(rune('a' + i))
		pool.Submit(job)
	}

	go pool.Close()

	seen := make(map[int]string)
	for res := range pool.Results() {
		seen[res.Index] = res.Label
	}

	if len(seen) != numJobs {
		t.Errorf("received %d results; want %d", len(seen), numJobs)
	}
	for i := 0; i < numJobs; i++ {
		if want := string(rune('a' + i)); seen[i] != want {
			t.Errorf("index %d label = %q; want %q", i, seen[i], want)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(context.Background(), countingAnalyzeFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numJobs = 100
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(testJob(i))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("analyzed = %d; want %d", got, numJobs)
	}
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 2},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 8},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 2},
		{"negative workers ignored", []PoolOption{WithWorkers(-1)}, 1, 2},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(context.Background(), noopAnalyzeFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
