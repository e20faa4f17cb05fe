package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-referee-go/internal/search"
)

// SearchAnalyzer returns an AnalyzeFunc that asks the engine for the best
// move of each job. Engines are safe for concurrent use, so one engine
// serves every worker.
func SearchAnalyzer(engine *search.Engine) AnalyzeFunc {
	return func(ctx context.Context, job Job) Result {
		res, err := engine.BestMove(ctx, job.Board, job.ToMove)
		if err != nil {
			return Result{Err: err}
		}
		return Result{
			Move:  res.Move,
			Score: res.Score,
			Depth: res.Depth,
			Nodes: res.Nodes,
		}
	}
}

// AnalyzeAll runs every job through a pool and returns the results in job
// order.
func AnalyzeAll(ctx context.Context, jobs []Job, analyze AnalyzeFunc, opts ...PoolOption) []Result {
	pool := NewPool(ctx, analyze, opts...)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
