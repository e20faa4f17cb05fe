// Package search chooses moves by minimax with alpha-beta pruning.
//
// Every search runs on a private copy of the position: moves are applied
// with engine.MakeMove and reversed with engine.UnmakeMove, so the caller's
// board is never touched. Depth is bounded by MaxDepth and deepened one
// ply at a time; when the context is cancelled the deepest completed
// iteration is returned.
package search

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/hashing"
)

// Score bounds. Mate scores are offset by the ply at which mate happens so
// that faster mates score higher.
const (
	Infinity  = math.MaxInt32
	MateScore = 1_000_000
)

// nodes between context polls
const pollInterval = 1024

var errAborted = errors.New("search aborted")

// Result is the outcome of a search.
type Result struct {
	Move  chess.Move
	Score int   // from the searching side's point of view
	Depth int   // deepest completed iteration; 0 if none completed
	Nodes int64 // positions visited
}

// Engine is a move advisor. It holds only configuration and is safe for
// concurrent use.
type Engine struct {
	depth   int
	workers int
	timeout time.Duration
	logger  *zap.Logger
	cache   *hashing.EvalCache
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		depth:   DefaultDepth,
		workers: 1,
		logger:  zap.NewNop(),
		cache:   hashing.NewEvalCache(DefaultEvalCacheSize),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Depth returns the configured maximum depth.
func (e *Engine) Depth() int {
	return e.depth
}

// BestMove searches the position for the given colour to the configured
// depth. It returns ErrNoLegalMoves if the colour cannot move. If the
// context ends before the first iteration completes, the first legal move
// is returned with Depth 0; cutoff is never an error.
func (e *Engine) BestMove(ctx context.Context, board *chess.Board, colour chess.Colour) (Result, error) {
	return e.BestMoveDepth(ctx, board, colour, e.depth)
}

// BestMoveDepth is BestMove with an explicit depth, clamped to [1, MaxDepth].
func (e *Engine) BestMoveDepth(ctx context.Context, board *chess.Board, colour chess.Colour, depth int) (Result, error) {
	depth = min(max(depth, 1), MaxDepth)
	root := board.Copy()

	moves, err := engine.AllMoves(root, colour)
	if err != nil {
		return Result{}, err
	}
	if len(moves) == 0 {
		return Result{}, errors.Wrapf(errors.ErrNoLegalMoves, "%s to move", colour)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	s := &searcher{ctx: ctx, perspective: colour, cache: e.cache, nodes: new(atomic.Int64)}
	start := time.Now()

	best := Result{Move: moves[0]}
	for d := 1; d <= depth && ctx.Err() == nil; d++ {
		res, err := e.searchRoot(s, root, moves, d)
		if errors.Is(err, errAborted) {
			e.logger.Debug("search cut off",
				zap.Int("depth", d),
				zap.Int("completed", best.Depth),
				zap.Duration("elapsed", time.Since(start)))
			break
		}
		if err != nil {
			return Result{}, err
		}
		best = res
		e.logger.Debug("search depth completed",
			zap.Int("depth", d),
			zap.Stringer("move", best.Move),
			zap.Int("score", best.Score),
			zap.Int64("nodes", s.nodes.Load()),
			zap.Duration("elapsed", time.Since(start)))

		// A forced mate cannot be improved by searching deeper.
		if abs(best.Score) >= MateScore-MaxDepth {
			break
		}
	}
	best.Nodes = s.nodes.Load()
	return best, nil
}

// searchRoot scores every root move at the given depth and returns the
// best one. Ties keep the earlier move.
func (e *Engine) searchRoot(s *searcher, root *chess.Board, moves []chess.Move, depth int) (Result, error) {
	if e.workers > 1 && len(moves) > 1 {
		return e.searchRootParallel(s, root, moves, depth)
	}

	board := root.Copy()
	best := Result{Depth: depth, Score: -Infinity}
	alpha := -Infinity
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score, err := s.minimax(board, depth-1, 1, alpha, Infinity, false)
		engine.UnmakeMove(board, undo)
		if err != nil {
			return Result{}, err
		}
		if score > best.Score {
			best.Move, best.Score = move, score
		}
		alpha = max(alpha, score)
	}
	return best, nil
}

// searchRootParallel scores root moves concurrently, each on its own board
// copy with a full window, so the result matches the sequential search.
func (e *Engine) searchRootParallel(s *searcher, root *chess.Board, moves []chess.Move, depth int) (Result, error) {
	scores := make([]int, len(moves))

	g, ctx := errgroup.WithContext(s.ctx)
	g.SetLimit(e.workers)
	child := *s
	child.ctx = ctx
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			board := root.Copy()
			engine.MakeMove(board, move)
			score, err := child.minimax(board, depth-1, 1, -Infinity, Infinity, false)
			scores[i] = score
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := Result{Depth: depth, Move: moves[0], Score: scores[0]}
	for i := 1; i < len(moves); i++ {
		if scores[i] > best.Score {
			best.Move, best.Score = moves[i], scores[i]
		}
	}
	return best, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
