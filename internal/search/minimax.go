package search

import (
	"context"
	"sync/atomic"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/hashing"
)

// searcher carries the state of one BestMove call. Parallel root workers
// share the node counter and the cache.
type searcher struct {
	ctx         context.Context
	perspective chess.Colour
	cache       *hashing.EvalCache
	nodes       *atomic.Int64
}

// minimax returns the value of the position for the searching side. The
// maximizing side is the searching colour; the minimizing side is its
// opponent. Siblings are pruned once beta <= alpha.
func (s *searcher) minimax(board *chess.Board, depth, ply, alpha, beta int, maximizing bool) (int, error) {
	if n := s.nodes.Add(1); n%pollInterval == 0 && s.ctx.Err() != nil {
		return 0, errAborted
	}
	if depth == 0 {
		return s.evaluate(board), nil
	}

	side := s.perspective
	if !maximizing {
		side = side.Opposite()
	}
	moves, err := engine.AllMoves(board, side)
	if err != nil {
		return 0, err
	}
	if len(moves) == 0 {
		return s.terminal(board, side, ply)
	}

	if maximizing {
		best := -Infinity
		for _, move := range moves {
			undo := engine.MakeMove(board, move)
			score, err := s.minimax(board, depth-1, ply+1, alpha, beta, false)
			engine.UnmakeMove(board, undo)
			if err != nil {
				return 0, err
			}
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best, nil
	}

	best := Infinity
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score, err := s.minimax(board, depth-1, ply+1, alpha, beta, true)
		engine.UnmakeMove(board, undo)
		if err != nil {
			return 0, err
		}
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best, nil
}

// terminal scores a position where side has no legal move: checkmate is
// worth the mate score less the distance to mate, stalemate is a draw.
func (s *searcher) terminal(board *chess.Board, side chess.Colour, ply int) (int, error) {
	inCheck, err := engine.IsInCheck(board, side)
	if err != nil || !inCheck {
		return 0, err
	}
	if side == s.perspective {
		return -(MateScore - ply), nil
	}
	return MateScore - ply, nil
}

// evaluate returns the static score of the board for the searching side.
// Scores are cached from White's point of view.
func (s *searcher) evaluate(board *chess.Board) int {
	var white int
	if s.cache == nil {
		white = engine.EvaluateBoard(board, chess.White)
	} else {
		key := hashing.Hash(board)
		var ok bool
		if white, ok = s.cache.Get(key); !ok {
			white = engine.EvaluateBoard(board, chess.White)
			s.cache.Put(key, white)
		}
	}
	if s.perspective == chess.White {
		return white
	}
	return -white
}
