package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/output"
	"github.com/lgbarn/chess-referee-go/internal/referee"
)

// parseMoveList splits a move list such as "e2e4 e7-e5, g1f3" into moves.
// Hyphens and commas are ignored.
func parseMoveList(text string) ([]chess.Move, error) {
	text = strings.NewReplacer("-", "", ",", " ").Replace(text)
	fields := strings.Fields(text)
	moves := make([]chess.Move, 0, len(fields))
	for i, field := range fields {
		move, ok := chess.ParseMove(strings.ToLower(field))
		if !ok {
			return nil, fmt.Errorf("move %d %q: %w", i+1, field, errors.ErrInvalidSquare)
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// playMoves applies moves to the game in order. It stops at the first
// rejected move or when the game ends, and returns the number of moves
// played.
func playMoves(ref *referee.Referee, moves []chess.Move, logger *zap.Logger) (int, error) {
	for i, move := range moves {
		res, err := ref.ApplyMove(move.From, move.To)
		if err != nil {
			return i, err
		}
		if !res.Success {
			logger.Warn("illegal move",
				zap.Int("ply", ref.TurnCount()),
				zap.Stringer("move", move),
				zap.Stringer("player", ref.CurrentPlayer()))
			return i, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: ref.TurnCount(), From: move.From, To: move.To}
		}
		if res.Status.IsOver() && i+1 < len(moves) {
			return i + 1, &errors.MoveError{Err: errors.ErrGameOver, Ply: ref.TurnCount(), From: moves[i+1].From, To: moves[i+1].To}
		}
	}
	return len(moves), nil
}

// writeGameReport reports the game to rw, with a move recommendation for
// the side to move when advise is set and the game is still on.
func writeGameReport(ctx context.Context, rw output.ReportWriter, ref *referee.Referee, played []chess.Move, advise bool, depth int) error {
	report := output.NewGameReport(ref, played)
	if advise && !ref.Status().IsOver() {
		res, err := ref.BestMove(ctx, ref.CurrentPlayer(), depth)
		if err != nil {
			return err
		}
		report.BestMove = output.NewBestMove(res)
	}
	if err := rw.WriteGame(report); err != nil {
		return err
	}
	return rw.Flush()
}
