package testutil

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
)

// MustBoard parses a FEN string and returns the board and the side to move.
// It calls t.Fatal if parsing fails.
func MustBoard(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", fen, err)
	}
	return board, toMove
}

// MustSquare parses an algebraic square name such as "e4".
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid test square %q", name)
	}
	return sq
}

// MustMove parses a move in coordinate notation such as "e2e4".
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, ok := chess.ParseMove(text)
	if !ok {
		t.Fatalf("invalid test move %q", text)
	}
	return move
}

// PlayMoves applies moves in coordinate notation directly to a board.
// Turn order is not enforced. It calls t.Fatal on the first move that is
// rejected.
func PlayMoves(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		move := MustMove(t, text)
		ok, err := engine.MovePiece(board, move.From, move.To)
		if err != nil {
			t.Fatalf("move %s: %v", text, err)
		}
		if !ok {
			t.Fatalf("move %s rejected on board:\n%s", text, board)
		}
	}
}
