package engine

import (
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   int
	}{
		{"white pawn at home", InitialFEN, "e2", 100 + 2*1 + 3*1},
		{"black rook pawn at home", InitialFEN, "a7", 100 + 2*1},
		{"advanced centre pawn", "4k3/8/8/8/4P3/8/8/4K3 w - -", "e4", 100 + 2*3 + 3*3},
		{"knight in corner", "4k3/8/8/8/8/8/8/N3K3 w - -", "a1", 300 + 3*2},
		{"centralised knight", "4k3/8/8/8/3N4/8/8/4K3 w - -", "d4", 300 + 3*8},
		{"knight blocked by own pieces", InitialFEN, "b1", 300 + 3*2},
		{"bishop at home", InitialFEN, "c1", 300},
		{"rook", InitialFEN, "a1", 500},
		{"queen", InitialFEN, "d8", 900},
		{"king", InitialFEN, "e1", 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustParseFEN(t, tt.fen)
			piece := board.Get(mustSquare(t, tt.square))
			if got := Evaluate(board, piece); got != tt.want {
				t.Errorf("Evaluate(%s) = %d, want %d", piece, got, tt.want)
			}
		})
	}
}

func TestEvaluateBoard(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		perspective chess.Colour
		want        int
	}{
		{"start is balanced for white", InitialFEN, chess.White, 0},
		{"start is balanced for black", InitialFEN, chess.Black, 0},
		{"extra queen", "4k3/8/8/8/8/8/8/3QK3 w - -", chess.White, 900},
		{"extra queen seen by black", "4k3/8/8/8/8/8/8/3QK3 w - -", chess.Black, -900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustParseFEN(t, tt.fen)
			if got := EvaluateBoard(board, tt.perspective); got != tt.want {
				t.Errorf("EvaluateBoard() = %d, want %d", got, tt.want)
			}
		})
	}
}
