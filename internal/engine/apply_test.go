package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-referee-go/internal/errors"
)

func TestMovePiece(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		move   string
		wantOK bool
		want   string // FEN after the move; empty means unchanged
	}{
		{
			name:   "pawn double step",
			fen:    InitialFEN,
			move:   "e2e4",
			wantOK: true,
			want:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		},
		{
			name:   "illegal pawn triple step",
			fen:    InitialFEN,
			move:   "e2e5",
			wantOK: false,
		},
		{
			name:   "empty origin",
			fen:    InitialFEN,
			move:   "e4e5",
			wantOK: false,
		},
		{
			name:   "capture own piece",
			fen:    InitialFEN,
			move:   "a1a2",
			wantOK: false,
		},
		{
			name:   "kingside castling moves the rook",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -",
			move:   "e1g1",
			wantOK: true,
			want:   "r3k2r/8/8/8/8/8/8/R4RK1 b kq -",
		},
		{
			name:   "queenside castling moves the rook",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R b KQkq -",
			move:   "e8c8",
			wantOK: true,
			want:   "2kr3r/8/8/8/8/8/8/R3K2R w KQ -",
		},
		{
			name:   "en passant removes the passed pawn",
			fen:    "4k3/8/8/3pP3/8/8/8/4K3 w - d6",
			move:   "e5d6",
			wantOK: true,
			want:   "4k3/8/3P4/8/8/8/8/4K3 b - -",
		},
		{
			name:   "promotion to queen",
			fen:    "4k3/P7/8/8/8/8/8/4K3 w - -",
			move:   "a7a8",
			wantOK: true,
			want:   "Q3k3/8/8/8/8/8/8/4K3 b - -",
		},
		{
			name:   "black capture promotion",
			fen:    "4k3/8/8/8/8/8/6p1/4K2R b K -",
			move:   "g2h1",
			wantOK: true,
			want:   "4k3/8/8/8/8/8/8/4K2q w - -",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := mustParseFEN(t, tt.fen)
			before := *board
			move, ok := chess.ParseMove(tt.move)
			if !ok {
				t.Fatalf("ParseMove(%q) failed", tt.move)
			}

			got, err := MovePiece(board, move.From, move.To)
			if err != nil {
				t.Fatalf("MovePiece() error = %v", err)
			}
			if got != tt.wantOK {
				t.Fatalf("MovePiece() = %v, want %v", got, tt.wantOK)
			}
			if !tt.wantOK {
				if *board != before {
					t.Errorf("rejected move modified the board:\n%s", board)
				}
				return
			}
			if fen := BoardToFEN(board, toMove.Opposite()); fen != tt.want {
				t.Errorf("after %s: FEN = %q, want %q", tt.move, fen, tt.want)
			}
		})
	}
}

func TestMovePiece_OffBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	before := *board

	ok, err := MovePiece(board, chess.Sq(6, 4), chess.Sq(8, 4))
	if ok {
		t.Error("MovePiece() = true for an off-board destination")
	}
	if !errors.Is(err, chesserrors.ErrInvalidSquare) {
		t.Errorf("MovePiece() error = %v, want ErrInvalidSquare", err)
	}
	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Errorf("MovePiece() error = %T, want *MoveError", err)
	}
	if *board != before {
		t.Error("MovePiece() modified the board")
	}
}

func TestMakeMove_MarksKingAndRookMoved(t *testing.T) {
	board, _ := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")

	MakeMove(board, chess.Move{From: mustSquare(t, "e1"), To: mustSquare(t, "g1")})

	if king := board.Get(mustSquare(t, "g1")); !king.Is(chess.King, chess.White) || !king.HasMoved {
		t.Errorf("g1 = %+v, want moved White King", king)
	}
	if rook := board.Get(mustSquare(t, "f1")); !rook.Is(chess.Rook, chess.White) || !rook.HasMoved {
		t.Errorf("f1 = %+v, want moved White Rook", rook)
	}
	if !board.Get(mustSquare(t, "h1")).IsEmpty() {
		t.Error("h1 should be empty after castling")
	}
}

func TestMakeUnmake_RestoresBoard(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq -",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq -",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6",
		"1n2k3/P7/8/8/8/8/8/4K3 w - -",
		"4k3/8/8/8/8/8/1p6/N3K3 b - -",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
	}

	for _, fen := range fens {
		board, toMove := mustParseFEN(t, fen)
		before := *board

		moves, err := AllMoves(board, toMove)
		if err != nil {
			t.Fatalf("AllMoves(%q) error = %v", fen, err)
		}
		for _, move := range moves {
			undo := MakeMove(board, move)
			if *board == before {
				t.Errorf("%s: MakeMove(%s) did not change the board", fen, move)
			}
			UnmakeMove(board, undo)
			if *board != before {
				t.Errorf("%s: UnmakeMove(%s) did not restore the board:\n%s\nwant:\n%s", fen, move, board, &before)
			}
		}
	}
}

// perft counts the leaf nodes of the legal move tree to the given depth.
func perft(t *testing.T, board *chess.Board, toMove chess.Colour, depth int) int {
	t.Helper()
	if depth == 0 {
		return 1
	}
	moves, err := AllMoves(board, toMove)
	if err != nil {
		t.Fatalf("AllMoves() error = %v", err)
	}
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, move := range moves {
		undo := MakeMove(board, move)
		nodes += perft(t, board, toMove.Opposite(), depth-1)
		UnmakeMove(board, undo)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 1, 48},
		{"kiwipete depth 2", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 2, 2039},
		{"endgame depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 1, 14},
		{"endgame depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 2, 191},
		{"endgame depth 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 3, 2812},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.depth > 2 {
				t.Skip("skipping deep perft in short mode")
			}
			board, toMove := mustParseFEN(t, tt.fen)
			if got := perft(t, board, toMove, tt.depth); got != tt.want {
				t.Errorf("perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}
