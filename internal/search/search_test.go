package search

import (
	"context"
	"testing"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/testutil"
)

// exhaustive is plain minimax without pruning, used as the reference the
// pruned search must agree with.
func exhaustive(t *testing.T, board *chess.Board, perspective, side chess.Colour, depth, ply int) int {
	t.Helper()
	if depth == 0 {
		return engine.EvaluateBoard(board, perspective)
	}
	moves, err := engine.AllMoves(board, side)
	if err != nil {
		t.Fatalf("AllMoves() error = %v", err)
	}
	if len(moves) == 0 {
		inCheck, err := engine.IsInCheck(board, side)
		if err != nil {
			t.Fatalf("IsInCheck() error = %v", err)
		}
		switch {
		case !inCheck:
			return 0
		case side == perspective:
			return -(MateScore - ply)
		default:
			return MateScore - ply
		}
	}

	maximizing := side == perspective
	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score := exhaustive(t, board, perspective, side.Opposite(), depth-1, ply+1)
		engine.UnmakeMove(board, undo)
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

// exhaustiveBest returns the first root move with the highest minimax score.
func exhaustiveBest(t *testing.T, board *chess.Board, colour chess.Colour, depth int) (chess.Move, int) {
	t.Helper()
	moves, err := engine.AllMoves(board, colour)
	if err != nil {
		t.Fatalf("AllMoves() error = %v", err)
	}
	var bestMove chess.Move
	bestScore := -Infinity
	for _, move := range moves {
		undo := engine.MakeMove(board, move)
		score := exhaustive(t, board, colour, colour.Opposite(), depth-1, 1)
		engine.UnmakeMove(board, undo)
		if score > bestScore {
			bestMove, bestScore = move, score
		}
	}
	return bestMove, bestScore
}

var comparisonPositions = []struct {
	name  string
	fen   string
	depth int
}{
	{"start depth 1", engine.InitialFEN, 1},
	{"start depth 2", engine.InitialFEN, 2},
	{"start depth 3", engine.InitialFEN, 3},
	{"rook endgame", "4k3/8/8/8/8/8/4P3/4K2R w K -", 3},
	{"black to move", "4k3/3p4/8/4P3/8/8/8/4K3 b - -", 3},
	{"hanging queen", "4k3/8/8/3q4/8/8/3R4/4K3 w - -", 3},
	{"pawn race", "8/5k2/8/1P6/8/8/6p1/3K4 w - -", 3},
}

func TestBestMove_MatchesExhaustiveMinimax(t *testing.T) {
	for _, tt := range comparisonPositions {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := testutil.MustBoard(t, tt.fen)
			wantMove, wantScore := exhaustiveBest(t, board.Copy(), toMove, tt.depth)

			got, err := New(WithDepth(tt.depth)).BestMove(context.Background(), board, toMove)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Score, wantScore, "score")
			testutil.AssertEqual(t, got.Move, wantMove, "move")
			testutil.AssertEqual(t, got.Depth, tt.depth, "depth")
		})
	}
}

func TestBestMove_ParallelMatchesSequential(t *testing.T) {
	for _, tt := range comparisonPositions {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := testutil.MustBoard(t, tt.fen)

			seq, err := New(WithDepth(tt.depth), WithWorkers(1)).BestMove(context.Background(), board, toMove)
			testutil.AssertNoError(t, err)
			par, err := New(WithDepth(tt.depth), WithWorkers(4)).BestMove(context.Background(), board, toMove)
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, par.Move, seq.Move, "move")
			testutil.AssertEqual(t, par.Score, seq.Score, "score")
			testutil.AssertEqual(t, par.Depth, seq.Depth, "depth")
		})
	}
}

func TestBestMove_FindsMate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"scholar's mate", "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq -", "f3f7"},
		{"fool's mate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq -", "d8h4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := testutil.MustBoard(t, tt.fen)

			got, err := New(WithDepth(3)).BestMove(context.Background(), board, toMove)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got.Move, testutil.MustMove(t, tt.want))
			testutil.AssertEqual(t, got.Score, MateScore-1, "mate in one")
			testutil.AssertEqual(t, got.Depth, 2, "search stops once mate is proven")
		})
	}
}

func TestBestMove_DoesNotModifyBoard(t *testing.T) {
	board, toMove := testutil.MustBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	before := board.Copy()

	_, err := New(WithDepth(2), WithWorkers(2)).BestMove(context.Background(), board, toMove)
	testutil.AssertNoError(t, err)
	testutil.AssertPosition(t, board, before)
}

func TestBestMove_CancelledReturnsLegalMove(t *testing.T) {
	board := chess.NewInitialBoard()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := New(WithDepth(MaxDepth)).BestMove(ctx, board, chess.White)
	testutil.AssertNoError(t, err, "cutoff is not an error")
	testutil.AssertEqual(t, got.Depth, 0)

	legal, err := engine.AllMoves(board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Move, legal[0], "first legal move")
}

func TestBestMove_TimeoutKeepsCompletedDepth(t *testing.T) {
	board := chess.NewInitialBoard()

	got, err := New(WithDepth(MaxDepth), WithTimeout(50*time.Millisecond)).BestMove(context.Background(), board, chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, got.Depth < MaxDepth, "depth %d should be cut short", got.Depth)

	ok, err := engine.MovePiece(board.Copy(), got.Move.From, got.Move.To)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "move %s must be legal", got.Move)
}

func TestBestMove_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   error
	}{
		{"stalemated side", "7k/5Q2/6K1/8/8/8/8/8 b - -", chess.Black, errors.ErrNoLegalMoves},
		{"checkmated side", "R5k1/5ppp/8/8/8/8/8/6K1 b - -", chess.Black, errors.ErrNoLegalMoves},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - -", chess.Black, errors.ErrMissingKing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			_, err := New().BestMove(context.Background(), board, tt.colour)
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		depth int
	}{
		{"default", nil, DefaultDepth},
		{"explicit", []Option{WithDepth(5)}, 5},
		{"clamped high", []Option{WithDepth(100)}, MaxDepth},
		{"clamped low", []Option{WithDepth(0)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, New(tt.opts...).Depth(), tt.depth)
		})
	}
}
