package engine

import (
	"slices"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// Undo holds everything needed to reverse one executed move, including
// captured pieces and the side effects of castling and promotion.
type Undo struct {
	Move chess.Move

	// The moving piece as it stood before the move (a pawn for promotions,
	// with its original HasMoved flag).
	Moved chess.Piece

	// The captured piece and the square it stood on. For en passant the
	// square differs from Move.To.
	Captured  chess.Piece
	CaptureSq chess.Square

	// Castling rook relocation; Rook is empty for non-castling moves.
	Rook     chess.Piece
	RookFrom chess.Square
	RookTo   chess.Square

	PrevLastMove chess.MoveRecord
}

// MovePiece validates and executes a move. It returns false without
// touching the board if there is no piece on `from` or `to` is not one of
// that piece's legal destinations. An error is returned only for off-board
// squares or a corrupt board.
func MovePiece(board *chess.Board, from, to chess.Square) (bool, error) {
	if !from.Valid() || !to.Valid() {
		return false, &errors.MoveError{Err: errors.ErrInvalidSquare, From: from, To: to}
	}
	if board.Get(from).IsEmpty() {
		return false, nil
	}
	moves, err := LegalMoves(board, from)
	if err != nil {
		return false, err
	}
	if !slices.Contains(moves, to) {
		return false, nil
	}
	MakeMove(board, chess.Move{From: from, To: to})
	return true, nil
}

// MakeMove executes a move without checking legality and returns the
// information needed to reverse it. Dispatch is by piece kind:
//   - Pawn: promotion to a Queen on the farthest row, en passant when moving
//     diagonally onto an empty square, plain relocation otherwise.
//   - King: castling when moving two columns, plain relocation otherwise.
//   - Others: plain relocation.
//
// The board's LastMove is updated afterwards.
func MakeMove(board *chess.Board, move chess.Move) Undo {
	from, to := move.From, move.To
	piece := board.Get(from)
	undo := Undo{
		Move:         move,
		Moved:        piece,
		Captured:     board.Get(to),
		CaptureSq:    to,
		PrevLastMove: board.LastMove,
	}

	switch piece.Type {
	case chess.Pawn:
		switch {
		case isPromotion(piece, to):
			board.Clear(from)
			board.Set(to, chess.NewPiece(chess.Queen, piece.Colour, to))
		case to.Col != from.Col && board.IsAvailable(to):
			// En passant: the captured pawn stands beside the origin.
			captured := chess.Sq(from.Row, to.Col)
			undo.Captured = board.Get(captured)
			undo.CaptureSq = captured
			relocate(board, from, to)
			board.Clear(captured)
		default:
			relocate(board, from, to)
		}

	case chess.King:
		if isCastling(piece, from, to) {
			rookFrom, rookTo := castlingRook(to)
			undo.Rook = board.Get(rookFrom)
			undo.RookFrom, undo.RookTo = rookFrom, rookTo
			relocate(board, rookFrom, rookTo)
		}
		relocate(board, from, to)

	default:
		relocate(board, from, to)
	}

	board.LastMove = chess.MoveRecord{From: from, To: to, Piece: board.Get(to)}
	return undo
}

// UnmakeMove reverses a move executed by MakeMove. The board must not have
// been changed in between.
func UnmakeMove(board *chess.Board, undo Undo) {
	board.Clear(undo.Move.To)
	if !undo.Rook.IsEmpty() {
		board.Clear(undo.RookTo)
		board.Set(undo.RookFrom, undo.Rook)
	}
	board.Set(undo.Move.From, undo.Moved)
	if !undo.Captured.IsEmpty() {
		board.Set(undo.CaptureSq, undo.Captured)
	}
	board.LastMove = undo.PrevLastMove
}

// relocate clears the origin and places its piece on the destination,
// marking kings and rooks as moved.
func relocate(board *chess.Board, from, to chess.Square) {
	piece := board.Get(from)
	if piece.Type == chess.King || piece.Type == chess.Rook {
		piece.HasMoved = true
	}
	board.Clear(from)
	board.Set(to, piece)
}
