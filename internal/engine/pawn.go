package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// pawnCandidates returns the pawn's pushes, captures and en passant
// destination, before check filtering.
func pawnCandidates(board *chess.Board, pawn chess.Piece) []chess.Square {
	var moves []chess.Square
	dir := chess.PawnDirection(pawn.Colour)

	// Forward single step
	one := pawn.Pos.Offset(dir, 0)
	if board.IsAvailable(one) {
		moves = append(moves, one)

		// Double step from the starting row
		if pawn.Pos.Row == chess.PawnStartRow(pawn.Colour) {
			two := pawn.Pos.Offset(2*dir, 0)
			if board.IsAvailable(two) {
				moves = append(moves, two)
			}
		}
	}

	// Diagonal captures
	ep, hasEP := EnPassantTarget(board, pawn)
	for _, sq := range DefendedSquares(board, pawn) {
		if board.IsOpponentPiece(sq, pawn.Colour) || (hasEP && sq == ep) {
			moves = append(moves, sq)
		}
	}
	return moves
}

// EnPassantTarget returns the square the pawn could move to by capturing en
// passant, if any. Eligibility holds only when the board's last move was an
// opponent pawn's double advance that landed beside this pawn.
func EnPassantTarget(board *chess.Board, pawn chess.Piece) (chess.Square, bool) {
	if pawn.Type != chess.Pawn {
		return chess.Square{}, false
	}
	last := board.LastMove
	if last.Piece.Type != chess.Pawn || last.Piece.Colour == pawn.Colour {
		return chess.Square{}, false
	}
	if distance(last.To.Row, last.From.Row) != 2 || last.To.Col != last.From.Col {
		return chess.Square{}, false
	}
	if last.To.Row != pawn.Pos.Row || distance(last.To.Col, pawn.Pos.Col) != 1 {
		return chess.Square{}, false
	}
	if board.Get(last.To) != last.Piece {
		return chess.Square{}, false
	}
	target := chess.Sq(last.To.Row+chess.PawnDirection(pawn.Colour), last.To.Col)
	if !board.IsAvailable(target) {
		return chess.Square{}, false
	}
	return target, true
}

// isPromotion reports whether moving the pawn to `to` promotes it.
func isPromotion(pawn chess.Piece, to chess.Square) bool {
	return pawn.Type == chess.Pawn && to.Row == chess.PromotionRow(pawn.Colour)
}
