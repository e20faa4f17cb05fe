package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// Columns involved in castling.
const (
	kingStartCol     = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
	kingsideKingCol  = 6
	queensideKingCol = 2
	kingsideRookTo   = 5
	queensideRookTo  = 3
)

// castlingCandidates returns the king's castling destinations. Legality is
// decided here in full: neither piece has moved, the squares between them
// are empty, the king is not in check, and no square the king crosses or
// lands on is attacked. The generic check filter only re-tests the final
// square.
func castlingCandidates(board *chess.Board, king chess.Piece) []chess.Square {
	row := chess.BackRow(king.Colour)
	if king.HasMoved || king.Pos != chess.Sq(row, kingStartCol) {
		return nil
	}

	attacks := AttackMap(board, king.Colour.Opposite())
	if attacks[row][kingStartCol] > 0 {
		return nil
	}

	var moves []chess.Square
	if canCastle(board, king.Colour, row, kingsideRookCol, kingsideKingCol, &attacks) {
		moves = append(moves, chess.Sq(row, kingsideKingCol))
	}
	if canCastle(board, king.Colour, row, queensideRookCol, queensideKingCol, &attacks) {
		moves = append(moves, chess.Sq(row, queensideKingCol))
	}
	return moves
}

// canCastle checks one side: the unmoved rook, the empty path between king
// and rook, and the king's transit and landing squares being unattacked.
func canCastle(board *chess.Board, colour chess.Colour, row, rookCol, kingToCol int, attacks *AttackGrid) bool {
	rook := board.Get(chess.Sq(row, rookCol))
	if !rook.Is(chess.Rook, colour) || rook.HasMoved {
		return false
	}
	if !isStraightClear(board, row, kingStartCol, rookCol) {
		return false
	}
	step := direction(kingToCol - kingStartCol)
	for col := kingStartCol + step; ; col += step {
		if attacks[row][col] > 0 {
			return false
		}
		if col == kingToCol {
			break
		}
	}
	return true
}

// castlingRook returns the rook's origin and destination for a king move
// that castles to kingTo.
func castlingRook(kingTo chess.Square) (from, to chess.Square) {
	if kingTo.Col == kingsideKingCol {
		return chess.Sq(kingTo.Row, kingsideRookCol), chess.Sq(kingTo.Row, kingsideRookTo)
	}
	return chess.Sq(kingTo.Row, queensideRookCol), chess.Sq(kingTo.Row, queensideRookTo)
}

// isCastling reports whether a king move from `from` to `to` is a castling move.
func isCastling(piece chess.Piece, from, to chess.Square) bool {
	return piece.Type == chess.King && from.Row == to.Row && distance(to.Col, from.Col) == 2
}
