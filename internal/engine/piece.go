// Package engine implements the chess rules: move generation per piece
// kind, check filtering, special moves, move execution and reversal,
// attack maps and static evaluation.
package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// DefendedSquares returns the raw geometric attack set of the piece,
// ignoring pins and check. Occupied squares at the end of a ray are
// included regardless of the occupant's colour.
func DefendedSquares(board *chess.Board, piece chess.Piece) []chess.Square {
	return appendDefended(board, piece, nil)
}

func appendDefended(board *chess.Board, piece chess.Piece, out []chess.Square) []chess.Square {
	switch piece.Type {
	case chess.Pawn:
		dir := chess.PawnDirection(piece.Colour)
		for _, dc := range [2]int{-1, 1} {
			if sq := piece.Pos.Offset(dir, dc); sq.Valid() {
				out = append(out, sq)
			}
		}
		return out

	case chess.Knight:
		return leap(piece.Pos, knightOffsets, out)

	case chess.Bishop:
		return slide(board, piece.Pos, diagonalDirs, out)

	case chess.Rook:
		return slide(board, piece.Pos, straightDirs, out)

	case chess.Queen:
		out = slide(board, piece.Pos, diagonalDirs, out)
		return slide(board, piece.Pos, straightDirs, out)

	case chess.King:
		return leap(piece.Pos, kingOffsets, out)
	}
	return out
}

// candidateSquares returns the destinations a piece could reach before
// check filtering: the geometric moves, pawn pushes and captures, and
// castling for the king.
func candidateSquares(board *chess.Board, piece chess.Piece) []chess.Square {
	switch piece.Type {
	case chess.Pawn:
		return pawnCandidates(board, piece)
	case chess.King:
		moves := DefendedSquares(board, piece)
		return append(moves, castlingCandidates(board, piece)...)
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return DefendedSquares(board, piece)
	}
	return nil
}

// mobility counts the squares a piece attacks that are not occupied by its
// own side.
func mobility(board *chess.Board, piece chess.Piece) int {
	var buf [28]chess.Square
	n := 0
	for _, sq := range appendDefended(board, piece, buf[:0]) {
		target := board.Get(sq)
		if target.IsEmpty() || target.Colour != piece.Colour {
			n++
		}
	}
	return n
}
