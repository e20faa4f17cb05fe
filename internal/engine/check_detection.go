package engine

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// AttackGrid counts, per square, how many pieces of one colour attack it.
type AttackGrid [chess.BoardSize][chess.BoardSize]int

// AttackMap accumulates the defended squares of every piece of the given
// colour into a per-square counter.
func AttackMap(board *chess.Board, colour chess.Colour) AttackGrid {
	var grid AttackGrid
	var buf [28]chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			for _, sq := range appendDefended(board, piece, buf[:0]) {
				grid[sq.Row][sq.Col]++
			}
		}
	}
	return grid
}

// KingPosition finds the king of the given colour. A board without exactly
// one such king is corrupt and yields ErrMissingKing.
func KingPosition(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	var found chess.Square
	count := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col].Is(chess.King, colour) {
				found = chess.Sq(row, col)
				count++
			}
		}
	}
	switch count {
	case 1:
		return found, nil
	case 0:
		return chess.Square{}, errors.Wrapf(errors.ErrMissingKing, "no %s king on board", colour)
	default:
		return chess.Square{}, errors.Wrapf(errors.ErrMissingKing, "%d %s kings on board", count, colour)
	}
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := KingPosition(board, colour)
	if err != nil {
		return false, err
	}
	return IsAttacked(board, kingSq, colour.Opposite()), nil
}

// IsAttacked returns true if the square is attacked by the given colour.
// It agrees with AttackMap(board, byColour)[row][col] > 0 but looks outward
// from the target square instead of building the whole map.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: a pawn attacks one row ahead of itself.
	pawnRow := sq.Row - chess.PawnDirection(byColour)
	for _, dc := range [2]int{-1, 1} {
		if board.Get(chess.Sq(pawnRow, sq.Col+dc)).Is(chess.Pawn, byColour) {
			return true
		}
	}

	// Check knight attacks
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(chess.Knight, byColour) {
			return true
		}
	}

	// Check king attacks
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])).Is(chess.King, byColour) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	if rayAttacked(board, sq, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return rayAttacked(board, sq, byColour, straightDirs, chess.Rook)
}

// rayAttacked walks outward from sq and reports whether the first piece met
// in any direction is a slider of byColour (the given kind or a queen).
func rayAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.PieceType) bool {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.Valid() {
			piece := board.Get(cur)
			if !piece.IsEmpty() {
				if piece.Colour == byColour && (piece.Type == slider || piece.Type == chess.Queen) {
					return true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
