package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// Direction and offset sets, as (row, col) deltas.
var (
	diagonalDirs  = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	straightDirs  = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	knightOffsets = [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slide appends the squares reached by casting a ray from `from` along each
// direction. A ray stops at the board edge or at the first occupied square,
// which is included whatever its colour.
func slide(board *chess.Board, from chess.Square, dirs [][2]int, out []chess.Square) []chess.Square {
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for sq.Valid() {
			out = append(out, sq)
			if !board.IsAvailable(sq) {
				break // Blocked
			}
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return out
}

// leap appends every on-board square at one of the given offsets from `from`.
func leap(from chess.Square, offsets [][2]int, out []chess.Square) []chess.Square {
	for _, off := range offsets {
		if sq := from.Offset(off[0], off[1]); sq.Valid() {
			out = append(out, sq)
		}
	}
	return out
}

// isStraightClear checks that every square strictly between two squares on
// the same row is empty.
func isStraightClear(board *chess.Board, row, fromCol, toCol int) bool {
	step := direction(toCol - fromCol)
	for col := fromCol + step; col != toCol; col += step {
		if !board.IsAvailable(chess.Sq(row, col)) {
			return false
		}
	}
	return true
}

// distance is the absolute difference between two rows or columns.
func distance(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}

// direction is -1, 0 or 1 following the sign of d.
func direction(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
