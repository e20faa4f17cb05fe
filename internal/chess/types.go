// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "white"/"w" or "black"/"b" (any case) to a colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(s) {
	case "w", "white":
		return White, true
	case "b", "black":
		return Black, true
	}
	return Black, false
}

// PieceType represents a chess piece kind.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FirstRow = 0
	LastRow  = BoardSize - 1
)

// Square identifies a board cell. Row 0 is Black's back rank (rank 8) and
// row 7 is White's back rank (rank 1); Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValidPosition reports whether row and col are both inside the board.
func IsValidPosition(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return IsValidPosition(s.Row, s.Col)
}

// Offset returns the square displaced by dr rows and dc columns.
// The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, true
}

// BackRow returns the row holding the colour's pieces in the standard setup.
func BackRow(colour Colour) int {
	if colour == White {
		return LastRow
	}
	return FirstRow
}

// PromotionRow returns the farthest row for the colour's pawns.
func PromotionRow(colour Colour) int {
	return BackRow(colour.Opposite())
}

// PawnStartRow returns the row the colour's pawns start on.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return LastRow - 1
	}
	return FirstRow + 1
}

// PawnDirection returns -1 for White, +1 for Black (row delta of a pawn advance).
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove converts coordinate notation such as "e2e4" to a Move.
func ParseMove(text string) (Move, bool) {
	if len(text) != 4 {
		return Move{}, false
	}
	from, ok := ParseSquare(text[:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(text[2:])
	if !ok {
		return Move{}, false
	}
	return Move{From: from, To: to}, true
}
