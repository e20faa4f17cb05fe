package chess

import (
	"strings"
)

// Piece is the occupant of a square. The zero value is an empty square.
// HasMoved is only meaningful for rooks and kings; it is set the first
// time the piece is relocated and is never cleared by play.
type Piece struct {
	Type     PieceType
	Colour   Colour
	Pos      Square
	HasMoved bool
}

// NewPiece creates an unmoved piece of the given type and colour at sq.
func NewPiece(pt PieceType, colour Colour, sq Square) Piece {
	return Piece{Type: pt, Colour: colour, Pos: sq}
}

// IsEmpty reports whether the value represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(pt PieceType, colour Colour) bool {
	return p.Type == pt && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Knight@f3".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String() + "@" + p.Pos.String()
}

// MoveRecord describes the most recent move applied to a board.
// It exists so that en passant eligibility can be decided on the next ply.
// A zero MoveRecord (empty Piece) means no move has been recorded.
type MoveRecord struct {
	From  Square
	To    Square
	Piece Piece // the piece standing on To after the move
}

// IsZero reports whether no move has been recorded.
func (r MoveRecord) IsZero() bool {
	return r.Piece.IsEmpty()
}

// Grid is a read-only view of the 64 squares, indexed [row][col].
type Grid [BoardSize][BoardSize]Piece

// Board represents a chess board with all state needed for move generation.
// Board is a plain value: assigning or copying it never shares mutable state.
type Board struct {
	// Squares holds the occupant of every square, indexed [row][col].
	Squares Grid

	// The last executed move, used for en passant.
	LastMove MoveRecord

	// The position Reset returns to.
	StartSquares  Grid
	StartLastMove MoveRecord
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position,
// recorded as the reset baseline.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position and
// marks it as the reset baseline.
func (b *Board) SetupInitialPosition() {
	b.Squares = Grid{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Set(Sq(BackRow(Black), col), NewPiece(backRank[col], Black, Square{}))
		b.Set(Sq(PawnStartRow(Black), col), NewPiece(Pawn, Black, Square{}))
		b.Set(Sq(PawnStartRow(White), col), NewPiece(Pawn, White, Square{}))
		b.Set(Sq(BackRow(White), col), NewPiece(backRank[col], White, Square{}))
	}
	b.LastMove = MoveRecord{}
	b.MarkStart()
}

// MarkStart records the current position as the one Reset returns to.
func (b *Board) MarkStart() {
	b.StartSquares = b.Squares
	b.StartLastMove = b.LastMove
}

// Reset restores the position recorded by MarkStart.
func (b *Board) Reset() {
	b.Squares = b.StartSquares
	b.LastMove = b.StartLastMove
}

// Erase removes every piece from the board.
func (b *Board) Erase() {
	b.Squares = Grid{}
	b.LastMove = MoveRecord{}
}

// IsValidPosition reports whether (row, col) is on the board.
func (b *Board) IsValidPosition(row, col int) bool {
	return IsValidPosition(row, col)
}

// Get returns the piece at sq, or an empty Piece if sq is empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Piece{}
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq, updating its stored position.
// Placing an empty Piece clears the square.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.Valid() {
		return
	}
	if p.IsEmpty() {
		b.Squares[sq.Row][sq.Col] = Piece{}
		return
	}
	p.Pos = sq
	b.Squares[sq.Row][sq.Col] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// IsAvailable reports whether sq is on the board and empty.
func (b *Board) IsAvailable(sq Square) bool {
	return sq.Valid() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// IsOpponentPiece reports whether sq holds a piece of the colour opposing colour.
func (b *Board) IsOpponentPiece(sq Square, colour Colour) bool {
	if !sq.Valid() {
		return false
	}
	p := b.Squares[sq.Row][sq.Col]
	return !p.IsEmpty() && p.Colour != colour
}

// Pieces returns every piece of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares
// with the same move-rights flags. Move history and reset baselines are ignored.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.Squares == other.Squares
}

// BoardState captures all mutable board state for save/restore operations.
// This is cheaper than Copy() when you need to temporarily modify
// the board and then restore it (e.g., testing whether a move is legal).
type BoardState struct {
	Squares  Grid
	LastMove MoveRecord
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:  b.Squares,
		LastMove: b.LastMove,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.LastMove = s.LastMove
}

// String renders the board as eight lines of FEN letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
