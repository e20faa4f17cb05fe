// Package hashing provides Zobrist position keys and the position tables
// built on them: repetition counting and a concurrent evaluation cache.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// Zobrist keys, indexed [colour][piece type][square][has moved].
var pieceKeys [2][chess.NumPieceTypes][chess.BoardSize * chess.BoardSize][2]uint64

func init() {
	// Fixed seed: the same position must always produce the same key.
	rng := rand.New(rand.NewSource(0x5EED0F0CC0FFEE))
	for colour := range pieceKeys {
		for pt := range pieceKeys[colour] {
			for sq := range pieceKeys[colour][pt] {
				for moved := range pieceKeys[colour][pt][sq] {
					pieceKeys[colour][pt][sq][moved] = rng.Uint64()
				}
			}
		}
	}
}

// PieceKey returns the key contribution of a single piece on its square.
// Empty squares contribute nothing.
func PieceKey(piece chess.Piece) uint64 {
	return keyAt(piece, piece.Pos.Row, piece.Pos.Col)
}

func keyAt(piece chess.Piece, row, col int) uint64 {
	if piece.IsEmpty() {
		return 0
	}
	moved := 0
	if piece.HasMoved {
		moved = 1
	}
	return pieceKeys[piece.Colour][piece.Type][row*chess.BoardSize+col][moved]
}

// Hash computes the Zobrist key of the board's squares. Two boards whose
// squares are equal (including HasMoved flags) always share a key; the
// last move and the side to move are not part of it.
func Hash(board *chess.Board) uint64 {
	return HashGrid(&board.Squares)
}

// HashGrid computes the Zobrist key of a grid of squares.
func HashGrid(grid *chess.Grid) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			h ^= keyAt(grid[row][col], row, col)
		}
	}
	return h
}
