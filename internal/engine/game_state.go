package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// IsCheckmate returns true if the colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil || !inCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	return !hasMoves, err
}

// IsStalemate returns true if the colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil || inCheck {
		return false, err
	}
	hasMoves, err := HasLegalMoves(board, colour)
	return !hasMoves, err
}
