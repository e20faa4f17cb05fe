package engine

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// LegalMoves returns the legal destinations of the piece on `from`, after
// check filtering. An empty square yields no moves. The board is not
// modified; each candidate is tried on a scratch copy.
func LegalMoves(board *chess.Board, from chess.Square) ([]chess.Square, error) {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil, nil
	}
	kingSq, err := KingPosition(board, piece.Colour)
	if err != nil {
		return nil, err
	}
	return filterForbiddenMoves(board, piece, kingSq, candidateSquares(board, piece)), nil
}

// filterForbiddenMoves keeps the candidates that land on an empty or
// opponent-held square and do not leave the mover's king attacked. This one
// rule enforces pins, check evasion and the ban on capturing own pieces.
func filterForbiddenMoves(board *chess.Board, piece chess.Piece, kingSq chess.Square, candidates []chess.Square) []chess.Square {
	allowed := candidates[:0:0]
	scratch := chess.Board{}
	for _, to := range candidates {
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour == piece.Colour {
			continue
		}

		scratch.Squares = board.Squares
		scratch.LastMove = board.LastMove
		MakeMove(&scratch, chess.Move{From: piece.Pos, To: to})

		// When the king itself moves, test the square it lands on.
		guard := kingSq
		if piece.Type == chess.King {
			guard = to
		}
		if !IsAttacked(&scratch, guard, piece.Colour.Opposite()) {
			allowed = append(allowed, to)
		}
	}
	return allowed
}

// AllMoves enumerates every legal move of the given colour, piece by piece
// in row-major board order.
func AllMoves(board *chess.Board, colour chess.Colour) ([]chess.Move, error) {
	kingSq, err := KingPosition(board, colour)
	if err != nil {
		return nil, err
	}
	var moves []chess.Move
	for _, piece := range board.Pieces(colour) {
		for _, to := range filterForbiddenMoves(board, piece, kingSq, candidateSquares(board, piece)) {
			moves = append(moves, chess.Move{From: piece.Pos, To: to})
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := KingPosition(board, colour)
	if err != nil {
		return false, err
	}
	for _, piece := range board.Pieces(colour) {
		if len(filterForbiddenMoves(board, piece, kingSq, candidateSquares(board, piece))) > 0 {
			return true, nil
		}
	}
	return false, nil
}
