package engine

import "github.com/lgbarn/chess-referee-go/internal/chess"

// Material values in centipawns, indexed by piece type.
var pieceValues = [chess.NumPieceTypes]int{
	chess.Empty:  0,
	chess.Pawn:   100,
	chess.Knight: 300,
	chess.Bishop: 300,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   10000,
}

// Positional weights in centipawns.
const (
	pawnAdvanceBonus   = 2 // per row advanced
	minorMobilityBonus = 3 // per attacked square for knights and bishops
)

// Evaluate returns the static value of a single piece: its material plus a
// light positional bonus. Pawns gain for advancing, more so on central
// files; knights and bishops gain for mobility.
func Evaluate(board *chess.Board, piece chess.Piece) int {
	value := pieceValues[piece.Type]
	switch piece.Type {
	case chess.Pawn:
		advance := distance(piece.Pos.Row, chess.BackRow(piece.Colour))
		centre := min(piece.Pos.Col, chess.LastRow-piece.Pos.Col)
		value += pawnAdvanceBonus*advance + centre*advance
	case chess.Knight, chess.Bishop:
		value += minorMobilityBonus * mobility(board, piece)
	}
	return value
}

// EvaluateBoard sums the value of every piece, positive for the
// perspective colour and negative for its opponent.
func EvaluateBoard(board *chess.Board, perspective chess.Colour) int {
	score := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == perspective {
				score += Evaluate(board, piece)
			} else {
				score -= Evaluate(board, piece)
			}
		}
	}
	return score
}
