package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// ParseFEN creates a board from a FEN string and returns it together with
// the side to move. Only the first four fields are interpreted; move
// clocks are accepted and ignored.
//
// Castling rights decide the HasMoved flag of kings and rooks: a king or
// rook is unmoved only if a listed right needs it. When the castling field
// is absent every king and rook standing on its home square is unmoved.
// An en passant target is turned into the double pawn advance that
// produced it. The parsed position becomes the board's reset baseline.
func ParseFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}

	if err := parseEnPassant(board, parts, toMove); err != nil {
		return nil, chess.White, err
	}

	board.MarkStart()
	return board, toMove, nil
}

// NewBoardFromFEN creates a board from a FEN string, discarding the side to move.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board, _, err := ParseFEN(fen)
	return board, err
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := ConvertFENCharToPiece(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d too long: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.Sq(row, col), chess.NewPiece(piece, colour, chess.Square{}))
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field. White moves if it is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights maps the castling availability field onto the
// HasMoved flags of kings and rooks.
func parseCastlingRights(board *chess.Board, parts []string) error {
	if len(parts) < 3 {
		return nil
	}

	// Without rights every king and rook counts as moved.
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := &board.Squares[row][col]
			if p.Type == chess.King || p.Type == chess.Rook {
				p.HasMoved = true
			}
		}
	}
	if parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var rookCol int
		switch c {
		case 'K':
			colour, rookCol = chess.White, kingsideRookCol
		case 'Q':
			colour, rookCol = chess.White, queensideRookCol
		case 'k':
			colour, rookCol = chess.Black, kingsideRookCol
		case 'q':
			colour, rookCol = chess.Black, queensideRookCol
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}
		row := chess.BackRow(colour)
		king := &board.Squares[row][kingStartCol]
		rook := &board.Squares[row][rookCol]
		if !king.Is(chess.King, colour) || !rook.Is(chess.Rook, colour) {
			return fmt.Errorf("castling right %c without king and rook at home: %w", c, errors.ErrInvalidFEN)
		}
		king.HasMoved = false
		rook.HasMoved = false
	}
	return nil
}

// parseEnPassant turns the en passant target square into the double pawn
// advance recorded as the board's last move.
func parseEnPassant(board *chess.Board, parts []string, toMove chess.Colour) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := toMove.Opposite()
	dir := chess.PawnDirection(mover)
	from := target.Offset(-dir, 0)
	to := target.Offset(dir, 0)
	if from.Row != chess.PawnStartRow(mover) || !board.Get(to).Is(chess.Pawn, mover) {
		return fmt.Errorf("en passant square %s does not follow a double pawn advance: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.LastMove = chess.MoveRecord{From: from, To: to, Piece: board.Get(to)}
	return nil
}

// BoardToFEN converts a board to the first four FEN fields.
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.LastRow {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability derived from the
// HasMoved flags.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, right := range []struct {
		letter  byte
		colour  chess.Colour
		rookCol int
	}{
		{'K', chess.White, kingsideRookCol},
		{'Q', chess.White, queensideRookCol},
		{'k', chess.Black, kingsideRookCol},
		{'q', chess.Black, queensideRookCol},
	} {
		row := chess.BackRow(right.colour)
		king := board.Squares[row][kingStartCol]
		rook := board.Squares[row][right.rookCol]
		if king.Is(chess.King, right.colour) && !king.HasMoved &&
			rook.Is(chess.Rook, right.colour) && !rook.HasMoved {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	last := board.LastMove
	if last.Piece.Type == chess.Pawn && distance(last.To.Row, last.From.Row) == 2 {
		sb.WriteString(chess.Sq((last.From.Row+last.To.Row)/2, last.To.Col).String())
	} else {
		sb.WriteByte('-')
	}
}
