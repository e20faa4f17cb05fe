package referee

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/search"
)

// Option configures a Referee.
type Option func(*Referee)

// WithClocks attaches a clock to each side. Both must be non-nil or the
// option is ignored.
func WithClocks(white, black Clock) Option {
	return func(r *Referee) {
		if white == nil || black == nil {
			return
		}
		r.clocks[chess.White] = white
		r.clocks[chess.Black] = black
	}
}

// WithRecorder sets the recorder that receives accepted moves.
func WithRecorder(rec NotationRecorder) Option {
	return func(r *Referee) {
		r.recorder = rec
	}
}

// WithLogger sets the logger for rejected moves and state transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Referee) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStartPosition starts the game from a custom position with the given
// side to move. The board is copied.
func WithStartPosition(board *chess.Board, startPlayer chess.Colour) Option {
	return func(r *Referee) {
		start := board.Copy()
		start.MarkStart()
		r.board = start
		r.startPlayer = startPlayer
	}
}

// WithSearch sets the engine used by BestMove.
func WithSearch(engine *search.Engine) Option {
	return func(r *Referee) {
		if engine != nil {
			r.engine = engine
		}
	}
}
