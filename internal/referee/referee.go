// Package referee runs a game: it accepts moves from the side to move,
// keeps the position history for undo, redo and repetition, drives the
// players' clocks and decides when the game is over.
package referee

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/history"
	"github.com/lgbarn/chess-referee-go/internal/search"
)

// MoveResult reports the outcome of ApplyMove.
type MoveResult struct {
	Success bool
	Status  GameStatus
}

// Referee owns the live board of one game. All methods are safe for
// concurrent use; moves are applied one at a time.
type Referee struct {
	mu sync.Mutex

	board       *chess.Board
	startPlayer chess.Colour
	status      GameStatus
	flagged     chess.Colour // side whose clock expired, valid for TimeExpired
	tracker     *history.Tracker

	clocks   [2]Clock // indexed by chess.Colour; both nil when untimed
	recorder NotationRecorder
	engine   *search.Engine
	logger   *zap.Logger
}

// New creates a referee for the standard starting position with White to
// move.
func New(opts ...Option) *Referee {
	r := &Referee{
		board:       chess.NewInitialBoard(),
		startPlayer: chess.White,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = search.New(search.WithLogger(r.logger))
	}
	r.tracker = history.NewTracker(r.board, history.WithBranchHook(r.freezeClocks))
	r.settleStart()
	return r
}

// ApplyMove plays a move for the side to move. An illegal move, a move
// from an empty square or a move of the opponent's piece leaves the game
// unchanged and returns Success false with a nil error. Off-board squares
// return ErrInvalidSquare, and a finished game returns ErrGameOver. A board
// without exactly one king per side returns ErrMissingKing and is left
// untouched.
func (r *Referee) ApplyMove(from, to chess.Square) (MoveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !from.Valid() || !to.Valid() {
		return r.rejected(), &errors.MoveError{Err: errors.ErrInvalidSquare, Ply: r.turnCount(), From: from, To: to}
	}
	if r.status == Ongoing {
		r.checkClocks()
	}
	if r.status.IsOver() {
		return r.rejected(), &errors.MoveError{Err: errors.ErrGameOver, Ply: r.turnCount(), From: from, To: to}
	}

	mover := r.currentPlayer()
	piece := r.board.Get(from)
	if piece.IsEmpty() || piece.Colour != mover {
		r.logger.Debug("move rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Stringer("player", mover),
			zap.String("reason", "no piece of the side to move"))
		return r.rejected(), nil
	}

	if err := checkKings(r.board); err != nil {
		return r.rejected(), &errors.MoveError{Err: err, Ply: r.turnCount(), From: from, To: to}
	}

	before := r.board.SaveState()
	ok, err := engine.MovePiece(r.board, from, to)
	if err != nil {
		return r.rejected(), &errors.MoveError{Err: err, Ply: r.turnCount(), From: from, To: to}
	}
	if !ok {
		r.logger.Debug("move rejected",
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Stringer("player", mover),
			zap.String("reason", "not a legal destination"))
		return r.rejected(), nil
	}

	next := mover.Opposite()
	status, err := positionStatus(r.board, next)
	if err != nil {
		r.board.RestoreState(before)
		return r.rejected(), &errors.MoveError{Err: err, Ply: r.turnCount(), From: from, To: to}
	}

	turn := r.turnCount()
	if r.recorder != nil {
		r.recorder.Record(from, to)
	}
	occurrences := r.tracker.Update(r.board)
	r.driveClocks(mover, turn)

	// Having no legal move takes priority over repetition.
	switch {
	case status != Ongoing:
		r.conclude(status, next)
	case occurrences >= history.RepetitionLimit:
		r.finish(Repetition, zap.Int("occurrences", occurrences))
	}
	return MoveResult{Success: true, Status: r.status}, nil
}

func (r *Referee) rejected() MoveResult {
	return MoveResult{Success: false, Status: r.status}
}

// checkKings fails unless each side has exactly one king.
func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := engine.KingPosition(board, colour); err != nil {
			return err
		}
	}
	return nil
}

// positionStatus returns Checkmate or Stalemate when side has no legal
// move, Ongoing otherwise.
func positionStatus(board *chess.Board, side chess.Colour) (GameStatus, error) {
	canMove, err := engine.HasLegalMoves(board, side)
	if err != nil || canMove {
		return Ongoing, err
	}
	inCheck, err := engine.IsInCheck(board, side)
	if err != nil {
		return Ongoing, err
	}
	if inCheck {
		return Checkmate, nil
	}
	return Stalemate, nil
}

// settleStart ends the game at once when the starting side has no legal
// move. A board without both kings is left ongoing; ApplyMove reports it.
func (r *Referee) settleStart() {
	status, err := positionStatus(r.board, r.startPlayer)
	if err != nil {
		r.logger.Warn("unplayable start position", zap.Error(err))
		return
	}
	if status != Ongoing {
		r.conclude(status, r.startPlayer)
	}
}

// conclude ends the game by checkmate or stalemate of side.
func (r *Referee) conclude(status GameStatus, side chess.Colour) {
	if status == Checkmate {
		r.finish(Checkmate, zap.Stringer("winner", side.Opposite()))
		return
	}
	r.finish(status)
}

func (r *Referee) finish(status GameStatus, fields ...zap.Field) {
	r.status = status
	r.freezeClocks()
	fields = append(fields, zap.Stringer("status", status), zap.Int("ply", r.turnCount()))
	r.logger.Info("game over", fields...)
}

// driveClocks hands the move over to the opponent's clock. The mover's
// clock is paused, crediting its increment; the opponent's clock is
// started during the first two plies and resumed afterwards.
func (r *Referee) driveClocks(mover chess.Colour, turn int) {
	if !r.timed() {
		return
	}
	own, opp := r.clocks[mover], r.clocks[mover.Opposite()]
	if turn < 3 {
		if mover != r.startPlayer {
			own.Pause()
		}
		opp.Start()
		return
	}
	own.Pause()
	opp.Resume()
}

// CheckClocks polls the clocks and ends the game if the side to move has
// run out of time. It returns the resulting status.
func (r *Referee) CheckClocks() GameStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == Ongoing {
		r.checkClocks()
	}
	return r.status
}

func (r *Referee) checkClocks() {
	if !r.timed() {
		return
	}
	for _, colour := range []chess.Colour{r.currentPlayer(), r.currentPlayer().Opposite()} {
		if r.clocks[colour].Expired() {
			r.flagged = colour
			r.finish(TimeExpired, zap.Stringer("flagged", colour))
			return
		}
	}
}

func (r *Referee) freezeClocks() {
	if !r.timed() {
		return
	}
	r.clocks[chess.White].Stop()
	r.clocks[chess.Black].Stop()
}

func (r *Referee) timed() bool {
	return r.clocks[chess.White] != nil
}

// Winner returns the side that won by checkmate or on time. It returns
// false for an ongoing or drawn game.
func (r *Referee) Winner() (chess.Colour, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.status {
	case Checkmate:
		return r.currentPlayer().Opposite(), true
	case TimeExpired:
		return r.flagged.Opposite(), true
	}
	return chess.White, false
}

// CurrentPlayer returns the side to move, derived from the ply count and
// the starting side.
func (r *Referee) CurrentPlayer() chess.Colour {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentPlayer()
}

func (r *Referee) currentPlayer() chess.Colour {
	if r.tracker.Cursor()%2 == 0 {
		return r.startPlayer
	}
	return r.startPlayer.Opposite()
}

// TurnCount returns the number of the ply about to be played, starting at 1.
func (r *Referee) TurnCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.turnCount()
}

func (r *Referee) turnCount() int {
	return r.tracker.Cursor() + 1
}

// Status returns the game status.
func (r *Referee) Status() GameStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Board returns a copy of the squares.
func (r *Referee) Board() chess.Grid {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Squares
}

// Position returns a copy of the live board.
func (r *Referee) Position() *chess.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Copy()
}

// FEN returns the live position in Forsyth-Edwards Notation.
func (r *Referee) FEN() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return engine.BoardToFEN(r.board, r.currentPlayer())
}

// StartFEN returns the starting position in Forsyth-Edwards Notation with
// the starting side to move.
func (r *Referee) StartFEN() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := r.board.Copy()
	start.Reset()
	return engine.BoardToFEN(start, r.startPlayer)
}

// LegalMovesFrom returns the legal destinations of the piece on sq. It is
// empty when the square is empty, holds a piece of the side not to move,
// or the game is over.
func (r *Referee) LegalMovesFrom(sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, &errors.MoveError{Err: errors.ErrInvalidSquare, From: sq}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status.IsOver() || r.board.Get(sq).Colour != r.currentPlayer() {
		return nil, nil
	}
	return engine.LegalMoves(r.board, sq)
}

// LegalMoves returns every legal move of colour in the live position.
func (r *Referee) LegalMoves(colour chess.Colour) ([]chess.Move, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return engine.AllMoves(r.board, colour)
}

// Undo steps back one ply. It returns false at the start of the game.
// The status is not changed.
func (r *Referee) Undo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.tracker.Undo()
	r.board.RestoreState(state)
	return ok
}

// Redo steps forward one ply along the undone moves. It returns false if
// there is nothing to redo.
func (r *Referee) Redo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.tracker.Redo()
	r.board.RestoreState(state)
	return ok
}

// CanUndo reports whether Undo would move.
func (r *Referee) CanUndo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker.CanUndo()
}

// CanRedo reports whether Redo would move.
func (r *Referee) CanRedo() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker.CanRedo()
}

// Reset returns to the starting position, clears the history and resets
// the clocks.
func (r *Referee) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.board.Reset()
	r.status = Ongoing
	r.tracker.Reset(r.board)
	if r.timed() {
		r.clocks[chess.White].Reset()
		r.clocks[chess.Black].Reset()
	}
	r.logger.Info("game reset", zap.Stringer("start_player", r.startPlayer))
	r.settleStart()
}

// BestMove asks the search engine for a move for colour at the given
// depth. The search runs on a copy of the position without holding the
// referee, so moves may be applied meanwhile; the result must be played
// through ApplyMove like any other move.
func (r *Referee) BestMove(ctx context.Context, colour chess.Colour, depth int) (search.Result, error) {
	r.mu.Lock()
	status := r.status
	board := r.board.Copy()
	r.mu.Unlock()

	if status.IsOver() {
		return search.Result{}, errors.Wrapf(errors.ErrGameOver, "game ended by %s", status)
	}

	return r.engine.BestMoveDepth(ctx, board, colour, depth)
}
