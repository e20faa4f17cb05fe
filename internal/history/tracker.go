// Package history records the positions of a game in order, moves a cursor
// through them for undo and redo, and counts repeated positions.
package history

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/hashing"
)

// RepetitionLimit is the number of occurrences of one position that ends
// the game.
const RepetitionLimit = 3

// Tracker holds one board snapshot per ply and a cursor into them.
// Snapshots after the cursor form the redo branch. Only the snapshots up to
// and including the cursor count towards repetition.
type Tracker struct {
	snapshots []chess.BoardState
	cursor    int
	reps      *hashing.RepetitionTable

	onBranchDiscarded func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithBranchHook registers a function called whenever Update discards a
// redo branch.
func WithBranchHook(fn func()) Option {
	return func(t *Tracker) {
		t.onBranchDiscarded = fn
	}
}

// NewTracker creates a tracker whose first snapshot is the given board.
func NewTracker(start *chess.Board, opts ...Option) *Tracker {
	t := &Tracker{reps: hashing.NewRepetitionTable()}
	for _, opt := range opts {
		opt(t)
	}
	t.Reset(start)
	return t
}

// Reset discards every snapshot and starts again from the given board.
func (t *Tracker) Reset(start *chess.Board) {
	t.snapshots = append(t.snapshots[:0], start.SaveState())
	t.cursor = 0
	t.reps.Reset()
	t.reps.Add(&t.snapshots[0].Squares)
}

// Update appends a snapshot of the board after a move and advances the
// cursor. If the cursor was behind the newest snapshot the redo branch is
// discarded first. It returns how many times the new position has now
// occurred.
func (t *Tracker) Update(board *chess.Board) int {
	if t.cursor < len(t.snapshots)-1 {
		t.snapshots = t.snapshots[:t.cursor+1]
		if t.onBranchDiscarded != nil {
			t.onBranchDiscarded()
		}
	}
	t.snapshots = append(t.snapshots, board.SaveState())
	t.cursor++
	return t.reps.Add(&t.snapshots[t.cursor].Squares)
}

// Undo moves the cursor back one ply and returns the snapshot there.
// At the first snapshot it returns false and the cursor stays put.
func (t *Tracker) Undo() (chess.BoardState, bool) {
	if t.cursor == 0 {
		return t.Current(), false
	}
	t.reps.Remove(&t.snapshots[t.cursor].Squares)
	t.cursor--
	return t.Current(), true
}

// Redo moves the cursor forward one ply and returns the snapshot there.
// Without a redo branch it returns false and the cursor stays put.
func (t *Tracker) Redo() (chess.BoardState, bool) {
	if !t.CanRedo() {
		return t.Current(), false
	}
	t.cursor++
	t.reps.Add(&t.snapshots[t.cursor].Squares)
	return t.Current(), true
}

// Current returns the snapshot at the cursor.
func (t *Tracker) Current() chess.BoardState {
	return t.snapshots[t.cursor]
}

// Cursor returns the index of the current snapshot; 0 is the start position.
func (t *Tracker) Cursor() int {
	return t.cursor
}

// Len returns the number of snapshots, including any redo branch.
func (t *Tracker) Len() int {
	return len(t.snapshots)
}

// CanUndo reports whether there is an earlier snapshot.
func (t *Tracker) CanUndo() bool {
	return t.cursor > 0
}

// CanRedo reports whether there is a later snapshot.
func (t *Tracker) CanRedo() bool {
	return t.cursor+1 < len(t.snapshots)
}

// Occurrences returns how often the current position has occurred up to
// the cursor.
func (t *Tracker) Occurrences() int {
	return t.reps.Count(&t.snapshots[t.cursor].Squares)
}

// IsRepetition reports whether the current position has occurred at least
// RepetitionLimit times.
func (t *Tracker) IsRepetition() bool {
	return t.Occurrences() >= RepetitionLimit
}
