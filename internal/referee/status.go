package referee

// GameStatus is the state of a game. Every status other than Ongoing is
// terminal until Reset.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	Repetition
	TimeExpired
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	case TimeExpired:
		return "time expired"
	}
	return "unknown"
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s != Ongoing
}
