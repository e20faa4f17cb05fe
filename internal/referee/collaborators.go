package referee

import "github.com/lgbarn/chess-referee-go/internal/chess"

// Clock is a player's game clock. The referee drives it after every move
// and polls Expired; a clock never touches the game itself.
type Clock interface {
	Start()
	Pause()
	Resume()
	Stop()
	Reset()
	Expired() bool
}

// NotationRecorder receives every accepted move in order.
type NotationRecorder interface {
	Record(from, to chess.Square)
}

// RecorderFunc adapts a function to NotationRecorder.
type RecorderFunc func(from, to chess.Square)

// Record calls f(from, to).
func (f RecorderFunc) Record(from, to chess.Square) {
	f(from, to)
}
