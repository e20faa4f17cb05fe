package output

import (
	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/referee"
	"github.com/lgbarn/chess-referee-go/internal/search"
)

// GameReport summarises a game after a list of moves was played.
type GameReport struct {
	InitialFEN string    `json:"initialFEN"`
	Moves      []string  `json:"moves,omitempty"`
	PlyCount   int       `json:"plyCount"`
	FinalFEN   string    `json:"finalFEN"`
	Status     string    `json:"status"`
	Winner     string    `json:"winner,omitempty"`
	ToMove     string    `json:"toMove,omitempty"`
	BestMove   *BestMove `json:"bestMove,omitempty"`

	// Board is the plain-text diagram of the final position.
	Board string `json:"-"`
}

// BestMove is an engine recommendation.
type BestMove struct {
	Move  string `json:"move"`
	Score int    `json:"score"`
	Depth int    `json:"depth"`
	Nodes int64  `json:"nodes"`
}

// AnalysisLine is the analysis of one position from a batch.
type AnalysisLine struct {
	FEN      string `json:"fen"`
	BestMove string `json:"bestMove,omitempty"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	Error    string `json:"error,omitempty"`
}

// NewGameReport describes the current state of a refereed game. moves are
// the moves played from the referee's starting position.
func NewGameReport(ref *referee.Referee, moves []chess.Move) *GameReport {
	status := ref.Status()
	r := &GameReport{
		InitialFEN: ref.StartFEN(),
		Moves:      make([]string, 0, len(moves)),
		PlyCount:   len(moves),
		FinalFEN:   ref.FEN(),
		Status:     status.String(),
		Board:      ref.Position().String(),
	}
	for _, m := range moves {
		r.Moves = append(r.Moves, m.String())
	}
	if winner, ok := ref.Winner(); ok {
		r.Winner = winner.String()
	}
	if !status.IsOver() {
		r.ToMove = ref.CurrentPlayer().String()
	}
	return r
}

// NewBestMove converts a search result.
func NewBestMove(res search.Result) *BestMove {
	return &BestMove{
		Move:  res.Move.String(),
		Score: res.Score,
		Depth: res.Depth,
		Nodes: res.Nodes,
	}
}
