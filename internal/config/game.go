package config

import (
	"fmt"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
)

// GameConfig holds the starting conditions of a game.
type GameConfig struct {
	// StartFEN is the starting position.
	StartFEN string

	// StartPlayer moves first. It overrides the FEN side-to-move field
	// only when StartPlayerSet is true.
	StartPlayer    chess.Colour
	StartPlayerSet bool

	// unknownStartPlayer holds a side name that did not parse.
	unknownStartPlayer string
}

// NewGameConfig creates a GameConfig for the standard starting position.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartFEN:    engine.InitialFEN,
		StartPlayer: chess.White,
	}
}

// Validate checks that the start position can be set up: it must parse and
// hold exactly one king per side.
func (g *GameConfig) Validate() error {
	if g.unknownStartPlayer != "" {
		return fmt.Errorf("start player %q: %w", g.unknownStartPlayer, errors.ErrInvalidConfig)
	}
	board, _, err := engine.ParseFEN(g.StartFEN)
	if err != nil {
		return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := engine.KingPosition(board, colour); err != nil {
			return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return nil
}

// Position sets up the configured start position and returns it together
// with the side to move.
func (g *GameConfig) Position() (*chess.Board, chess.Colour, error) {
	board, toMove, err := engine.ParseFEN(g.StartFEN)
	if err != nil {
		return nil, chess.White, err
	}
	if g.StartPlayerSet {
		toMove = g.StartPlayer
	}
	return board, toMove, nil
}
