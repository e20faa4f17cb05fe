// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-referee-go/internal/config"
)

var (
	// Game setup
	startFEN    = flag.String("fen", "", "Start position in FEN (default: standard start)")
	startPlayer = flag.String("start", "", "Side to move first: w or b (overrides the FEN)")
	moveList    = flag.String("moves", "", "Moves to play in coordinate notation, e.g. 'e2e4 e7e5'")
	showBoard   = flag.Bool("board", true, "Print the board after the moves")

	// Clocks
	clockTime      = flag.Duration("time", 0, "Time per player, e.g. 3m (0 = untimed)")
	clockIncrement = flag.Duration("inc", 0, "Increment per move, e.g. 2s")

	// Search
	bestMove      = flag.Bool("best", false, "Advise a move for the side to move")
	depth         = flag.Int("depth", 3, "Search depth in plies")
	searchWorkers = flag.Int("workers", 1, "Root moves searched in parallel")
	timeout       = flag.Duration("timeout", 0, "Time budget per search (0 = none)")

	// Batch analysis
	analyzeFile     = flag.String("analyze", "", "File with one FEN per line to analyse ('-' for stdin)")
	analysisWorkers = flag.Int("jobs", 0, "Positions analysed in parallel (0 = one per CPU)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	logFile    = flag.String("l", "", "Write diagnostics to log file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=warnings, 1=game events, 2=search progress")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(b *config.ConfigBuilder) *config.ConfigBuilder {
	applyGameFlags(b)
	applySearchFlags(b)

	if *analysisWorkers > 0 {
		b.WithAnalysisWorkers(*analysisWorkers)
	}
	b.WithVerbosity(*verbosity)
	if *quiet {
		b.WithVerbosity(config.Quiet)
	}
	return b
}

// applyGameFlags configures the start position.
func applyGameFlags(b *config.ConfigBuilder) {
	if *startFEN != "" {
		b.WithStartFEN(*startFEN)
	}
	if *startPlayer != "" {
		b.WithStartPlayerName(*startPlayer)
	}
}

// applySearchFlags configures the move advisor.
func applySearchFlags(b *config.ConfigBuilder) {
	b.WithDepth(*depth).
		WithSearchWorkers(*searchWorkers).
		WithTimeout(*timeout)
}
