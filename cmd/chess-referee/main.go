// chess-referee plays and checks chess games, advises moves and analyses
// positions in batch.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-referee-go/internal/clock"
	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/output"
	"github.com/lgbarn/chess-referee-go/internal/referee"
	"github.com/lgbarn/chess-referee-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-referee version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := applyFlags(config.NewConfigBuilder()).BuildValid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg.Verbosity, cfg.LogFile)
	defer logger.Sync() //nolint:errcheck // nothing useful to do on exit

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *analyzeFile != "" {
		err = analyzeInput(ctx, cfg, logger)
	} else {
		err = runGame(ctx, cfg, logger)
	}
	if err != nil {
		logger.Error("failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// analyzeInput runs batch analysis over the -analyze file or stdin.
func analyzeInput(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	var in io.Reader = os.Stdin
	if *analyzeFile != "-" {
		file, err := os.Open(*analyzeFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	rw := output.NewReportWriter(cfg.OutputFile, *jsonOutput, false)
	defer rw.Close()
	return runAnalysis(ctx, cfg, in, rw, logger)
}

// runGame sets up a referee from the configuration, plays the -moves list
// and prints the resulting position.
func runGame(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ref, err := newReferee(cfg, logger)
	if err != nil {
		return err
	}

	moves, err := parseMoveList(*moveList)
	if err != nil {
		return err
	}
	played, playErr := playMoves(ref, moves, logger)
	logger.Info("moves played", zap.Int("played", played), zap.Int("given", len(moves)))

	rw := output.NewReportWriter(cfg.OutputFile, *jsonOutput, *showBoard)
	defer rw.Close()
	if err := writeGameReport(ctx, rw, ref, moves[:played], *bestMove && playErr == nil, cfg.Search.Depth); err != nil {
		return err
	}
	return playErr
}

// newReferee builds a referee for the configured start position, with
// clocks when -time is set.
func newReferee(cfg *config.Config, logger *zap.Logger) (*referee.Referee, error) {
	board, toMove, err := cfg.Game.Position()
	if err != nil {
		return nil, err
	}
	opts := []referee.Option{
		referee.WithStartPosition(board, toMove),
		referee.WithLogger(logger),
		referee.WithRecorder(&moveLog{logger: logger}),
		referee.WithSearch(search.New(append(cfg.Search.Options(), search.WithLogger(logger))...)),
	}
	if *clockTime > 0 {
		opts = append(opts, referee.WithClocks(
			clock.New(*clockTime, *clockIncrement),
			clock.New(*clockTime, *clockIncrement),
		))
	}
	return referee.New(opts...), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-referee [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a list of moves under the rules of chess and reports the result,\n")
	fmt.Fprintf(os.Stderr, "advises a move, or analyses a file of positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-referee -moves 'f2f3 e7e5 g2g4 d8h4'\n")
	fmt.Fprintf(os.Stderr, "  chess-referee -fen '6k1/5ppp/8/8/8/8/8/R5K1 w - -' -best -depth 4\n")
	fmt.Fprintf(os.Stderr, "  chess-referee -analyze positions.txt -jobs 4\n")
	fmt.Fprintf(os.Stderr, "  chess-referee -moves 'e2e4 e7e5' -time 5m -inc 2s -J\n")
}
