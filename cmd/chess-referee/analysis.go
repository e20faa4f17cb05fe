package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-referee-go/internal/config"
	"github.com/lgbarn/chess-referee-go/internal/engine"
	"github.com/lgbarn/chess-referee-go/internal/errors"
	"github.com/lgbarn/chess-referee-go/internal/output"
	"github.com/lgbarn/chess-referee-go/internal/search"
	"github.com/lgbarn/chess-referee-go/internal/worker"
)

// readPositions reads one FEN per line. Blank lines and lines starting
// with '#' are skipped. Unparsable lines are reported together; the
// positions that did parse are still returned.
func readPositions(r io.Reader) ([]worker.Job, error) {
	var (
		jobs []worker.Job
		errs error
	)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		board, toMove, err := engine.ParseFEN(line)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "line %d", lineNum))
			continue
		}
		jobs = append(jobs, worker.Job{
			Index:  len(jobs),
			Label:  line,
			Board:  board,
			ToMove: toMove,
		})
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return jobs, errs
}

// runAnalysis searches every position read from r and reports each one
// to rw: the best move and its score, or the error.
func runAnalysis(ctx context.Context, cfg *config.Config, r io.Reader, rw output.ReportWriter, logger *zap.Logger) error {
	jobs, readErr := readPositions(r)
	for _, err := range multierr.Errors(readErr) {
		logger.Warn("skipping position", zap.Error(err))
	}

	eng := search.New(append(cfg.Search.Options(), search.WithLogger(logger))...)
	results := worker.AnalyzeAll(ctx, jobs, worker.SearchAnalyzer(eng),
		worker.WithWorkers(cfg.Analysis.Workers),
		worker.WithBufferSize(cfg.Analysis.BufferSize))

	failed := 0
	for _, res := range results {
		line := &output.AnalysisLine{FEN: res.Label}
		if res.Err != nil {
			failed++
			line.Error = res.Err.Error()
		} else {
			line.BestMove = res.Move.String()
			line.Score, line.Depth, line.Nodes = res.Score, res.Depth, res.Nodes
		}
		if err := rw.WriteAnalysis(line); err != nil {
			return err
		}
	}
	logger.Info("analysis finished",
		zap.Int("positions", len(results)),
		zap.Int("failed", failed),
		zap.Int("skipped", len(multierr.Errors(readErr))))
	return multierr.Append(rw.Flush(), readErr)
}
