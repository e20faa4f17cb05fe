package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-referee-go/internal/chess"
	"github.com/lgbarn/chess-referee-go/internal/config"
)

// newLogger builds a logger writing to w. Verbose output uses the
// human-readable development encoder; otherwise entries are JSON.
func newLogger(verbosity int, w io.Writer) *zap.Logger {
	var (
		encoder zapcore.Encoder
		level   zapcore.Level
	)
	switch {
	case verbosity >= config.Verbose:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	case verbosity == config.Normal:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
	default:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.WarnLevel
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}

// moveLog records accepted moves as numbered ply lines.
type moveLog struct {
	logger *zap.Logger
	moves  []chess.Move
}

func (m *moveLog) Record(from, to chess.Square) {
	m.moves = append(m.moves, chess.Move{From: from, To: to})
	m.logger.Debug("move recorded",
		zap.Int("ply", len(m.moves)),
		zap.Stringer("from", from),
		zap.Stringer("to", to))
}
