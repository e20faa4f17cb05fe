package config

import (
	"io"
	"time"

	"github.com/lgbarn/chess-referee-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// BuildValid returns the built Config, or an error if it fails validation.
func (b *ConfigBuilder) BuildValid() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithSearchWorkers sets the number of parallel root searches.
func (b *ConfigBuilder) WithSearchWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithTimeout sets the per-search time budget.
func (b *ConfigBuilder) WithTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Search.Timeout = d
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithStartPlayer sets the side that moves first, overriding the FEN.
func (b *ConfigBuilder) WithStartPlayer(colour chess.Colour) *ConfigBuilder {
	b.cfg.Game.StartPlayer = colour
	b.cfg.Game.StartPlayerSet = true
	b.cfg.Game.unknownStartPlayer = ""
	return b
}

// WithStartPlayerName sets the side that moves first by name ("white",
// "w", "black" or "b"). An unknown name fails validation.
func (b *ConfigBuilder) WithStartPlayerName(name string) *ConfigBuilder {
	colour, ok := chess.ParseColour(name)
	if !ok {
		b.cfg.Game.unknownStartPlayer = name
		return b
	}
	return b.WithStartPlayer(colour)
}

// WithAnalysisWorkers sets the batch analysis worker count.
func (b *ConfigBuilder) WithAnalysisWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithBufferSize sets the batch analysis channel capacity.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Analysis.BufferSize = size
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
