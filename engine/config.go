package engine

import (
	"os"
	goruntime "runtime"
	"time"

	"github.com/rs/zerolog"
)

// Config configures an engine instance before creation, following the
// teacher's functional-option pattern (dfs.DFSOptions/DefaultOptions,
// flow.FlowOptions).
type Config struct {
	MaxIterations int
	TimeoutSeconds time.Duration

	// WorkerCount is PooledEngine's worker pool size. Zero means
	// auto-detect from runtime.NumCPU().
	WorkerCount int
	// PhaseBarrierTimeout bounds how long PooledEngine waits for one
	// parallel phase (evaluate/propagate/component-logic) to finish
	// before declaring ErrBarrierTimeout (spec.md §4.8).
	PhaseBarrierTimeout time.Duration
	// UpdateWaitTimeout bounds WaitUntilComplete's inner wait for a
	// pass's component-logic calls (spec.md §4.7 step g: "a generous
	// inner timeout; failure here is an error, not oscillation").
	UpdateWaitTimeout time.Duration
	// PooledThreshold is the component count at or above which
	// New selects PooledEngine (spec.md §4.8).
	PooledThreshold int

	// Logger receives lifecycle events (state transitions, dangling
	// link warnings, component/barrier failures). Defaults to a
	// zerolog console writer at Info level.
	Logger zerolog.Logger
}

// Option configures a Config value.
type Option func(*Config)

// DefaultConfig returns spec.md §4.7's documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxIterations:       10000,
		TimeoutSeconds:       30 * time.Second,
		WorkerCount:          goruntime.NumCPU(),
		PhaseBarrierTimeout:  10 * time.Second,
		UpdateWaitTimeout:    10 * time.Second,
		PooledThreshold:      2000,
		Logger:               zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel).With().Timestamp().Logger(),
	}
}

// WithLogger overrides the engine's lifecycle logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMaxIterations overrides the oscillation cap.
func WithMaxIterations(n int) Option {
	return func(c *Config) { c.MaxIterations = n }
}

// WithTimeout overrides the wall-clock budget.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.TimeoutSeconds = d }
}

// WithWorkerCount overrides PooledEngine's pool size.
func WithWorkerCount(n int) Option {
	return func(c *Config) { c.WorkerCount = n }
}

// WithPhaseBarrierTimeout overrides the pooled per-phase barrier wait.
func WithPhaseBarrierTimeout(d time.Duration) Option {
	return func(c *Config) { c.PhaseBarrierTimeout = d }
}

// WithUpdateWaitTimeout overrides the per-pass component-logic wait.
func WithUpdateWaitTimeout(d time.Duration) Option {
	return func(c *Config) { c.UpdateWaitTimeout = d }
}

// WithPooledThreshold overrides the single/pooled selection threshold.
func WithPooledThreshold(n int) Option {
	return func(c *Config) { c.PooledThreshold = n }
}

// NewConfig applies opts over DefaultConfig, left-to-right.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
