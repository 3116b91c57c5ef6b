// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
	"github.com/katalvlaran/neuronet/ingest"
	"github.com/katalvlaran/neuronet/stats"
)

// ErrNotLoaded is returned by queries issued before any successful load.
var ErrNotLoaded = errors.New("engine: no graph loaded")

// Snapshot is one fully built, immutable graph generation.
type Snapshot struct {
	Graph    *core.Graph
	Degree   *degree.Index
	Stats    stats.Statistics
	Source   string
	LoadedAt time.Time
}

// LoadReport describes the most recent successful load.
type LoadReport struct {
	Source   string           `json:"source"`
	Lines    int              `json:"lines"`
	Skipped  int              `json:"skipped"`
	Comments int              `json:"comments"`
	Duration time.Duration    `json:"duration"`
	Stats    stats.Statistics `json:"stats"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithIngestOptions appends options passed to every ingest read.
func WithIngestOptions(opts ...ingest.Option) Option {
	return func(e *Engine) { e.ingestOpts = append(e.ingestOpts, opts...) }
}

// WithBuildOptions appends options passed to every core.Build.
func WithBuildOptions(opts ...core.BuildOption) Option {
	return func(e *Engine) { e.buildOpts = append(e.buildOpts, opts...) }
}

// WithBFSConcurrency bounds the goroutines used by BFSMany; n < 1 selects
// GOMAXPROCS.
func WithBFSConcurrency(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		e.bfsLimit = n
	}
}

// WithTracerProvider sets the provider of the engine's tracer. Defaults to
// the global provider at the time New runs.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the provider of the engine's instruments. Defaults
// to the global provider at the time New runs.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(e *Engine) {
		if mp != nil {
			e.meterProvider = mp
		}
	}
}
