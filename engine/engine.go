// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
	"github.com/katalvlaran/neuronet/ingest"
	"github.com/katalvlaran/neuronet/stats"
)

// Engine serves queries over the most recently loaded snapshot.
// The zero value is not usable; construct with New.
type Engine struct {
	loadMu sync.Mutex
	snap   atomic.Pointer[Snapshot]
	last   atomic.Pointer[LoadReport]

	log        *slog.Logger
	ingestOpts []ingest.Option
	buildOpts  []core.BuildOption
	bfsLimit   int

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	inst           *instruments
}

// New returns an empty Engine; every query fails with ErrNotLoaded until
// the first successful load.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:            slog.New(slog.DiscardHandler),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	WithBFSConcurrency(0)(e)
	for _, opt := range opts {
		opt(e)
	}

	inst, err := newInstruments(e.tracerProvider, e.meterProvider)
	if err != nil {
		e.log.Warn("engine metrics disabled", "error", err)
		inst = noopInstruments()
	}
	e.inst = inst
	return e
}

// Load reads the edge list at path and replaces the current snapshot.
// Errors wrap ingest.ErrIO or core.ErrEmptyGraph; on any error the previous
// snapshot stays authoritative.
func (e *Engine) Load(ctx context.Context, path string) (stats.Statistics, error) {
	return e.load(ctx, path, func(opts []ingest.Option) (*ingest.Result, error) {
		return ingest.ReadFile(path, opts...)
	})
}

// LoadReader is Load for an already open source; name labels the source in
// logs and reports.
func (e *Engine) LoadReader(ctx context.Context, name string, r io.Reader) (stats.Statistics, error) {
	return e.load(ctx, name, func(opts []ingest.Option) (*ingest.Result, error) {
		return ingest.Read(r, opts...)
	})
}

// LoadEdges builds a snapshot from edges already in memory.
func (e *Engine) LoadEdges(ctx context.Context, name string, edges []core.Edge) (stats.Statistics, error) {
	return e.load(ctx, name, func([]ingest.Option) (*ingest.Result, error) {
		if len(edges) == 0 {
			return nil, fmt.Errorf("%w: no edges supplied", core.ErrEmptyGraph)
		}
		return &ingest.Result{Edges: edges, Lines: len(edges)}, nil
	})
}

type readFunc func(opts []ingest.Option) (*ingest.Result, error)

func (e *Engine) load(ctx context.Context, source string, read readFunc) (_ stats.Statistics, err error) {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	ctx, span := e.inst.startLoadSpan(ctx, source)
	start := time.Now()
	var rep *LoadReport
	defer func() {
		e.inst.recordLoad(ctx, time.Since(start), rep, err == nil)
		endSpan(span, err)
	}()

	e.log.Info("loading graph", "source", source)

	opts := make([]ingest.Option, 0, len(e.ingestOpts)+2)
	opts = append(opts, ingest.WithContext(ctx), ingest.WithLogger(e.log))
	opts = append(opts, e.ingestOpts...)

	res, err := read(opts)
	if err != nil {
		e.log.Error("graph load failed", "source", source, "error", err)
		return stats.Statistics{}, fmt.Errorf("engine: load %s: %w", source, err)
	}

	snap, err := e.buildSnapshot(source, res.Edges)
	if err != nil {
		e.log.Error("graph build failed", "source", source, "error", err)
		return stats.Statistics{}, fmt.Errorf("engine: build %s: %w", source, err)
	}
	if err := ctx.Err(); err != nil {
		return stats.Statistics{}, fmt.Errorf("engine: load %s: %w", source, err)
	}

	rep = &LoadReport{
		Source:   source,
		Lines:    res.Lines,
		Skipped:  res.Skipped,
		Comments: res.Comments,
		Duration: time.Since(start),
		Stats:    snap.Stats,
	}
	e.snap.Store(snap)
	e.last.Store(rep)
	setLoadSpanResult(span, rep)

	e.log.Info("graph loaded",
		"source", source,
		"nodes", snap.Stats.NodeCount,
		"edges", snap.Stats.EdgeCount,
		"skipped", res.Skipped,
		"duration", rep.Duration,
		"estimated_mb", fmt.Sprintf("%.2f", snap.Stats.EstimatedMemoryMB),
	)

	return snap.Stats, nil
}

func (e *Engine) buildSnapshot(source string, edges []core.Edge) (*Snapshot, error) {
	g, err := core.Build(edges, e.buildOpts...)
	if err != nil {
		return nil, err
	}
	ix, err := degree.New(g)
	if err != nil {
		return nil, err
	}
	st, err := stats.Compute(g, ix)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Graph:    g,
		Degree:   ix,
		Stats:    st,
		Source:   source,
		LoadedAt: time.Now(),
	}, nil
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() (*Snapshot, error) {
	s := e.snap.Load()
	if s == nil {
		return nil, ErrNotLoaded
	}
	return s, nil
}

// Loaded reports whether a snapshot is available.
func (e *Engine) Loaded() bool { return e.snap.Load() != nil }

// LastLoad returns the report of the most recent successful load.
func (e *Engine) LastLoad() (LoadReport, error) {
	r := e.last.Load()
	if r == nil {
		return LoadReport{}, ErrNotLoaded
	}
	return *r, nil
}
