// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/neuronet/bfs"
	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
	"github.com/katalvlaran/neuronet/stats"
)

// Degree returns the out-degree of id in the current snapshot.
func (e *Engine) Degree(id core.NodeID) (int, error) {
	defer e.observe("degree", time.Now())
	s, err := e.Snapshot()
	if err != nil {
		return 0, err
	}
	return s.Degree.Degree(id)
}

// InDegree returns the in-degree of id in the current snapshot.
func (e *Engine) InDegree(id core.NodeID) (int, error) {
	defer e.observe("in_degree", time.Now())
	s, err := e.Snapshot()
	if err != nil {
		return 0, err
	}
	return s.Degree.InDegree(id)
}

// Neighbors returns the out-neighbors of id in ingestion order.
func (e *Engine) Neighbors(id core.NodeID) ([]core.NodeID, error) {
	defer e.observe("neighbors", time.Now())
	s, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.Graph.Neighbors(id)
}

// MaxDegreeNode returns the most connected node of the current snapshot.
func (e *Engine) MaxDegreeNode() (core.NodeID, error) {
	s, err := e.Snapshot()
	if err != nil {
		return 0, err
	}
	return s.Degree.MaxDegreeNode()
}

// TopK returns the k most connected nodes of the current snapshot.
func (e *Engine) TopK(k int) ([]degree.Ranked, error) {
	defer e.observe("top_k", time.Now())
	s, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.Degree.TopK(k), nil
}

// Statistics returns the statistics computed when the snapshot was built.
func (e *Engine) Statistics() (stats.Statistics, error) {
	s, err := e.Snapshot()
	if err != nil {
		return stats.Statistics{}, err
	}
	return s.Stats, nil
}

// BFS runs a bounded-depth traversal on the current snapshot.
// ctx is passed to the traversal for cancellation unless opts override it.
func (e *Engine) BFS(ctx context.Context, start core.NodeID, maxDepth int, opts ...bfs.Option) (*bfs.Result, error) {
	s, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return e.bfsOn(ctx, s, start, maxDepth, opts...)
}

func (e *Engine) bfsOn(ctx context.Context, s *Snapshot, start core.NodeID, maxDepth int, opts ...bfs.Option) (_ *bfs.Result, err error) {
	ctx, span := e.inst.startQuerySpan(ctx, "BFS", int64(start))
	span.SetAttributes(attribute.Int("bfs.max_depth", maxDepth))
	began := time.Now()
	defer func() {
		e.inst.recordQuery(ctx, "bfs", time.Since(began), err)
		endSpan(span, err)
	}()

	res, err := bfs.BFS(s.Graph, start, maxDepth, append([]bfs.Option{bfs.WithContext(ctx)}, opts...)...)
	if err != nil {
		return res, err
	}
	span.SetAttributes(
		attribute.Int("bfs.nodes", len(res.Nodes)),
		attribute.Int("bfs.edges", len(res.Edges)),
	)
	e.inst.recordBFS(ctx, maxDepth, len(res.Nodes))
	e.log.Debug("bfs complete", "start", start, "max_depth", maxDepth,
		"nodes", len(res.Nodes), "edges", len(res.Edges), "duration", time.Since(began))

	return res, nil
}

// BFSMany runs one traversal per start node concurrently on a single
// snapshot. Results are aligned with starts. The first error cancels the
// remaining traversals.
func (e *Engine) BFSMany(ctx context.Context, starts []core.NodeID, maxDepth int) ([]*bfs.Result, error) {
	s, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: maxDepth must be >= 1 (got %d)", bfs.ErrOptionViolation, maxDepth)
	}

	out := make([]*bfs.Result, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.bfsLimit)
	for i, start := range starts {
		g.Go(func() error {
			res, err := e.bfsOn(gctx, s, start, maxDepth)
			if err != nil {
				return fmt.Errorf("engine: bfs from %d: %w", start, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (e *Engine) observe(query string, began time.Time) {
	e.inst.recordQuery(context.Background(), query, time.Since(began), nil)
}
