// SPDX-License-Identifier: MIT

// Tunable options, error definitions and the result type for bounded-depth
// breadth-first search.

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/neuronet/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned for a depth bound below 1.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node outside the traversal.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered, with its depth.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor whose target is still undiscovered.
	FilterNeighbor func(curr, neighbor core.NodeID) bool
}

// DefaultOptions returns Options with a background context, no-op hooks
// and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeID) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the traversal subgraph:
//   - Nodes: discovered nodes in discovery order, start first.
//   - Edges: the discovery (tree) edges, one per node except the start.
//   - Depths: distance from start, aligned with Nodes.
type Result struct {
	Start    core.NodeID   `json:"start"`
	MaxDepth int           `json:"max_depth"`
	Nodes    []core.NodeID `json:"nodes"`
	Edges    []core.Edge   `json:"edges"`
	Depths   []int         `json:"depths"`

	// parent[i] is the position in Nodes of Nodes[i]'s parent; -1 for start.
	parent []int32

	// graph and pos resolve a NodeID to its position in Nodes in O(1):
	// pos maps the compact index of every discovered node to that position.
	graph *core.Graph
	pos   map[int32]int32
}

func emptyResult(start core.NodeID, maxDepth int) *Result {
	return &Result{
		Start:    start,
		MaxDepth: maxDepth,
		Nodes:    []core.NodeID{},
		Edges:    []core.Edge{},
		Depths:   []int{},
	}
}

// Len returns the number of discovered nodes.
func (r *Result) Len() int { return len(r.Nodes) }

// Contains reports whether id was discovered.
// Complexity: O(1) average.
func (r *Result) Contains(id core.NodeID) bool {
	return r.position(id) >= 0
}

// DepthOf returns the depth of id, or -1 if it was not discovered.
func (r *Result) DepthOf(id core.NodeID) int {
	if p := r.position(id); p >= 0 {
		return r.Depths[p]
	}
	return -1
}

// PathTo reconstructs the tree path from the start node to dest.
// Returns ErrNoPath if dest was not reached, or if r was not produced by BFS
// and so carries no parent links.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	p := r.position(dest)
	if p < 0 || len(r.parent) != len(r.Nodes) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]core.NodeID, 0, r.Depths[p]+1)
	for cur := int32(p); cur >= 0; cur = r.parent[cur] {
		path = append(path, r.Nodes[cur])
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

func (r *Result) position(id core.NodeID) int {
	if r.pos == nil {
		// assembled outside BFS, e.g. decoded from JSON
		return slices.Index(r.Nodes, id)
	}
	idx, ok := r.graph.Index(id)
	if !ok {
		return -1
	}
	if p, seen := r.pos[idx]; seen {
		return int(p)
	}
	return -1
}
