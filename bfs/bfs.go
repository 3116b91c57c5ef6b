// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/neuronet/core"
)

// queueItem pairs a compact node index with its BFS depth.
type queueItem struct {
	idx   int32
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     Options
	maxDepth int
	queue    []queueItem
	head     int
	visited  map[int32]int32 // compact index → position in res.Nodes
	res      *Result
}

// BFS runs a level-order traversal of g's out-edges from start, stopping at
// maxDepth: nodes at exactly maxDepth are included but not expanded.
//
// Returns ErrGraphNil for a nil graph and ErrOptionViolation when
// maxDepth < 1. An unknown start yields an empty Result and a nil error.
// On cancellation or an OnVisit error the partial Result is returned with
// the error.
func BFS(g *core.Graph, start core.NodeID, maxDepth int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: maxDepth must be >= 1 (got %d)", ErrOptionViolation, maxDepth)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	startIdx, ok := g.Index(start)
	if !ok {
		return emptyResult(start, maxDepth), nil
	}

	w := &walker{
		graph:    g,
		opts:     o,
		maxDepth: maxDepth,
		queue:    make([]queueItem, 0, 16),
		visited:  make(map[int32]int32, 16),
		res:      emptyResult(start, maxDepth),
	}
	w.res.graph, w.res.pos = g, w.visited
	w.discover(startIdx, 0, -1)

	return w.res, w.loop()
}

// discover records idx at depth d with the given parent position and
// appends it to the queue.
func (w *walker) discover(idx int32, d int, parentPos int32) {
	pos := int32(len(w.res.Nodes))
	id := w.graph.ID(idx)
	w.visited[idx] = pos
	w.res.Nodes = append(w.res.Nodes, id)
	w.res.Depths = append(w.res.Depths, d)
	w.res.parent = append(w.res.parent, parentPos)
	if parentPos >= 0 {
		w.res.Edges = append(w.res.Edges, core.Edge{From: w.res.Nodes[parentPos], To: id})
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{idx: idx, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		id := w.graph.ID(item.idx)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}
		if item.depth >= w.maxDepth {
			continue
		}
		w.expand(item, id)
	}

	return nil
}

// expand discovers every unseen, unfiltered out-neighbor of item.
func (w *walker) expand(item queueItem, id core.NodeID) {
	parentPos := w.visited[item.idx]
	for _, nbr := range w.graph.NeighborIndices(item.idx) {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(id, w.graph.ID(nbr)) {
			continue
		}
		w.discover(nbr, item.depth+1, parentPos)
	}
}
