// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: read-only queries over a built Graph.
// Policy:
//   - No method locks; a Graph is immutable after Build, so any number of
//     goroutines may call them concurrently.

package core

import "fmt"

// NodeCount returns the number of distinct identifiers seen at build time.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	if g == nil {
		return 0
	}
	return len(g.ids)
}

// EdgeCount returns the number of stored edges (after dedup, if enabled).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.targets)
}

// HasNode reports whether id was seen at build time.
// Complexity: O(1) average.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.Index(id)
	return ok
}

// Index returns the compact index assigned to id.
// Complexity: O(1) average.
func (g *Graph) Index(id NodeID) (int32, bool) {
	if g == nil {
		return 0, false
	}
	idx, ok := g.index[id]
	return idx, ok
}

// ID translates a compact index back to its external identifier.
// idx must lie in [0, NodeCount()).
// Complexity: O(1).
func (g *Graph) ID(idx int32) NodeID {
	return g.ids[idx]
}

// Neighbors returns the out-neighbors of id as external identifiers.
//
// Order is ingestion order (or ascending NodeID WithSortedNeighbors).
// Duplicated edges appear once per occurrence unless built WithDedup.
// The returned slice is a fresh copy owned by the caller.
//
// Errors:
//   - ErrUnknownNode: if id was never seen at build time.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	idx, ok := g.Index(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	row := g.NeighborIndices(idx)
	out := make([]NodeID, len(row))
	for i, t := range row {
		out[i] = g.ids[t]
	}

	return out, nil
}

// NeighborIndices returns the row of idx as compact indices, without copying.
// The slice aliases internal storage and must be treated as read-only; its
// capacity is clipped so an append by the caller cannot overwrite the next row.
// Complexity: O(1).
func (g *Graph) NeighborIndices(idx int32) []int32 {
	lo, hi := g.offsets[idx], g.offsets[idx+1]
	return g.targets[lo:hi:hi]
}

// OutDegreeAt returns the length of the row of idx.
// Complexity: O(1).
func (g *Graph) OutDegreeAt(idx int32) int {
	return int(g.offsets[idx+1] - g.offsets[idx])
}

// Nodes returns every identifier in compact-index (first-encounter) order.
// Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	if g == nil {
		return nil
	}
	out := make([]NodeID, len(g.ids))
	copy(out, g.ids)
	return out
}

// ForEachEdge calls fn for every stored edge, row by row in compact-index
// order, and stops early if fn returns false.
// Complexity: O(E).
func (g *Graph) ForEachEdge(fn func(Edge) bool) {
	if g == nil {
		return
	}
	for i := range g.ids {
		from := g.ids[i]
		for _, t := range g.NeighborIndices(int32(i)) {
			if !fn(Edge{From: from, To: g.ids[t]}) {
				return
			}
		}
	}
}
