// SPDX-License-Identifier: MIT

// Package core provides the sparse, build-once adjacency store at the heart of
// neuronet: a directed graph held in Compressed Sparse Row (CSR) form behind a
// two-level identifier scheme.
//
// The Graph G = (V,E) is laid out as:
//
//   - index:   map[NodeID]int32   external identifier → compact index
//   - ids:     []NodeID           compact index → external identifier
//   - offsets: []int64            offsets[i]..offsets[i+1] bounds the row of index i
//   - targets: []int32            concatenated out-neighbor rows (compact indices)
//
// Memory is proportional to |V| + |E|, never to the span of identifier values:
// a graph whose IDs are {7, 1_000_000_000} allocates two slots, not a billion.
//
// Lifecycle
//
//	Build consumes the full edge list once and returns an immutable *Graph.
//	There is no AddEdge/RemoveEdge: a new data set means a new Build.
//	Because nothing mutates after Build returns, every query method is safe
//	for any number of concurrent readers without locks.
//
// Ordering guarantees
//
//   - Compact indices are assigned in first-encounter order (source before target
//     within each edge). Everything that needs "earliest seen" semantics (the
//     max-degree tie-break in package degree) relies on this.
//   - Neighbors(id) returns targets in ingestion order unless WithSortedNeighbors
//     is supplied, in which case rows are sorted by external NodeID.
//
// Duplicate edges
//
//	Duplicates (same From/To pair) are stored and counted individually.
//	WithDedup collapses exact repeats at build time; the first occurrence keeps
//	its position in the row.
//
// Core Methods:
//
//	Build(edges []Edge, opts ...BuildOption) (*Graph, error) // O(V + E)
//	Neighbors(id NodeID) ([]NodeID, error)                   // O(deg)
//	NodeCount() int / EdgeCount() int                        // O(1)
//	HasNode(id) bool / Index(id) (int32, bool) / ID(idx)     // O(1)
//	NeighborIndices(idx int32) []int32                       // O(1), zero-copy
//	ForEachEdge(fn func(Edge) bool)                          // O(E)
//
// Errors:
//
//	ErrUnknownNode   - a query referenced an identifier never seen at build time.
//	ErrEmptyGraph    - zero edges were supplied where at least one is required.
//	ErrNegativeID    - an edge endpoint is negative.
//	ErrTooManyNodes  - more distinct identifiers than an int32 index can address.
package core
