// SPDX-License-Identifier: MIT

// NodeID, Edge and Graph types, build options, and the sentinel errors
// shared by every neuronet package.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates a query referenced a node never seen at build time.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrEmptyGraph indicates that no edges (or no nodes) are available where
	// at least one is required.
	ErrEmptyGraph = errors.New("core: empty graph")

	// ErrNegativeID indicates an edge endpoint below zero.
	ErrNegativeID = errors.New("core: negative node identifier")

	// ErrTooManyNodes indicates more distinct identifiers than a compact
	// int32 index can address.
	ErrTooManyNodes = errors.New("core: too many distinct nodes")
)

// NodeID is an external node identifier as it appears in the input data.
// Identifiers are non-negative and need not be contiguous.
type NodeID int64

// Edge is a directed pair From→To of external identifiers.
type Edge struct {
	From NodeID `json:"from"`
	To   NodeID `json:"to"`
}

// String renders the edge as "from->to".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.From, e.To)
}

// Graph is an immutable directed graph in CSR form.
//
// index maps external IDs to compact indices; ids is its inverse.
// Row i of the adjacency is targets[offsets[i]:offsets[i+1]].
// All fields are written only by Build.
type Graph struct {
	index   map[NodeID]int32
	ids     []NodeID
	offsets []int64
	targets []int32

	// build policy, retained for introspection
	dedup  bool
	sorted bool
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

type buildOptions struct {
	dedup        bool
	sorted       bool
	capacityHint int
}

// WithDedup collapses repeated (From, To) pairs into one edge.
// Without it duplicates are stored and counted individually.
func WithDedup() BuildOption {
	return func(o *buildOptions) { o.dedup = true }
}

// WithSortedNeighbors orders every neighbor row by ascending external NodeID
// instead of ingestion order.
func WithSortedNeighbors() BuildOption {
	return func(o *buildOptions) { o.sorted = true }
}

// WithCapacityHint pre-sizes the identifier tables for roughly n nodes.
// Non-positive hints are ignored.
func WithCapacityHint(n int) BuildOption {
	return func(o *buildOptions) {
		if n > 0 {
			o.capacityHint = n
		}
	}
}
