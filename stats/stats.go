// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
)

var (
	// ErrNilInput is returned when Compute receives a nil graph or index.
	ErrNilInput = errors.New("stats: nil graph or degree index")

	// ErrIndexMismatch is returned when the degree index was built from a
	// different graph.
	ErrIndexMismatch = errors.New("stats: degree index does not match graph")
)

// Per-element costs of the in-memory layout, in bytes.
const (
	BytesPerNode  = 8 + 8 + 8 + 40
	BytesPerEdge  = 4
	BytesOverhead = 8

	bytesPerMB = 1 << 20
)

// Statistics is a point-in-time summary of one graph snapshot.
type Statistics struct {
	NodeCount            int         `json:"node_count"`
	EdgeCount            int         `json:"edge_count"`
	EstimatedMemoryBytes int64       `json:"estimated_memory_bytes"`
	EstimatedMemoryMB    float64     `json:"estimated_memory_mb"`
	MaxDegreeNode        core.NodeID `json:"max_degree_node"`
	MaxDegree            int         `json:"max_degree"`
}

// EstimateMemoryBytes returns the modelled footprint of a graph with n nodes
// and e edges.
func EstimateMemoryBytes(n, e int) int64 {
	return BytesPerNode*int64(n) + BytesPerEdge*int64(e) + BytesOverhead
}

// ToMB converts bytes to binary megabytes.
func ToMB(bytes int64) float64 { return float64(bytes) / bytesPerMB }

// Compute summarises g using its degree index. It reads only immutable
// state, so repeated calls on the same snapshot return identical values.
// A graph with zero nodes reports MaxDegreeNode 0 and MaxDegree 0.
func Compute(g *core.Graph, idx *degree.Index) (Statistics, error) {
	if g == nil || idx == nil {
		return Statistics{}, ErrNilInput
	}
	if idx.Len() != g.NodeCount() {
		return Statistics{}, fmt.Errorf("%w: index covers %d nodes, graph has %d",
			ErrIndexMismatch, idx.Len(), g.NodeCount())
	}

	n, e := g.NodeCount(), g.EdgeCount()
	bytes := EstimateMemoryBytes(n, e)
	s := Statistics{
		NodeCount:            n,
		EdgeCount:            e,
		EstimatedMemoryBytes: bytes,
		EstimatedMemoryMB:    ToMB(bytes),
		MaxDegree:            idx.MaxDegree(),
	}
	if top, err := idx.MaxDegreeNode(); err == nil {
		s.MaxDegreeNode = top
	}

	return s, nil
}
