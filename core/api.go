// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Build, the only constructor of Graph, plus read-only policy getters.
// Policy:
//   - Build is the single writer; nothing mutates a Graph after it returns.
//   - Every exported function documents complexity.

package core

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Build constructs an immutable Graph from edges in a single batch.
//
// Implementation:
//   - Stage 1: Validate endpoints and assign compact indices in first-encounter
//     order (From before To within an edge).
//   - Stage 2: Count out-degrees into offsets and prefix-sum them.
//   - Stage 3: Scatter every target into its source row, preserving ingestion order.
//   - Stage 4: Apply the optional dedup and sort policies row by row.
//
// Inputs:
//   - edges: the full edge list; it is read, never retained.
//   - opts:  WithDedup, WithSortedNeighbors, WithCapacityHint.
//
// Returns:
//   - *Graph: the built graph. An empty edge list yields a valid zero-node graph.
//
// Errors:
//   - ErrNegativeID:   an endpoint is < 0 (wrapped with the edge position).
//   - ErrTooManyNodes: more than math.MaxInt32 distinct identifiers.
//
// Complexity:
//   - Time O(V + E) (plus O(d log d) per row with WithSortedNeighbors).
//   - Space O(V + E); a transient 8 bytes per edge holds endpoint indices.
func Build(edges []Edge, opts ...BuildOption) (*Graph, error) {
	var o buildOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	g := &Graph{
		index:  make(map[NodeID]int32, o.capacityHint),
		ids:    make([]NodeID, 0, o.capacityHint),
		dedup:  o.dedup,
		sorted: o.sorted,
	}

	// Stage 1: intern endpoints; remember their indices for the scatter pass.
	src := make([]int32, len(edges))
	dst := make([]int32, len(edges))
	for i, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("%w: edge #%d (%s)", ErrNegativeID, i, e)
		}
		s, err := g.intern(e.From)
		if err != nil {
			return nil, err
		}
		d, err := g.intern(e.To)
		if err != nil {
			return nil, err
		}
		src[i], dst[i] = s, d
	}

	// Stage 2: offsets[i+1] = out-degree(i), then prefix sums.
	n := len(g.ids)
	offsets := make([]int64, n+1)
	for _, s := range src {
		offsets[s+1]++
	}
	for i := 0; i < n; i++ {
		offsets[i+1] += offsets[i]
	}

	// Stage 3: stable scatter; cursor[i] is the next free slot in row i.
	targets := make([]int32, len(edges))
	cursor := make([]int64, n)
	copy(cursor, offsets[:n])
	for i, s := range src {
		targets[cursor[s]] = dst[i]
		cursor[s]++
	}
	g.offsets, g.targets = offsets, targets

	// Stage 4: optional policies.
	if o.dedup {
		g.dedupRows()
	}
	if o.sorted {
		g.sortRows()
	}

	return g, nil
}

// intern returns the compact index of id, assigning the next one if unseen.
func (g *Graph) intern(id NodeID) (int32, error) {
	if idx, ok := g.index[id]; ok {
		return idx, nil
	}
	if len(g.ids) >= math.MaxInt32 {
		return 0, fmt.Errorf("%w: limit %d", ErrTooManyNodes, math.MaxInt32)
	}
	idx := int32(len(g.ids))
	g.index[id] = idx
	g.ids = append(g.ids, id)

	return idx, nil
}

// dedupRows drops repeated targets inside each row, keeping first occurrences,
// and compacts targets/offsets in place.
// mark[t] == i+1 means target t was already kept in row i.
func (g *Graph) dedupRows() {
	n := len(g.ids)
	mark := make([]int32, n)
	var w int64
	for i := 0; i < n; i++ {
		lo, hi := g.offsets[i], g.offsets[i+1]
		g.offsets[i] = w
		stamp := int32(i + 1)
		for k := lo; k < hi; k++ {
			t := g.targets[k]
			if mark[t] == stamp {
				continue
			}
			mark[t] = stamp
			g.targets[w] = t
			w++
		}
	}
	g.offsets[n] = w
	if w < int64(len(g.targets)) {
		g.targets = slices.Clone(g.targets[:w])
	}
}

// sortRows orders each row by the external identifier of its targets.
func (g *Graph) sortRows() {
	byID := func(a, b int32) int { return cmp.Compare(g.ids[a], g.ids[b]) }
	for i := 0; i+1 < len(g.offsets); i++ {
		slices.SortFunc(g.targets[g.offsets[i]:g.offsets[i+1]], byID)
	}
}

// Deduplicated reports whether the graph was built WithDedup.
// Complexity: O(1).
func (g *Graph) Deduplicated() bool {
	return g != nil && g.dedup
}

// SortedNeighbors reports whether the graph was built WithSortedNeighbors.
// Complexity: O(1).
func (g *Graph) SortedNeighbors() bool {
	return g != nil && g.sorted
}
