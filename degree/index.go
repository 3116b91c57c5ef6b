// SPDX-License-Identifier: MIT

package degree

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/neuronet/core"
)

// ErrGraphNil is returned by New for a nil graph.
var ErrGraphNil = errors.New("degree: graph is nil")

// Ranked pairs a node with its out-degree.
type Ranked struct {
	Node   core.NodeID `json:"node"`
	Degree int         `json:"degree"`
}

// Index holds per-node out/in degrees addressed by compact index.
type Index struct {
	g      *core.Graph
	out    []int32
	in     []int32
	maxIdx int32 // -1 when the graph has no nodes
}

// New computes the index in a single pass over g.
// Complexity: O(V + E).
func New(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	ix := &Index{
		g:      g,
		out:    make([]int32, n),
		in:     make([]int32, n),
		maxIdx: -1,
	}
	best := -1
	for i := 0; i < n; i++ {
		row := g.NeighborIndices(int32(i))
		ix.out[i] = int32(len(row))
		for _, t := range row {
			ix.in[t]++
		}
		// strictly greater: ties keep the earliest-seen node
		if len(row) > best {
			best = len(row)
			ix.maxIdx = int32(i)
		}
	}

	return ix, nil
}

// Degree returns the out-degree of id.
func (ix *Index) Degree(id core.NodeID) (int, error) {
	idx, ok := ix.g.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", core.ErrUnknownNode, id)
	}
	return int(ix.out[idx]), nil
}

// InDegree returns the number of edges whose target is id.
func (ix *Index) InDegree(id core.NodeID) (int, error) {
	idx, ok := ix.g.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", core.ErrUnknownNode, id)
	}
	return int(ix.in[idx]), nil
}

// MaxDegreeNode returns the node with the greatest out-degree,
// the earliest-seen one on ties.
func (ix *Index) MaxDegreeNode() (core.NodeID, error) {
	if ix.maxIdx < 0 {
		return 0, fmt.Errorf("%w: no nodes to rank", core.ErrEmptyGraph)
	}
	return ix.g.ID(ix.maxIdx), nil
}

// MaxDegree returns the out-degree of MaxDegreeNode, or 0 for an empty graph.
func (ix *Index) MaxDegree() int {
	if ix.maxIdx < 0 {
		return 0
	}
	return int(ix.out[ix.maxIdx])
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return len(ix.out) }

// TopK returns up to k nodes ordered by out-degree descending; equal degrees
// keep first-encounter order, so TopK(1)[0] is MaxDegreeNode.
// k <= 0 yields an empty result.
func (ix *Index) TopK(k int) []Ranked {
	if k <= 0 || len(ix.out) == 0 {
		return []Ranked{}
	}
	if k > len(ix.out) {
		k = len(ix.out)
	}

	// min-heap of the best k seen so far; root is the weakest entry
	h := make(rankHeap, 0, k)
	for i, d := range ix.out {
		c := candidate{idx: int32(i), deg: d}
		if len(h) < k {
			heap.Push(&h, c)
			continue
		}
		if c.beats(h[0]) {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}

	sort.Slice(h, func(a, b int) bool { return h[a].beats(h[b]) })
	out := make([]Ranked, len(h))
	for i, c := range h {
		out[i] = Ranked{Node: ix.g.ID(c.idx), Degree: int(c.deg)}
	}

	return out
}

type candidate struct {
	idx int32
	deg int32
}

// beats reports whether c ranks ahead of o.
func (c candidate) beats(o candidate) bool {
	if c.deg != o.deg {
		return c.deg > o.deg
	}
	return c.idx < o.idx
}

type rankHeap []candidate

func (h rankHeap) Len() int           { return len(h) }
func (h rankHeap) Less(i, j int) bool { return h[j].beats(h[i]) }
func (h rankHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *rankHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *rankHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
