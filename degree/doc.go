// SPDX-License-Identifier: MIT

// Package degree derives an O(1) degree index from a built core.Graph.
//
// What
//
//   - Out-degree per node: the externally reported "degree" and the measure
//     used for criticality ranking.
//   - In-degree per node, accumulated in the same pass.
//   - The maximum out-degree node, tracked incrementally while the index is
//     built: a node replaces the current champion only with a strictly greater
//     degree, so ties keep the earliest-seen node (lowest compact index).
//   - TopK ranking of the most connected nodes with the same tie-break.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - New:            O(V + E) time, 8 bytes per node.
//   - Degree/InDegree: O(1) average (one map lookup).
//   - MaxDegreeNode:  O(1).
//   - TopK(k):        O(V log k).
//
// Errors
//
//   - core.ErrUnknownNode  for identifiers never seen at build time.
//   - core.ErrEmptyGraph   from MaxDegreeNode on a graph with zero nodes.
//   - ErrGraphNil          when New receives a nil graph.
//
// The Index is immutable after New and safe for concurrent readers.
package degree
