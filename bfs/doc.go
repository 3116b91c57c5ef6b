// SPDX-License-Identifier: MIT

// Package bfs provides bounded-depth breadth-first search over a core.Graph,
// returning the traversal subgraph: discovered nodes, their depths, and the
// tree edges along which each node was first reached.
//
// What
//
//   - Explore out-edges in non-decreasing distance from a start node.
//   - First discovery wins; siblings are discovered in neighbor-list order.
//   - Nodes at exactly maxDepth are included but never expanded.
//   - Result.Edges holds discovery edges only, so it is a spanning tree of
//     Result.Nodes rooted at the start (len(Edges) == len(Nodes)-1).
//   - Hooks: OnEnqueue (on discovery), OnVisit (on dequeue; may abort).
//   - Per-edge pruning via WithFilterNeighbor.
//
// Determinism
//
//	Neighbor lists keep ingestion order (or ascending ID order with
//	core.WithSortedNeighbors), so the visit sequence is reproducible.
//
// Complexity
//
//   - Time:   O(V_visited + E_visited)
//   - Memory: O(V_visited); the visited set is a map that grows with the
//     discovered set and never allocates per graph node.
//
// Usage
//
//	res, err := bfs.BFS(g, 1, 2,
//	    bfs.WithContext(ctx),
//	    bfs.WithFilterNeighbor(func(curr, nbr core.NodeID) bool { return nbr != 13 }),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, ctx.Err(), or a wrapped OnVisit error
//	}
//	path, _ := res.PathTo(42)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if maxDepth < 1.
//   - ErrNoPath           from Result.PathTo for an undiscovered node.
//
// An unknown start node is not an error: BFS returns an empty Result.
package bfs
