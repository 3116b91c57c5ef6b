// SPDX-License-Identifier: MIT

// Package export renders a bfs.Result for humans and tools.
//
// Formats
//
//   - text:    a level-by-level summary for terminals.
//   - json:    start, depth bound, nodes with depths, and tree edges.
//   - dot:     a Graphviz digraph; the start node is filled.
//   - mermaid: a Mermaid flowchart; the start node is styled.
//
// Output is deterministic: nodes appear in discovery order and edges in
// discovery order, so renderings are stable across runs.
package export
