// SPDX-License-Identifier: MIT

// Package neuronet is a build-once, query-many engine for massive sparse
// directed graphs loaded from flat "source target" edge lists.
//
// What is neuronet?
//
//	A compact CSR adjacency store plus the queries you reach for first:
//		• Ingestion: plain or gzip edge lists, malformed lines skipped
//		• Degree: O(1) out-degree, in-degree and the max-degree node
//		• Neighbors: zero-copy out-neighbor slices in ingestion order
//		• Traversal: bounded-depth BFS returning the discovery subgraph
//		• Statistics: node and edge counts plus a memory estimate
//
// Packages, leaf-first:
//
//	core/      — immutable CSR Graph, Edge and NodeID types
//	ingest/    — line-oriented edge-list reader
//	degree/    — degree index, max-degree node, TopK
//	bfs/       — bounded-depth breadth-first search
//	stats/     — structural statistics and memory estimate
//	engine/    — load/query facade with snapshots, tracing and metrics
//	export/    — text, JSON, DOT and Mermaid renderings of BFS results
//	builder/   — deterministic synthetic edge lists (path, star, grid, ...)
//	config/, logging/, telemetry/ — ambient stack for the CLI
//	cmd/neuronet — the command-line front end
//
// Quick example:
//
//	1 2
//	2 3
//	1 3
//
//	$ neuronet bfs 1 --depth 1 -f tri.txt
//
// lists nodes 1, 2, 3 and the tree edges 1->2 and 1->3.
package neuronet
