// SPDX-License-Identifier: MIT

// Package stats reports structural statistics and a deterministic memory
// estimate for a loaded graph.
//
// The estimate is reproducible from the node and edge counts alone:
//
//	EstimateMemoryBytes(n, e) = 64·n + 4·e + 8
//
// Per node: 8 bytes CSR offset, 8 bytes index→ID, 8 bytes for the int32
// out/in degree pair, 40 bytes for the ID→index hash entry.
// Per edge: 4 bytes int32 target index. Plus 8 bytes for the trailing offset.
// Megabytes are bytes / 2^20.
package stats
