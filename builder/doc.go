// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic edge lists for tests,
// benchmarks and demos, and writes them in the format package ingest reads.
//
// The package offers the following key components:
//
//   - Constructors (Constructor closures composed by BuildEdges/BuildGraph):
//     – Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols).
//     – RandomSparse(n, p): every admissible ordered pair kept with probability p.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand:   RNG for stochastic constructors.
//     – WithIDOffset(base):    node IDs base, base+1, ... instead of 0, 1, ...
//     – WithIDScheme(fn):      arbitrary index → core.NodeID mapping.
//     – WithBidirectional():   emit every structural edge in both directions.
//     – WithLoops():           allow self-loops in RandomSparse.
//   - Output: WriteEdgeList / WriteFile (gzip when the path ends in ".gz").
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical edge lists
//     in identical order.
//   - Sentinel errors only (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed); constructors never panic.
//     Option constructors panic on nil arguments (programmer error).
package builder
