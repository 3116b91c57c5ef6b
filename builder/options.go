// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// options.go — functional options for builder configuration.
//
// Option constructors validate their arguments and panic on programmer
// errors (nil RNG, nil ID scheme). Constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/neuronet/core"
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator: idx -> core.NodeID.
// Generated IDs must be non-negative.
func WithIDScheme(fn func(int) core.NodeID) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithIDOffset maps index i to base+i.
func WithIDOffset(base core.NodeID) BuilderOption {
	if base < 0 {
		panic("builder: WithIDOffset(base<0)")
	}
	return WithIDScheme(func(i int) core.NodeID { return base + core.NodeID(i) })
}

// WithRand provides an explicit RNG for stochastic builders.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithBidirectional emits every structural edge in both directions, turning
// the directed topologies into their symmetric counterparts.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}

// WithLoops allows RandomSparse to sample self-loops.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}
