// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = identity        (0, 1, 2, ...)
//   • rng           = nil             (pure unless seeded)
//   • bidirectional = false
//   • loops         = false

package builder

import (
	"math/rand"

	"github.com/katalvlaran/neuronet/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Emit v→u next to every structural u→v.
	bidirectional bool
	// Allow i→i in RandomSparse.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: identityID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func identityID(i int) core.NodeID { return core.NodeID(i) }

// edgeSink accumulates emitted edges and validates IDs on the way in.
type edgeSink struct {
	edges []core.Edge
	cfg   builderConfig
}

// link emits u→v (and v→u when bidirectional) for node indices u and v.
func (s *edgeSink) link(method string, u, v int) error {
	from, to := s.cfg.idFn(u), s.cfg.idFn(v)
	if from < 0 || to < 0 {
		return builderErrorf(method, ErrConstructFailed, "negative id for index pair (%d,%d)", u, v)
	}
	s.edges = append(s.edges, core.Edge{From: from, To: to})
	if s.cfg.bidirectional && u != v {
		s.edges = append(s.edges, core.Edge{From: to, To: from})
	}
	return nil
}

// grow reserves room for n more structural edges.
func (s *edgeSink) grow(n int) {
	if s.cfg.bidirectional {
		n *= 2
	}
	if free := cap(s.edges) - len(s.edges); free < n {
		next := make([]core.Edge, len(s.edges), len(s.edges)+n)
		copy(next, s.edges)
		s.edges = next
	}
}
