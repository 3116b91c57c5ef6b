// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in order.
//   - BuildGraph feeds the result straight into core.Build.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/neuronet/core"
)

// Constructor appends a deterministic topology to the sink using the
// resolved builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(s *edgeSink) error

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order, returning the concatenated edge list.
// Any constructor error is wrapped with "BuildEdges: %w".
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]core.Edge, error) {
	sink := &edgeSink{cfg: newBuilderConfig(bopts...)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sink); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}
	return sink.edges, nil
}

// BuildGraph runs BuildEdges and builds a core.Graph with gopts.
func BuildGraph(gopts []core.BuildOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, nil
}

// builderErrorf returns "<method>: <detail>: <sentinel>" wrapping sentinel.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// validateMin ensures got >= min.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}
	return nil
}
