// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the hub; emits 0 → i for i=1..n-1.
//
// Complexity: O(n) time, n-1 edges. The hub is the unique max-degree node.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		s.grow(n - 1)
		for i := 1; i < n; i++ {
			if err := s.link(methodStar, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
