// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, n-1 edges.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		s.grow(n - 1)
		for i := 1; i < n; i++ {
			if err := s.link(methodPath, i-1, i); err != nil {
				return err
			}
		}
		return nil
	}
}
