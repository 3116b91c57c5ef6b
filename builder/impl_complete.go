// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair i → j, i ≠ j, in row-major order, so the
//     result is the complete digraph K_n with n(n-1) edges.
//   - n = 1 emits nothing.
//
// Complexity: O(n²).

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		s.grow(n * (n - 1))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := s.link(methodComplete, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
