// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i → (i+1) mod n for i=0..n-1; the closing edge (n-1) → 0 is last.
//
// Complexity: O(n) time, n edges.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			if err := s.link(methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
