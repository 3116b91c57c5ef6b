// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Rim: cycle over indices 1..n-1 (emitted first), then spokes 0 → i.
//
// Complexity: O(n) time, 2(n-1) edges.

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n: a hub 0 plus a rim cycle.
func Wheel(n int) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		s.grow(2 * rim)
		for i := 0; i < rim; i++ {
			if err := s.link(methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := s.link(methodWheel, 0, i); err != nil {
				return err
			}
		}
		return nil
	}
}
