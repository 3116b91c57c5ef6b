// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) has index r*cols + c.
//   - Row-major emission: for each cell, right neighbor first, then down.
//
// Complexity: O(rows·cols) time, rows(cols-1) + cols(rows-1) edges.

package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice with edges
// pointing right and down.
func Grid(rows, cols int) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodGrid, rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, cols, minGridDim); err != nil {
			return err
		}
		s.grow(rows*(cols-1) + cols*(rows-1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := s.link(methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := s.link(methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
