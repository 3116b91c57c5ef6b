// SPDX-License-Identifier: MIT
// Package: neuronet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like directed sampling. Every ordered pair (i,j) is kept
// independently with probability p; self-loops only with WithLoops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - RNG required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic without one.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: trials run i asc, j asc; fixed seed ⇒ identical output.
// WithBidirectional mirrors every kept edge instead of sampling (j,i) again.

package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(s *edgeSink) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability,
				"p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
		}
		rng := s.cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "rng is required")
		}
		if p == probMin {
			return nil
		}

		for i := 0; i < n; i++ {
			first := 0
			if s.cfg.bidirectional {
				// mirrored pairs: sample each unordered pair once
				first = i
			}
			for j := first; j < n; j++ {
				if i == j && !s.cfg.loops {
					continue
				}
				if p < probMax && rng.Float64() >= p {
					continue
				}
				if err := s.link(methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
