// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Directed build: iterate ordered pairs (i,j), i≠j.
//   - Undirected build: iterate unordered pairs {i,j} with i<j; the sink mirrors them.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc.
//   - Deterministic outcomes for fixed seed/options due to fixed trial order.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *sink, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < MinSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Claim the vertex block.
		b := s.block(n)

		// 3) Sample edges with a stable, documented order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (cfg.undirected && j < i) {
					continue
				}
				if keep(cfg, p) {
					s.edge(b+i, b+j)
				}
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial. p ∈ {0,1} never consumes randomness.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
