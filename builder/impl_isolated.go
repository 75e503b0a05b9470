// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Claims n ids and emits no edges; each vertex has in- and out-degree 0
//     unless a later constructor links to it, which none does.

package builder

import "fmt"

// Isolated returns a Constructor that adds n vertices without edges.
func Isolated(n int) Constructor {
	return func(s *sink, _ builderConfig) error {
		if n < MinIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodIsolated, n, MinIsolatedNodes, ErrTooFewVertices)
		}
		s.block(n)

		return nil
	}
}
