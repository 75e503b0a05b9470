// SPDX-License-Identifier: MIT
// Package: dsssp/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order,
//     freezes the collected edges into an immutable *graph.Graph.
//   - Constructors compose as a disjoint union: each claims the next free block of ids.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dsssp/graph"
)

// Constructor appends one deterministic component to the graph under
// construction. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Claim their vertices with a single sink.block call.
//   - Emit edges in a stable, documented order.
type Constructor func(s *sink, cfg builderConfig) error

// sink accumulates vertices and edges for one BuildGraph call.
type sink struct {
	n          int
	edges      []graph.Edge
	undirected bool
}

// block reserves k fresh consecutive ids and returns the first one.
func (s *sink) block(k int) int {
	base := s.n
	s.n += k

	return base
}

// edge emits u→v, and v→u as well when the build is undirected.
func (s *sink) edge(u, v int) {
	s.edges = append(s.edges, graph.Edge{From: u, To: v})
	if s.undirected && u != v {
		s.edges = append(s.edges, graph.Edge{From: v, To: u})
	}
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting graph. Component k's
// vertices follow component k-1's, so ids are contiguous per component.
// Any constructor error is wrapped with the context "BuildGraph: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor, then O(V+E) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sink{undirected: cfg.undirected}

	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := graph.New(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
