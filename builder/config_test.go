// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and the nil panic in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) should panic at option construction
	func() {
		defer func() {
			if recover() == nil {
				t.Error("WithRand(nil): expected panic")
			}
		}()
		_ = WithRand(nil)
	}()

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}

	// 5. Last option wins
	cfgOverride := newBuilderConfig(WithRand(expRNG), WithSeed(1))
	if cfgOverride.rng == expRNG {
		t.Error("override order: WithSeed after WithRand should replace the rng")
	}
}

// TestUndirectedOption verifies the undirected flag and the sink mirroring.
func TestUndirectedOption(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().undirected {
		t.Error("default: expected directed build")
	}
	cfg := newBuilderConfig(WithUndirected())
	if !cfg.undirected {
		t.Fatal("WithUndirected: flag not set")
	}

	s := &sink{undirected: cfg.undirected}
	base := s.block(2)
	s.edge(base, base+1)
	s.edge(base, base) // self-loops are not mirrored
	if len(s.edges) != 3 {
		t.Errorf("sink: got %d edges, want 3", len(s.edges))
	}
	if s.block(3) != 2 || s.n != 5 {
		t.Errorf("block: unexpected allocation, n=%d", s.n)
	}
}
