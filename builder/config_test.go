// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithRand should set rng
	expRNG := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("WithRand: expected rng %p, got %p", expRNG, cfg.rng)
	}

	// 3. WithSeed should produce reproducible RNG streams
	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	for i := 0; i < 4; i++ {
		if x, y := a.Int63(), b.Int63(); x != y {
			t.Fatalf("WithSeed: draw %d differs: %d vs %d", i, x, y)
		}
	}

	// 4. Later options override earlier ones
	if cfg := newBuilderConfig(WithSeed(1), WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("override: expected WithRand to win")
	}
}

// TestWithRandNilPanics checks the option-constructor fail-fast rule.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r == nil {
			t.Error("WithRand(nil): expected panic, but none occurred")
		}
	}()
	WithRand(nil)
}

// TestValidators covers both validation helpers, including NaN.
func TestValidators(t *testing.T) {
	t.Parallel()

	if err := validatePartition("T", 0, 0); err != nil {
		t.Errorf("validatePartition(0,0): unexpected %v", err)
	}
	if err := validatePartition("T", -1, 3); !errors.Is(err, ErrTooFewVertices) {
		t.Errorf("validatePartition(-1,3): got %v", err)
	}

	for _, p := range []float64{0, 0.25, 1} {
		if err := validateProbability("T", p); err != nil {
			t.Errorf("validateProbability(%g): unexpected %v", p, err)
		}
	}
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if err := validateProbability("T", p); !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("validateProbability(%g): got %v", p, err)
		}
	}
}

// TestGeometricPass_Bounds drives the sampler directly and checks every
// emitted position lies inside the grid, strictly increasing in row-major order.
func TestGeometricPass_Bounds(t *testing.T) {
	t.Parallel()

	const n, m = 37, 23
	rng := rand.New(rand.NewSource(9))
	last := -1
	count := 0
	err := geometricPass(rng, n, m, 0.3, func(v, w int) error {
		if v < 0 || v >= n || w < 0 || w >= m {
			t.Fatalf("position (%d,%d) out of %dx%d grid", v, w, n, m)
		}
		pos := v*m + w
		if pos <= last {
			t.Fatalf("position %d not after %d", pos, last)
		}
		last = pos
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("geometricPass: %v", err)
	}
	if count == 0 {
		t.Fatal("expected at least one position at p=0.3")
	}
}

// TestGeometricPass_TinyProbability makes sure astronomically large gaps end
// the pass instead of overflowing.
func TestGeometricPass_TinyProbability(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	calls := 0
	err := geometricPass(rng, 1000, 1000, 1e-300, func(v, w int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("geometricPass: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no edges at p=1e-300, got %d", calls)
	}
}

// TestGeometricPass_EmitError propagates the first emit failure.
func TestGeometricPass_EmitError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rng := rand.New(rand.NewSource(3))
	err := geometricPass(rng, 10, 10, 0.9, func(v, w int) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
