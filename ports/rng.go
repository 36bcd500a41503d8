package ports

import "math/rand"

// RandomSource supplies the shared generator behind veil operations.
// Domain engines take a *rand.Rand directly; this port owns its lifecycle.
type RandomSource interface {
	// Atomic runs fn while holding the source's lock. Each veil call draws a
	// variable, data-dependent number of values, so the whole call's draws
	// must form one uninterrupted sequence for reproducibility.
	Atomic(fn func(rng *rand.Rand) error) error

	// Stream derives an independent deterministic generator for a named
	// worker, so concurrent batch entries never contend on the shared state.
	Stream(name string, seed int64) *rand.Rand

	// Reseed fixes the shared generator and returns the applied seed. A nil
	// seed applies the environment default, falling back to fresh entropy.
	Reseed(seed *int64) int64
}
