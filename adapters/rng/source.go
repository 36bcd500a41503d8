package rng

import (
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/IoTIVP/data-veil/ports"
)

// SeedEnv is the environment variable holding the default seed. When set,
// every process shares one deterministic generator without callers having to
// reseed explicitly.
const SeedEnv = "DATA_VEIL_SEED"

// Source implements ports.RandomSource around one process-wide generator,
// lazily initialized on first use and guarded by a mutex so each Atomic
// section's draws form a single uninterrupted sequence.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns an unseeded source; the generator initializes on first
// use from DATA_VEIL_SEED, or fresh entropy when the variable is unset.
func NewSource() ports.RandomSource {
	return &Source{}
}

// Atomic runs fn while holding the source lock.
func (s *Source) Atomic(fn func(rng *rand.Rand) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rng == nil {
		s.seedLocked(nil)
	}
	return fn(s.rng)
}

// Stream derives an independent deterministic generator for a named worker.
// The same name and base seed always yield the same stream.
func (s *Source) Stream(name string, seed int64) *rand.Rand {
	derived := seed
	if name != "" {
		derived += int64(hashString(name))
	}
	return rand.New(rand.NewSource(derived))
}

// Reseed fixes the shared generator and returns the applied seed.
func (s *Source) Reseed(seed *int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedLocked(seed)
}

func (s *Source) seedLocked(seed *int64) int64 {
	var applied int64
	switch {
	case seed != nil:
		applied = *seed
	default:
		if env, err := strconv.ParseInt(os.Getenv(SeedEnv), 10, 64); err == nil {
			applied = env
		} else {
			applied = time.Now().UnixNano()
		}
	}
	s.rng = rand.New(rand.NewSource(applied))
	return applied
}

// hashString creates a simple hash for deterministic stream seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
