// Package noise is the single source of randomness for persona generation.
// Every stochastic decision goes through a Source so a run can be replayed
// from its seed.
package noise

import (
	"math/rand"
	"time"
)

// Source supplies uniform draws
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// Factory builds a fresh Source for one top-level generation call.
// Sources are never shared between calls.
type Factory func(seed int64) Source

// seededSource wraps a math/rand generator
type seededSource struct {
	rng *rand.Rand
}

// NewSeeded creates a deterministic Source for the given seed
func NewSeeded(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// SeededFactory is the production Factory
func SeededFactory(seed int64) Source {
	return NewSeeded(seed)
}

func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *seededSource) Intn(n int) int {
	return s.rng.Intn(n)
}

// NewSeed returns a time based seed. Seeds are not persisted by the
// generator; callers that want replay keep the value returned on the persona.
func NewSeed() int64 {
	seed := time.Now().UnixNano()
	if seed == 0 {
		seed = 1
	}
	return seed
}
