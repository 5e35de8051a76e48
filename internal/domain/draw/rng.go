package draw

import (
	"math/rand/v2"
	"sync"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type globalRNG struct{}

func (globalRNG) Intn(n int) int {
	return rand.IntN(n)
}

// DefaultRNG uses the runtime-seeded global source, which is safe for concurrent use.
func DefaultRNG() RNG {
	return globalRNG{}
}

type seededRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRNG returns a reproducible RNG, mainly for simulations and tests.
func NewSeededRNG(seed uint64) RNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededRNG) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
