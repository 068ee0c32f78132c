package utils

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// RandomSource is the uniform randomness consumed by spins and games.
// Float64 returns a value in [0,1); Intn returns a value in [0,n).
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// SeededSource is a reproducible source, safe for concurrent use.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source for replays and tests.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec
}

func (s *SeededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *SeededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewSecureSource returns a ChaCha8 source seeded from crypto/rand.
func NewSecureSource() (*SeededSource, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, err
	}
	return &SeededSource{rng: rand.New(rand.NewChaCha8(seed))}, nil //nolint:gosec
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(src RandomSource, min, max int) int {
	if min >= max {
		return min
	}
	return src.Intn(max-min+1) + min
}
