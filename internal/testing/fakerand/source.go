// Package fakerand provides a scripted utils.RandomSource for deterministic tests.
package fakerand

import "sync"

// Source replays scripted values. When a script runs out it repeats the
// last value, or returns 0 if nothing was scripted.
type Source struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// New creates a source that returns floats from Float64 and ints from Intn.
func New(floats []float64, ints []int) *Source {
	return &Source{floats: floats, ints: ints}
}

// Floats creates a source scripted only for Float64.
func Floats(vals ...float64) *Source {
	return New(vals, nil)
}

// Ints creates a source scripted only for Intn.
func Ints(vals ...int) *Source {
	return New(nil, vals)
}

func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0
	}
	idx := s.fi
	if idx >= len(s.floats) {
		idx = len(s.floats) - 1
	} else {
		s.fi++
	}
	return s.floats[idx]
}

// Intn returns the next scripted int reduced modulo n.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	idx := s.ii
	if idx >= len(s.ints) {
		idx = len(s.ints) - 1
	} else {
		s.ii++
	}
	return s.ints[idx] % n
}
