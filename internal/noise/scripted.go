package noise

import (
	"sync"
)

// Scripted replays predetermined draws and then falls back to a seeded
// generator. Tests use it to pin the first few decisions of a pipeline.
type Scripted struct {
	mu       sync.Mutex
	values   []float64
	index    int
	fallback Source
}

// NewScripted creates a Scripted source. Values must be in [0, 1).
func NewScripted(values ...float64) *Scripted {
	return &Scripted{
		values:   values,
		fallback: NewSeeded(1),
	}
}

// Push appends more scripted values
func (s *Scripted) Push(values ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining reports how many scripted values are left
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.index
}

func (s *Scripted) next() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.values) {
		return 0, false
	}
	v := s.values[s.index]
	s.index++
	return v, true
}

// Float64 implements Source
func (s *Scripted) Float64() float64 {
	if v, ok := s.next(); ok {
		return v
	}
	return s.fallback.Float64()
}

// Intn implements Source by scaling the next scripted value
func (s *Scripted) Intn(n int) int {
	v, ok := s.next()
	if !ok {
		return s.fallback.Intn(n)
	}
	i := int(v * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// ValueFor returns the scripted value that makes Range(lo, hi) yield want
func ValueFor(lo, hi, want int) float64 {
	span := float64(hi - lo + 1)
	return (float64(want-lo) + 0.5) / span
}
