// Package random is the randomness seam for the simulation. Every stochastic
// rule takes a Source instead of reaching for package-level rand, so a whole
// run replays identically from one seed and tests can script exact draws.
package random

import "math/rand"

type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
}

type seeded struct {
	r *rand.Rand
}

func NewSeeded(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Float64() float64 { return s.r.Float64() }
func (s *seeded) Intn(n int) int   { return s.r.Intn(n) }

// Between returns a uniform value in [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Scripted replays a fixed sequence of Float64 draws, then falls back to the
// given source (or a zero source when nil). Intn maps the next draw onto [0, n).
type Scripted struct {
	Draws []float64
	Next  Source

	pos int
}

func (s *Scripted) Float64() float64 {
	if s.pos < len(s.Draws) {
		v := s.Draws[s.pos]
		s.pos++
		return v
	}
	if s.Next != nil {
		return s.Next.Float64()
	}
	return 0
}

func (s *Scripted) Intn(n int) int {
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
