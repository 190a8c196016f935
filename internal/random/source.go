// Package random provides the one pseudo-random source a generation run
// draws from. Numeric draws and synthetic names share the same stream, so a
// fixed seed reproduces every generated field.
package random

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Source is a seeded random stream. It is not safe for concurrent use; a run
// is sequential and owns its Source.
type Source struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New creates a Source from seed. A zero seed asks gofakeit for a
// crypto-random seed, making the run non-reproducible.
func New(seed int64) *Source {
	f := gofakeit.New(seed)
	return &Source{rng: f.Rand, faker: f}
}

// IntRange returns a uniform integer in [lo, hi]
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi)
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Index returns a uniform index in [0, n). n must be positive.
func (s *Source) Index(n int) int {
	return s.rng.Intn(n)
}

// Choice returns a uniformly chosen element of options, which must not be empty
func (s *Source) Choice(options []string) string {
	return options[s.rng.Intn(len(options))]
}

// Sample returns k distinct indices from [0, n) in random order.
// k is clamped to n.
func (s *Source) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	return s.rng.Perm(n)[:k]
}

// City returns a synthetic city name
func (s *Source) City() string {
	return s.faker.City()
}

// Name returns a synthetic person name
func (s *Source) Name() string {
	return s.faker.Name()
}
