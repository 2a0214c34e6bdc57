// Package rng provides the reproducible random source used to place radar
// entries.
//
// The generator is a sine hash of an incrementing counter: cheap, not
// statistically strong, and fully determined by its seed. Two sources
// created with the same seed yield the same sequence, which is what makes
// a layout reproducible. A Source is owned by one layout pass and must
// not be shared between concurrent passes.
package rng

import "math"

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint64 = 42

// Source is a seeded, stateful generator. It is not safe for concurrent
// use.
type Source struct {
	seed    uint64
	counter float64
}

// New returns a Source starting at seed.
func New(seed uint64) *Source {
	return &Source{seed: seed, counter: float64(seed)}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 { return s.seed }

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	x := math.Sin(s.counter) * 10000
	s.counter++
	f := x - math.Floor(x)
	if f >= 1 { // x - floor(x) rounds up to 1 for tiny negative x
		return 0
	}
	return f
}

// Between returns a uniform sample in [lo, hi).
func (s *Source) Between(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// NormalBetween returns a sample in [lo, hi) biased towards the middle of
// the interval: the mean of two uniform draws.
func (s *Source) NormalBetween(lo, hi float64) float64 {
	return lo + (s.Float64()+s.Float64())*0.5*(hi-lo)
}

// Jiggle returns a tiny symmetric perturbation used to separate
// coincident points.
func (s *Source) Jiggle() float64 {
	return (s.Float64() - 0.5) * 1e-6
}
