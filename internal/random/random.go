// Package random selects outcomes for the mini-games and computes the
// wheel rotation that lands the pointer on a chosen wedge.
package random

import (
	"math"
	"math/rand"
)

// Picker chooses an index uniformly from [0, n).
type Picker interface {
	PickUniform(n int) int
}

// Source is a seedable, non-cryptographic Picker.
type Source struct {
	rng *rand.Rand
}

// New creates a Source with the given seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// PickUniform returns a uniformly random index in [0, n).
// Panics if n <= 0.
func (s *Source) PickUniform(n int) int {
	return s.rng.Intn(n)
}

// NextSeed draws a non-zero seed for a child source. A Source handing
// seeds to each visit keeps the whole run reproducible from one seed.
func (s *Source) NextSeed() int64 {
	for {
		if seed := s.rng.Int63(); seed != 0 {
			return seed
		}
	}
}

// Float returns a value in [0, 1).
func (s *Source) Float() float64 {
	return s.rng.Float64()
}

// Fixed always picks the same index, wrapped into range.
// Used to force outcomes in tests and demos.
type Fixed int

// PickUniform returns the fixed index modulo n.
func (f Fixed) PickUniform(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

// Pick returns a uniformly chosen item and its index.
// Panics if items is empty.
func Pick[T any](p Picker, items []T) (T, int) {
	i := p.PickUniform(len(items))
	return items[i], i
}

// AnglePerOutcome is the wedge size in degrees for total outcomes.
func AnglePerOutcome(total int) float64 {
	return 360 / float64(total)
}

// ComputeTargetRotation returns the additional rotation, in degrees, that
// brings the middle of wedge index under the pointer after fullSpins turns.
func ComputeTargetRotation(index, total, fullSpins int) float64 {
	a := AnglePerOutcome(total)
	return float64(fullSpins)*360 + Mod360(360-float64(index)*a-a/2)
}

// Mod360 normalises an angle into [0, 360).
func Mod360(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}
