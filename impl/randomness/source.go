package randomness

import (
	"fmt"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"math"
)

// Source derives uniform floats and bounded integers from a continuous
// distribution whose samples lie in [0, 1).
type Source struct {
	dist distuv.Rander
}

// NewUniform returns a Source backed by a uniform distribution on [0, 1)
// seeded with the given value. Equal seeds produce equal sequences.
func NewUniform(seed uint64) *Source {
	return &Source{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: xrand.NewSource(seed),
		},
	}
}

// NewSource wraps an arbitrary distribution. Its samples must lie in [0, 1).
func NewSource(dist distuv.Rander) *Source {
	return &Source{dist: dist}
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.dist.Rand()
}

// Intn returns a value in [0, max). It panics if max <= 0.
func (s *Source) Intn(max int) int {
	if max <= 0 {
		panic(fmt.Sprintf("randomness: invalid argument to Intn: %d", max))
	}

	n := int(math.Floor(s.Float64() * float64(max)))
	// a distribution whose support includes 1 would otherwise yield max
	if n >= max {
		n = max - 1
	}
	return n
}
