package randomness

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

type constRander struct {
	value float64
}

func (r constRander) Rand() float64 {
	return r.value
}

func TestFloat64_inUnitInterval(t *testing.T) {
	src := NewUniform(42)

	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestIntn_inRange(t *testing.T) {
	src := NewUniform(7)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := src.Intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}

func TestIntn_sameSeedSameSequence(t *testing.T) {
	a := NewUniform(2024)
	b := NewUniform(2024)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestIntn_floorOfScaledSample(t *testing.T) {
	src := NewSource(constRander{value: 0.75})

	assert.Equal(t, 7, src.Intn(10))
	assert.Equal(t, 0, src.Intn(1))
}

func TestIntn_sampleOfOneClampedBelowMax(t *testing.T) {
	src := NewSource(constRander{value: 1})

	assert.Equal(t, 9, src.Intn(10))
	assert.Equal(t, 0, src.Intn(1))
}

func TestIntn_sampleNearOneRoundsDown(t *testing.T) {
	src := NewSource(constRander{value: 0.9999999999999999})

	n := 3 << 52
	assert.Equal(t, n-2, src.Intn(n))
}

func TestIntn_nonPositiveMaxPanics(t *testing.T) {
	src := NewUniform(1)

	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-3) })
}
