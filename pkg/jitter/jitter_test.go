package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, 0.5, rand.New(rand.NewSource(42)))
	b := DurationWithSeed(time.Second, 0.5, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoff_CapsAtMax(t *testing.T) {
	base := 10 * time.Millisecond
	maxBackoff := 50 * time.Millisecond

	t.Run("first attempt uses base", func(t *testing.T) {
		d := ExponentialBackoff(base, maxBackoff, 0, 0)
		assert.Equal(t, base, d)
	})

	t.Run("grows exponentially", func(t *testing.T) {
		d := ExponentialBackoff(base, maxBackoff, 2, 0)
		assert.Equal(t, 40*time.Millisecond, d)
	})

	t.Run("capped by max", func(t *testing.T) {
		d := ExponentialBackoff(base, maxBackoff, 10, 0)
		assert.Equal(t, maxBackoff, d)
	})
}
