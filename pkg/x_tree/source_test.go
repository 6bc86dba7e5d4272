package x_tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptSource replays fixed answers. Once a script runs out it keeps
// returning the zero answer.
type scriptSource struct {
	ints  []int
	coins []bool
}

func (s *scriptSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptSource) Coin() bool {
	if len(s.coins) == 0 {
		return false
	}
	v := s.coins[0]
	s.coins = s.coins[1:]
	return v
}

func TestNewSource_Deterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(101), b.Intn(101))
		assert.Equal(t, a.Coin(), b.Coin())
	}
}

func TestNewSource_Bounds(t *testing.T) {
	src := NewSource(7)
	heads := 0
	for i := 0; i < 1000; i++ {
		v := src.Intn(101)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 101)
		if src.Coin() {
			heads++
		}
	}
	assert.Greater(t, heads, 0)
	assert.Less(t, heads, 1000)
}
