package x_tree

import (
	"math/rand"
	"time"
)

// Source supplies the randomness used while building a tree.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
	// Coin returns a fair boolean.
	Coin() bool
}

type randSource struct {
	r *rand.Rand
}

// NewSource returns a math/rand backed Source. A zero seed is replaced by the
// current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Intn(n int) int { return s.r.Intn(n) }
func (s *randSource) Coin() bool     { return s.r.Intn(2) == 0 }
