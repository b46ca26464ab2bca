package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller on top of an owned math/rand source
type randomRoller struct {
	rng *rand.Rand
}

// NewRoller creates a roller seeded from the current time
func NewRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with its own generator for the given seed.
// Two rollers built from the same seed produce the same draw sequence.
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	return r.rng.Float64()
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	return r.rng.Intn(n)
}

// Between implements Roller.Between
func (r *randomRoller) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.rng.Intn(max-min+1)
}

// Chance implements Roller.Chance
func (r *randomRoller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}
