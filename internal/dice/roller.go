package dice

// Roller provides the random draws the combat and generation engines need.
// This allows us to inject deterministic implementations for testing, and to
// give each seeded call its own private stream so seeds never leak between
// concurrent callers.
type Roller interface {
	// Float64 returns a uniform draw in [0.0, 1.0)
	Float64() float64

	// Intn returns a uniform draw in [0, n)
	Intn(n int) int

	// Between returns a uniform draw in [min, max], inclusive on both ends
	Between(min, max int) int

	// Chance returns true with probability p (clamped to [0, 1])
	Chance(p float64) bool
}
