// Package rng is the single shared random stream of a world. Every call site
// draws from the same Random so a fixed seed replays a whole game.
package rng

import "math/rand"

// Random wraps one seeded generator.
type Random struct {
	r *rand.Rand
}

// New returns a Random seeded with seed.
func New(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Range returns a value in [min, max). It returns min when max <= min.
func (g *Random) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min)
}

// InclusiveRange returns a value in [min, max].
func (g *Random) InclusiveRange(min, max int) int {
	return g.Range(min, max+1)
}

// RollDie returns a value in [1, n].
func (g *Random) RollDie(n int) int {
	return g.Range(1, n+1)
}

// FlipCoin returns true half the time.
func (g *Random) FlipCoin() bool {
	return g.Range(0, 2) == 1
}

// Rand exposes the underlying generator for code that needs *rand.Rand
// directly, such as map generation. It shares the same stream.
func (g *Random) Rand() *rand.Rand {
	return g.r
}
