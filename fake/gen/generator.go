// Package gen provides a seeded random source with the draw shapes the
// dataset model needs. All draws come from one *rand.Rand, so the sequence of
// calls is part of a run's deterministic contract: the same seed and the same
// call order reproduce the same values.
package gen

import (
	"math"
	"math/rand"
	"time"
)

// Generator holds state for generating random data in certain distributions.
type Generator struct {
	r *rand.Rand
}

// NewGenerator gets a new Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		r: rand.New(rand.NewSource(seed)),
	}
}

// Rand exposes the underlying random source for callers that need raw draws,
// such as uuid.NewRandomFromReader.
func (g *Generator) Rand() *rand.Rand {
	return g.r
}

// Float64In returns a uniform random float64 in [lo, hi).
func (g *Generator) Float64In(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// IntIn returns a uniform random int in [lo, hi], inclusive on both ends.
func (g *Generator) IntIn(lo, hi int) int {
	return lo + g.r.Intn(hi-lo+1)
}

// Bool returns true with probability pTrue.
func (g *Generator) Bool(pTrue float64) bool {
	return g.r.Float64() < pTrue
}

// Weighted returns an index in [0, len(weights)) drawn with the given
// relative weights. Weights need not sum to 1.
func (g *Generator) Weighted(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	v := g.r.Float64() * total
	for i, w := range weights {
		v -= w
		if v < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Choice returns a uniform random element of items.
func (g *Generator) Choice(items []string) string {
	return items[g.r.Intn(len(items))]
}

// Sample returns k distinct indices drawn uniformly from [0, n). k is
// clamped to n rather than erroring, so callers can ask for "up to k".
func (g *Generator) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	return g.r.Perm(n)[:k]
}

// TimeIn returns a uniform random time in [start, end). It truncates to
// whole seconds so formatted timestamps round-trip cleanly.
func (g *Generator) TimeIn(start, end time.Time) time.Time {
	span := end.Unix() - start.Unix()
	if span <= 0 {
		return start
	}
	return time.Unix(start.Unix()+g.r.Int63n(span), 0).UTC()
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Round2 rounds a monetary value to cents.
func Round2(v float64) float64 {
	return Round(v, 2)
}
