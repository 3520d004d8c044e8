// Package procrand provides a small deterministic PRNG for procedural
// generation. It has no dependencies on ebitengine, donburi, or resolv.
// The generator is PCG-XSH-RR: the same seed always yields
// the same sequence on every platform, which is what makes level seeds
// shareable.
package procrand

import "math/bits"

const (
	multiplier       = 6364136223846793005
	defaultIncrement = 1442695040888963407
)

// Rng is a PCG-XSH-RR generator. The zero value is not usable; construct
// with New or NewStream.
type Rng struct {
	state uint64
	inc   uint64
}

// New creates a generator seeded with the given value on the default stream.
func New(seed uint64) *Rng {
	return NewStream(seed, defaultIncrement>>1)
}

// NewStream creates a generator with an explicit stream selector. Two
// generators with the same seed but different streams produce independent
// sequences.
func NewStream(seed, stream uint64) *Rng {
	r := &Rng{inc: stream<<1 | 1}
	r.state = r.inc + seed
	r.Uint32()
	return r
}

// Fork derives a new independent generator from the current state. The
// parent advances by one step, so repeated forks differ.
func (r *Rng) Fork() *Rng {
	return NewStream(r.Uint64(), r.Uint64()|1)
}

// Uint32 returns the next 32 random bits.
func (r *Rng) Uint32() uint32 {
	old := r.state
	r.state = old*multiplier + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint(old >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}

// Uint64 returns the next 64 random bits.
func (r *Rng) Uint64() uint64 {
	return uint64(r.Uint32())<<32 | uint64(r.Uint32())
}

// Float64 returns a value in [0, 1).
func (r *Rng) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Range returns a value in [min, max).
func (r *Rng) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntN returns a value in [0, n) without modulo bias (Lemire's method).
// It panics if n <= 0.
func (r *Rng) IntN(n int) int {
	if n <= 0 {
		panic("procrand: IntN with non-positive n")
	}
	bound := uint32(n)
	threshold := -bound % bound
	for {
		v := r.Uint32()
		if v >= threshold {
			return int(v % bound)
		}
	}
}

// RangeInt returns a value in [min, max). It panics if max <= min.
func (r *Rng) RangeInt(min, max int) int {
	return min + r.IntN(max-min)
}

// Chance returns true with probability p. p <= 0 never hits, p >= 1 always.
func (r *Rng) Chance(p float64) bool {
	return r.Float64() < p
}

// Choose returns a uniformly random element of items, or false when empty.
func Choose[T any](r *Rng, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.IntN(len(items))], true
}

// Weighted pairs an item with a selection weight for WeightedChoose.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedChoose picks an element with probability proportional to its
// weight. Non-positive weights are skipped. Weights are accumulated with
// Kahan summation so large weight lists stay deterministic across
// evaluation orders that would otherwise lose precision.
func WeightedChoose[T any](r *Rng, items []Weighted[T]) (T, bool) {
	var zero T
	total, comp := 0.0, 0.0
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		y := it.Weight - comp
		t := total + y
		comp = (t - total) - y
		total = t
	}
	if total <= 0 {
		return zero, false
	}
	target := r.Float64() * total
	acc := 0.0
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		acc += it.Weight
		if target < acc {
			return it.Item, true
		}
	}
	// Floating point left target at the far edge; return the last weighted item.
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return items[i].Item, true
		}
	}
	return zero, false
}
