package wrand

import (
	"math"
	"math/rand"
)

// RNG is a source of uniform floats in [0, 1). *rand.Rand implements it.
type RNG interface {
	Float64() float64
}

type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }

// Global uses the auto-seeded math/rand source.
var Global RNG = globalRNG{}

type Wrand[T any] []WrandItem[T]

type WrandItem[T any] struct {
	Weight float64
	Item   T
}

// Total returns the sum of all weights.
func (w Wrand[T]) Total() float64 {
	var sum float64
	for _, item := range w {
		sum += item.Weight
	}
	return sum
}

// Pick draws an item using the global source. Panics on empty list.
func (w Wrand[T]) Pick() T {
	item, _, ok := w.PickWith(Global)
	if !ok {
		return w[len(w)-1].Item
	}
	return item
}

// PickWith draws a single value r in [0, total) and walks the list in order,
// subtracting each weight from r until r falls inside an item's weight.
// Returns the item and its index. ok is false for an empty list or when
// the total weight isn't positive.
//
// If rounding makes the walk run past the end, the last item wins.
func (w Wrand[T]) PickWith(rng RNG) (item T, index int, ok bool) {
	if len(w) == 0 {
		return item, -1, false
	}

	sum := w.Total()
	if !(sum > 0) || math.IsInf(sum, 0) {
		return item, -1, false
	}

	r := rng.Float64() * sum

	for i, it := range w {
		if r < it.Weight {
			return it.Item, i, true
		}
		r -= it.Weight
	}

	last := len(w) - 1
	return w[last].Item, last, true
}
