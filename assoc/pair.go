package assoc

import (
	"iter"
	"slices"
)

// Pair is a single key-value element of an association list. The key
// carries no hashing or ordering requirements.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// NewPair creates a Pair from a key and a value.
func NewPair[K any, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// EqualFunc reports whether two keys are equal. It is expected to be
// symmetric, but nothing breaks if it is not: lookups always call it as
// equal(stored, requested).
type EqualFunc[K any] func(a, b K) bool

// valueAt returns a pointer to the value stored at index.
func valueAt[K any, V any](pairs []Pair[K, V], index int) *V {
	return &pairs[index].Value
}

// lookup returns the value at index, or the zero value when index is -1.
func lookup[K any, V any](pairs []Pair[K, V], index int) (V, bool) {
	if index < 0 {
		var zero V

		return zero, false
	}

	return pairs[index].Value, true
}

// replaceOrAppend overwrites the value at index, or appends a new pair when
// index is -1. It returns the replaced value, if there was one.
func replaceOrAppend[K any, V any](pairs *[]Pair[K, V], index int, key K, value V) (V, bool) {
	if index < 0 {
		*pairs = append(*pairs, Pair[K, V]{Key: key, Value: value})

		var zero V

		return zero, false
	}

	old := (*pairs)[index].Value
	(*pairs)[index].Value = value

	return old, true
}

// removeAt deletes the pair at index and shifts the remaining pairs left to
// close the gap.
func removeAt[K any, V any](pairs *[]Pair[K, V], index int) Pair[K, V] {
	removed := (*pairs)[index]
	*pairs = slices.Delete(*pairs, index, index+1)

	return removed
}

// removeFound is removeAt for a possibly absent index.
func removeFound[K any, V any](pairs *[]Pair[K, V], index int) (Pair[K, V], bool) {
	if index < 0 {
		return Pair[K, V]{}, false
	}

	return removeAt(pairs, index), true
}

func retain[K any, V any](pairs *[]Pair[K, V], keep func(key K, value V) bool) {
	*pairs = slices.DeleteFunc(*pairs, func(p Pair[K, V]) bool {
		return !keep(p.Key, p.Value)
	})
}

func seqAll[K any, V any](pairs []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func seqKeys[K any, V any](pairs []Pair[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range pairs {
			if !yield(p.Key) {
				return
			}
		}
	}
}

func seqValues[K any, V any](pairs []Pair[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range pairs {
			if !yield(p.Value) {
				return
			}
		}
	}
}
