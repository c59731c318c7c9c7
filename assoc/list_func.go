package assoc

import (
	"iter"
	"reflect"
	"slices"

	"github.com/amp-labs/assoc/compare"
)

// ListFunc is an association list whose keys are matched with an EqualFunc
// instead of ==. Use it for keys that are not comparable (slices, maps,
// structs containing them) or that need custom equality, such as
// case-insensitive strings or types implementing compare.Comparable.
//
// ListFunc wraps a []Pair[K, V]; Pairs exposes it. The zero value is an empty
// list that matches keys with reflect.DeepEqual.
type ListFunc[K any, V any] struct {
	pairs []Pair[K, V]
	equal EqualFunc[K]
}

// NewListFunc creates a ListFunc that matches keys with equal. The given
// pairs become the initial contents of the list; the slice is adopted, not
// copied. A nil equal falls back to reflect.DeepEqual.
//
// Example:
//
//	headers := assoc.NewListFunc[string, string](compare.EqualFold)
//	headers.Insert("Content-Type", "text/plain")
//	v, _ := headers.Get("content-type") // "text/plain"
func NewListFunc[K any, V any](equal EqualFunc[K], pairs ...Pair[K, V]) *ListFunc[K, V] {
	if equal == nil {
		equal = deepEqual[K]
	}

	return &ListFunc[K, V]{
		pairs: pairs,
		equal: equal,
	}
}

func deepEqual[K any](a, b K) bool {
	return reflect.DeepEqual(a, b)
}

// NewListEquals creates a ListFunc for keys that implement compare.Comparable.
func NewListEquals[K compare.Comparable[K], V any](pairs ...Pair[K, V]) *ListFunc[K, V] {
	return NewListFunc[K, V](compare.ByEquals[K](), pairs...)
}

// Pairs returns the underlying slice. It is shared with the list, not copied.
func (l *ListFunc[K, V]) Pairs() []Pair[K, V] {
	return l.pairs
}

// Len returns the number of pairs in the list, duplicate keys included.
func (l *ListFunc[K, V]) Len() int {
	return len(l.pairs)
}

// Index returns the position of the first pair whose key equals key,
// or -1 if there is none.
func (l *ListFunc[K, V]) Index(key K) int {
	equal := l.eq()

	return slices.IndexFunc(l.pairs, func(p Pair[K, V]) bool {
		return equal(p.Key, key)
	})
}

func (l *ListFunc[K, V]) eq() EqualFunc[K] {
	if l.equal == nil {
		return deepEqual[K]
	}

	return l.equal
}

// ContainsKey reports whether any pair has the given key.
func (l *ListFunc[K, V]) ContainsKey(key K) bool {
	return l.Index(key) >= 0
}

// Get returns the value of the first pair whose key equals key.
// If there is no such pair, it returns the zero value and false.
func (l *ListFunc[K, V]) Get(key K) (V, bool) {
	return lookup(l.pairs, l.Index(key))
}

// GetMut returns a pointer to the value of the first pair whose key equals
// key, or nil if there is none.
func (l *ListFunc[K, V]) GetMut(key K) *V {
	index := l.Index(key)
	if index < 0 {
		return nil
	}

	return valueAt(l.pairs, index)
}

// GetPair returns the first pair whose key equals key. The returned key is
// the stored one, which may differ from key under custom equality.
func (l *ListFunc[K, V]) GetPair(key K) (Pair[K, V], bool) {
	index := l.Index(key)
	if index < 0 {
		return Pair[K, V]{}, false
	}

	return l.pairs[index], true
}

// Insert sets the value for key. An existing pair keeps its stored key and
// position and gets the new value; the previous value is returned along with
// true. Otherwise (key, value) is appended.
func (l *ListFunc[K, V]) Insert(key K, value V) (V, bool) {
	return replaceOrAppend(&l.pairs, l.Index(key), key, value)
}

// Remove deletes the first pair whose key equals key and returns its value.
// The remaining pairs keep their relative order.
func (l *ListFunc[K, V]) Remove(key K) (V, bool) {
	p, ok := l.RemovePair(key)

	return p.Value, ok
}

// RemovePair is like Remove but returns the removed pair.
func (l *ListFunc[K, V]) RemovePair(key K) (Pair[K, V], bool) {
	return removeFound(&l.pairs, l.Index(key))
}

// Retain keeps only the pairs for which keep returns true, preserving order.
func (l *ListFunc[K, V]) Retain(keep func(key K, value V) bool) {
	retain(&l.pairs, keep)
}

// Entry returns the entry for key; see List.Entry.
func (l *ListFunc[K, V]) Entry(key K) Entry[K, V] {
	return newEntry(&l.pairs, key, l.Index(key))
}

// All returns an iterator over the key-value pairs in list order.
func (l *ListFunc[K, V]) All() iter.Seq2[K, V] {
	return seqAll(l.pairs)
}

// Keys returns an iterator over the keys in list order.
func (l *ListFunc[K, V]) Keys() iter.Seq[K] {
	return seqKeys(l.pairs)
}

// Values returns an iterator over the values in list order.
func (l *ListFunc[K, V]) Values() iter.Seq[V] {
	return seqValues(l.pairs)
}

// Clone returns a shallow copy of the list sharing the same equality function.
func (l *ListFunc[K, V]) Clone() *ListFunc[K, V] {
	return &ListFunc[K, V]{
		pairs: slices.Clone(l.pairs),
		equal: l.equal,
	}
}
