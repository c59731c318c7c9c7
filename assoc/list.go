package assoc

import (
	"iter"
	"slices"
)

// List is an association list whose keys are matched with Go's == operator.
//
// List is a named slice type, so it can be built with a composite literal,
// converted from an existing []Pair[K, V], appended to and ranged over like
// any other slice. The methods below add map-like access on top of it.
// Methods that may grow or shrink the list use a pointer receiver.
//
// The zero value (a nil List) is an empty list ready to use.
//
//nolint:recvcheck
type List[K comparable, V any] []Pair[K, V]

// Collect builds a List from an iterator, appending every pair in the order
// yielded. Repeated keys are kept; lookups will resolve to the first one.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) List[K, V] {
	var out List[K, V]

	for k, v := range seq {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}

	return out
}

// Len returns the number of pairs in the list, duplicate keys included.
func (l List[K, V]) Len() int {
	return len(l)
}

// Index returns the position of the first pair whose key equals key,
// or -1 if there is none.
func (l List[K, V]) Index(key K) int {
	for i := range l {
		if l[i].Key == key {
			return i
		}
	}

	return -1
}

// ContainsKey reports whether any pair has the given key.
func (l List[K, V]) ContainsKey(key K) bool {
	return l.Index(key) >= 0
}

// Get returns the value of the first pair whose key equals key.
// If there is no such pair, it returns the zero value and false.
func (l List[K, V]) Get(key K) (V, bool) {
	return lookup[K, V](l, l.Index(key))
}

// GetMut returns a pointer to the value of the first pair whose key equals
// key, or nil if there is none. Writing through the pointer updates the value
// in place; the pair keeps its key and position.
func (l List[K, V]) GetMut(key K) *V {
	index := l.Index(key)
	if index < 0 {
		return nil
	}

	return valueAt[K, V](l, index)
}

// GetPair returns the first pair whose key equals key.
func (l List[K, V]) GetPair(key K) (Pair[K, V], bool) {
	index := l.Index(key)
	if index < 0 {
		return Pair[K, V]{}, false
	}

	return l[index], true
}

// Insert sets the value for key. If a pair with the key exists, its value is
// replaced in place and the previous value is returned along with true.
// Otherwise a new pair is appended and Insert returns the zero value and false.
func (l *List[K, V]) Insert(key K, value V) (V, bool) {
	return replaceOrAppend((*[]Pair[K, V])(l), l.Index(key), key, value)
}

// Remove deletes the first pair whose key equals key and returns its value.
// The remaining pairs keep their relative order.
func (l *List[K, V]) Remove(key K) (V, bool) {
	p, ok := l.RemovePair(key)

	return p.Value, ok
}

// RemovePair is like Remove but returns the removed pair, including the key
// as it was stored.
func (l *List[K, V]) RemovePair(key K) (Pair[K, V], bool) {
	return removeFound((*[]Pair[K, V])(l), l.Index(key))
}

// Retain keeps only the pairs for which keep returns true, preserving order.
func (l *List[K, V]) Retain(keep func(key K, value V) bool) {
	retain((*[]Pair[K, V])(l), keep)
}

// Entry returns the entry for key, which is occupied if a pair with the key
// exists (the first one, if several do) and vacant otherwise.
//
// Example:
//
//	counts := assoc.List[string, int]{}
//	for _, word := range words {
//	    *counts.Entry(word).OrInsert(0)++
//	}
func (l *List[K, V]) Entry(key K) Entry[K, V] {
	return newEntry((*[]Pair[K, V])(l), key, l.Index(key))
}

// All returns an iterator over the key-value pairs in list order.
func (l List[K, V]) All() iter.Seq2[K, V] {
	return seqAll[K, V](l)
}

// Keys returns an iterator over the keys in list order.
func (l List[K, V]) Keys() iter.Seq[K] {
	return seqKeys[K, V](l)
}

// Values returns an iterator over the values in list order.
func (l List[K, V]) Values() iter.Seq[V] {
	return seqValues[K, V](l)
}

// Clone returns a shallow copy of the list.
func (l List[K, V]) Clone() List[K, V] {
	return slices.Clone(l)
}
