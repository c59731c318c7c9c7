package assoc

// Entry is a view of the slot for a single key in an association list. The
// slot is either occupied (a pair with the key exists) or vacant.
//
// An Entry is returned by List.Entry and ListFunc.Entry. It is meant to be
// consumed right away by one of its Or* methods, optionally after
// AndModify; it must not be kept across other changes to the list. A stale
// vacant Entry still appends, which can leave the key in the list twice.
type Entry[K any, V any] struct {
	pairs *[]Pair[K, V]
	key   K
	index int // -1 when vacant
}

func newEntry[K any, V any](pairs *[]Pair[K, V], key K, index int) Entry[K, V] {
	return Entry[K, V]{pairs: pairs, key: key, index: index}
}

// Key returns the key the entry was requested with.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Occupied returns the occupied view of the entry, if a pair with the key
// exists.
func (e Entry[K, V]) Occupied() (OccupiedEntry[K, V], bool) {
	if e.index < 0 {
		return OccupiedEntry[K, V]{}, false
	}

	return OccupiedEntry[K, V]{pairs: e.pairs, key: e.key, index: e.index}, true
}

// Vacant returns the vacant view of the entry, if no pair with the key exists.
func (e Entry[K, V]) Vacant() (VacantEntry[K, V], bool) {
	if e.index >= 0 {
		return VacantEntry[K, V]{}, false
	}

	return VacantEntry[K, V]{pairs: e.pairs, key: e.key}, true
}

// OrInsert ensures the entry holds a value and returns a pointer to it.
//
// If the entry is occupied, the existing value is returned untouched and
// value is discarded. If it is vacant, the pair (key, value) is appended to
// the end of the list and a pointer to the stored value is returned.
//
// Example:
//
//	list := assoc.List[string, int]{{"a", 1}, {"b", 2}}
//	list.Entry("c").OrInsert(3)      // list is now [a:1 b:2 c:3]
//	*list.Entry("c").OrInsert(4)     // 3, list unchanged
func (e Entry[K, V]) OrInsert(value V) *V {
	if e.index >= 0 {
		return valueAt(*e.pairs, e.index)
	}

	return VacantEntry[K, V]{pairs: e.pairs, key: e.key}.Insert(value)
}

// OrInsertWith is like OrInsert, but the value to insert is computed by
// calling f. f is only called when the entry is vacant.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	if e.index >= 0 {
		return valueAt(*e.pairs, e.index)
	}

	return e.OrInsert(f())
}

// OrInsertWithKey is like OrInsertWith, but f receives the entry's key so the
// value can be derived from it.
func (e Entry[K, V]) OrInsertWithKey(f func(key K) V) *V {
	if e.index >= 0 {
		return valueAt(*e.pairs, e.index)
	}

	return e.OrInsert(f(e.key))
}

// OrDefault is OrInsert with the zero value of V.
func (e Entry[K, V]) OrDefault() *V {
	var zero V

	return e.OrInsert(zero)
}

// AndModify calls f with a pointer to the existing value if the entry is
// occupied, then returns the entry so an Or* method can follow. It does
// nothing for a vacant entry.
//
// Example:
//
//	list.Entry("hits").AndModify(func(v *int) { *v++ }).OrInsert(1)
func (e Entry[K, V]) AndModify(f func(value *V)) Entry[K, V] {
	if e.index >= 0 {
		f(valueAt(*e.pairs, e.index))
	}

	return e
}

// OccupiedEntry is the view of an entry whose key is present in the list.
type OccupiedEntry[K any, V any] struct {
	pairs *[]Pair[K, V]
	key   K
	index int
}

// Key returns the key the entry was requested with. Use Pair to get the key
// as it is stored in the list.
func (o OccupiedEntry[K, V]) Key() K {
	return o.key
}

// Index returns the position of the pair in the list.
func (o OccupiedEntry[K, V]) Index() int {
	return o.index
}

// Pair returns the stored pair.
func (o OccupiedEntry[K, V]) Pair() Pair[K, V] {
	return (*o.pairs)[o.index]
}

// Get returns the stored value.
func (o OccupiedEntry[K, V]) Get() V {
	return (*o.pairs)[o.index].Value
}

// GetMut returns a pointer to the stored value.
func (o OccupiedEntry[K, V]) GetMut() *V {
	return valueAt(*o.pairs, o.index)
}

// Insert replaces the stored value and returns the old one.
func (o OccupiedEntry[K, V]) Insert(value V) V {
	old, _ := replaceOrAppend(o.pairs, o.index, o.key, value)

	return old
}

// Remove takes the pair out of the list and returns its value. Pairs after it
// shift one position towards the front.
func (o OccupiedEntry[K, V]) Remove() V {
	return o.RemovePair().Value
}

// RemovePair takes the pair out of the list and returns it.
func (o OccupiedEntry[K, V]) RemovePair() Pair[K, V] {
	return removeAt(o.pairs, o.index)
}

// VacantEntry is the view of an entry whose key is absent from the list.
type VacantEntry[K any, V any] struct {
	pairs *[]Pair[K, V]
	key   K
}

// Key returns the key that Insert would store.
func (v VacantEntry[K, V]) Key() K {
	return v.key
}

// Insert appends (key, value) to the end of the list and returns a pointer
// to the stored value. The pointer is taken after the append, so it refers to
// the list's current backing array.
func (v VacantEntry[K, V]) Insert(value V) *V {
	*v.pairs = append(*v.pairs, Pair[K, V]{Key: v.key, Value: value})

	return valueAt(*v.pairs, len(*v.pairs)-1)
}
