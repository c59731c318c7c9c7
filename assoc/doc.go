// Package assoc treats a slice of key-value pairs as an associative array.
//
// A List is a plain []Pair[K, V] with map-like operations layered on top:
// Get, GetMut, Insert, Remove and an Entry API for insert-if-absent. The
// caller owns the slice and every operation works on it in place, so the
// insertion order of the pairs is always the order observed when ranging
// over the list.
//
// Lookups are linear scans that compare keys for equality, nothing more. Keys
// do not need to be hashable or ordered. List requires Go's comparable
// constraint; ListFunc accepts any key type together with an EqualFunc, which
// covers slices, maps and types that implement compare.Comparable.
//
// Key uniqueness is not enforced by the container. Pairs appended directly to
// the slice may repeat a key; every lookup resolves to the first matching
// pair in sequence order.
//
// Example:
//
//	list := assoc.List[string, int]{{"a", 1}, {"b", 2}}
//	list.Entry("c").OrInsert(3)          // appends ("c", 3)
//	v, ok := list.Get("c")               // 3, true
//	*list.Entry("c").OrInsert(4) == 3    // existing value wins, 4 is discarded
//	list.Entry("a").AndModify(func(v *int) { *v++ }).OrInsert(9)
//
// # Performance
//
// Every keyed operation costs O(n) equality checks. For a few dozen entries a
// slice is typically faster to grow than a map and uses less memory; past
// that the scans start to dominate. The bench package measures this
// trade-off.
//
// # Equality
//
// A key that is not equal to itself never matches. With float keys this
// means NaN is always vacant:
//
//	list := assoc.List[float64, string]{{1.0, "a"}}
//	list.Entry(math.NaN()).OrInsert("b")
//	list.Entry(math.NaN()).OrInsert("c") // list now holds three pairs
//
// # Pointer validity
//
// GetMut and the Entry methods return pointers into the list's backing
// array. A pointer stays valid until the list is next appended to or has a
// pair removed; after that it may refer to a stale copy. The same holds for
// an Entry: use it for a single call, right after obtaining it.
//
// Lists are not safe for concurrent use. Concurrent readers are fine as long
// as nothing mutates the list at the same time.
package assoc
