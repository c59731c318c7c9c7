// Package treemap provides Map, an ordered map backed by a red-black tree.
// It is the sorted-map baseline that association lists are measured against.
//
// The tree keeps the usual red-black properties:
//  1. Every node is either red or black
//  2. The root is black
//  3. Nil leaves are black
//  4. Red nodes have no red children
//  5. Every root-to-leaf path has the same number of black nodes
//
// so Get, Insert and Remove are O(log n).
package treemap

import (
	"cmp"
	"iter"
)

// color of a node. Black is true so that a fresh root can be colored explicitly
// while new inner nodes start red.
type color bool

const black, red color = true, false

type node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// Map is an ordered map from K to V. The zero value is an empty map ready to
// use. A Map must not be copied after first use.
type Map[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// find returns the node holding key, or the node it would hang from and the
// comparison result against it (-1 left, 1 right).
func (m *Map[K, V]) find(key K) (n *node[K, V], found bool, dir int) {
	var parent *node[K, V]

	for cur := m.root; cur != nil; {
		parent = cur

		switch dir = cmp.Compare(key, cur.key); {
		case dir < 0:
			cur = cur.left
		case dir > 0:
			cur = cur.right
		default:
			return cur, true, 0
		}
	}

	return parent, false, dir
}

// Get returns the value for key, or the zero value and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n, found, _ := m.find(key); found {
		return n.value, true
	}

	var zero V

	return zero, false
}

// GetMut returns a pointer to the value for key, or nil. The pointer stays
// valid until key is removed.
func (m *Map[K, V]) GetMut(key K) *V {
	if n, found, _ := m.find(key); found {
		return &n.value
	}

	return nil
}

// Insert sets the value for key and returns the previous value and true if
// the key was already present.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	n, found := m.slot(key, value)
	if !found {
		var zero V

		return zero, false
	}

	old := n.value
	n.value = value

	return old, true
}

// GetOrInsert returns a pointer to the value for key, inserting value first
// if the key is absent.
func (m *Map[K, V]) GetOrInsert(key K, value V) *V {
	n, _ := m.slot(key, value)

	return &n.value
}

// slot returns the node for key, creating it with value when absent.
func (m *Map[K, V]) slot(key K, value V) (*node[K, V], bool) {
	parent, found, dir := m.find(key)
	if found {
		return parent, true
	}

	n := &node[K, V]{key: key, value: value, color: red, parent: parent}

	switch {
	case parent == nil:
		m.root = n
	case dir < 0:
		parent.left = n
	default:
		parent.right = n
	}

	m.size++
	m.fixupInsert(n)

	return n, false
}

// Remove deletes key and returns its value and true, or the zero value and
// false if the key is absent.
//
//nolint:varnamelen
func (m *Map[K, V]) Remove(key K) (V, bool) {
	z, found, _ := m.find(key)
	if !found {
		var zero V

		return zero, false
	}

	removed := z.value

	y := z
	yColor := y.color

	var x, xParent *node[K, V]

	switch {
	case z.left == nil:
		x, xParent = z.right, z.parent
		m.transplant(z, z.right)
	case z.right == nil:
		x, xParent = z.left, z.parent
		m.transplant(z, z.left)
	default:
		y = minimum(z.right)
		yColor = y.color
		x = y.right

		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			m.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}

		m.transplant(z, y)

		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	m.size--

	if yColor == black {
		m.fixupRemove(x, xParent)
	}

	return removed, true
}

// All returns an iterator over the pairs in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(m.root, yield)
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(m.root, func(k K, _ V) bool { return yield(k) })
	}
}

func walk[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, yield) && yield(n.key, n.value) && walk(n.right, yield)
}

func minimum[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func isRed[K cmp.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

// transplant puts the subtree v in the place of u.
func (m *Map[K, V]) transplant(u, v *node[K, V]) {
	switch {
	case u.parent == nil:
		m.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	if v != nil {
		v.parent = u.parent
	}
}

// rotateLeft:
//
//	  x                y
//	 / \              / \
//	A   y      =>    x   C
//	   / \          / \
//	  B   C        A   B
//
//nolint:varnamelen
func (m *Map[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left

	if y.left != nil {
		y.left.parent = x
	}

	m.transplant(x, y)

	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft.
//
//nolint:varnamelen
func (m *Map[K, V]) rotateRight(y *node[K, V]) {
	x := y.left
	y.left = x.right

	if x.right != nil {
		x.right.parent = y
	}

	m.transplant(y, x)

	x.right = y
	y.parent = x
}

// fixupInsert restores property 4 after z was attached as a red leaf.
//
//nolint:varnamelen,dupl
func (m *Map[K, V]) fixupInsert(z *node[K, V]) {
	for isRed(z.parent) {
		// A red parent is never the root, so the grandparent exists.
		g := z.parent.parent

		if z.parent == g.left {
			if u := g.right; isRed(u) {
				z.parent.color = black
				u.color = black
				g.color = red
				z = g

				continue
			}

			if z == z.parent.right {
				z = z.parent
				m.rotateLeft(z)
			}

			z.parent.color = black
			g.color = red
			m.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				z.parent.color = black
				u.color = black
				g.color = red
				z = g

				continue
			}

			if z == z.parent.left {
				z = z.parent
				m.rotateRight(z)
			}

			z.parent.color = black
			g.color = red
			m.rotateLeft(g)
		}
	}

	m.root.color = black
}

// fixupRemove restores property 5 after a black node was unlinked. x may be
// nil, so its parent is passed alongside.
//
//nolint:varnamelen,dupl,cyclop
func (m *Map[K, V]) fixupRemove(x, parent *node[K, V]) {
	for x != m.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, parent = parent, parent.parent

				continue
			}

			if !isRed(w.right) {
				w.left.color = black
				w.color = red
				m.rotateRight(w)
				w = parent.right
			}

			w.color = parent.color
			parent.color = black
			w.right.color = black
			m.rotateLeft(parent)
		} else {
			w := parent.left
			if isRed(w) {
				w.color = black
				parent.color = red
				m.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x, parent = parent, parent.parent

				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				m.rotateLeft(w)
				w = parent.left
			}

			w.color = parent.color
			parent.color = black
			w.left.color = black
			m.rotateRight(parent)
		}

		x = m.root
	}

	if x != nil {
		x.color = black
	}
}
