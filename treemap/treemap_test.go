package treemap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree fails the test if m breaks a red-black or ordering property.
func checkTree[V any](t *testing.T, m *Map[int, V]) {
	t.Helper()

	if m.root == nil {
		assert.Zero(t, m.Len())

		return
	}

	assert.Equal(t, black, m.root.color, "root must be black")
	assert.Nil(t, m.root.parent)

	count := 0

	var blackHeight func(n *node[int, V]) int

	blackHeight = func(n *node[int, V]) int {
		if n == nil {
			return 1
		}

		count++

		if n.left != nil {
			assert.Same(t, n, n.left.parent)
			assert.Less(t, n.left.key, n.key)
		}

		if n.right != nil {
			assert.Same(t, n, n.right.parent)
			assert.Greater(t, n.right.key, n.key)
		}

		if n.color == red {
			assert.False(t, isRed(n.left) || isRed(n.right), "red node %d has a red child", n.key)
		}

		lh, rh := blackHeight(n.left), blackHeight(n.right)
		assert.Equal(t, lh, rh, "black height differs under %d", n.key)

		if n.color == black {
			return lh + 1
		}

		return lh
	}

	blackHeight(m.root)
	assert.Equal(t, count, m.Len())
}

func TestMap_Empty(t *testing.T) {
	t.Parallel()

	var m Map[int, string]

	v, ok := m.Get(1)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Nil(t, m.GetMut(1))

	_, ok = m.Remove(1)
	assert.False(t, ok)
	assert.Zero(t, m.Len())
	checkTree(t, &m)
}

func TestMap_Insert(t *testing.T) {
	t.Parallel()

	var m Map[int, string]

	_, existed := m.Insert(2, "b")
	assert.False(t, existed)

	_, existed = m.Insert(1, "a")
	assert.False(t, existed)

	old, existed := m.Insert(2, "B")
	assert.True(t, existed)
	assert.Equal(t, "b", old)

	v, ok := m.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "B", v)
	assert.Equal(t, 2, m.Len())
	checkTree(t, &m)
}

func TestMap_GetOrInsert(t *testing.T) {
	t.Parallel()

	var m Map[string, int]

	p := m.GetOrInsert("x", 1)
	require.NotNil(t, p)
	assert.Equal(t, 1, *p)

	*p = 5

	assert.Equal(t, 5, *m.GetOrInsert("x", 9))
	assert.Equal(t, 1, m.Len())

	*m.GetMut("x")++

	v, _ := m.Get("x")
	assert.Equal(t, 6, v)
}

func TestMap_Ordered(t *testing.T) {
	t.Parallel()

	var m Map[int, int]

	for _, k := range []int{5, 3, 9, 1, 4, 7, 2, 8, 6} {
		m.Insert(k, k*10)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(m.Keys()))

	var values []int
	for k, v := range m.All() {
		assert.Equal(t, k*10, v)

		values = append(values, v)

		if k == 3 {
			break
		}
	}

	assert.Equal(t, []int{10, 20, 30}, values)
}

func TestMap_InsertRemoveBalanced(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec

	var m Map[int, int]

	want := map[int]int{}

	for range 2000 {
		k := rng.IntN(300)

		if rng.IntN(3) == 0 {
			got, ok := m.Remove(k)
			wantV, wantOK := want[k]
			assert.Equal(t, wantOK, ok)
			assert.Equal(t, wantV, got)
			delete(want, k)
		} else {
			m.Insert(k, -k)
			want[k] = -k
		}
	}

	checkTree(t, &m)
	assert.Equal(t, len(want), m.Len())

	for k, v := range want {
		got, ok := m.Get(k)
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}

	for k := range want {
		m.Remove(k)
	}

	checkTree(t, &m)
	assert.Zero(t, m.Len())
}

func TestMap_AscendingAndDescending(t *testing.T) {
	t.Parallel()

	var m Map[int, struct{}]

	for i := range 100 {
		m.Insert(i, struct{}{})
		checkTree(t, &m)
	}

	for i := 99; i >= 0; i-- {
		_, ok := m.Remove(i)
		require.True(t, ok)
		checkTree(t, &m)
	}
}
