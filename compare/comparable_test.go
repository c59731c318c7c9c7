package compare_test

import (
	"testing"

	"github.com/amp-labs/assoc/compare"
	"github.com/stretchr/testify/assert"
)

// userID compares case-insensitively, to make sure Equals is really consulted.
type userID string

func (u userID) Equals(other userID) bool {
	return compare.EqualFold(string(u), string(other))
}

type point struct {
	X, Y int
}

func (p point) Equals(other point) bool {
	return p.X == other.X && p.Y == other.Y
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        userID
		b        userID
		expected bool
	}{
		{name: "identical", a: "alice", b: "alice", expected: true},
		{name: "different case", a: "Alice", b: "ALICE", expected: true},
		{name: "different ids", a: "alice", b: "bob", expected: false},
		{name: "empty ids", a: "", b: "", expected: true},
		{name: "one empty id", a: "alice", b: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, compare.Equals[userID](tt.a, tt.b))
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		eq := compare.Equal[string]()
		assert.True(t, eq("a", "a"))
		assert.False(t, eq("a", "A"))
	})

	t.Run("structs", func(t *testing.T) {
		t.Parallel()

		eq := compare.Equal[point]()
		assert.True(t, eq(point{1, 2}, point{1, 2}))
		assert.False(t, eq(point{1, 2}, point{2, 1}))
	})

	t.Run("NaN is never equal", func(t *testing.T) {
		t.Parallel()

		eq := compare.Equal[float64]()
		nan := zeroDiv()
		assert.False(t, eq(nan, nan))
		assert.True(t, eq(1.5, 1.5))
	})
}

func TestByEquals(t *testing.T) {
	t.Parallel()

	t.Run("uses the Equals method", func(t *testing.T) {
		t.Parallel()

		eq := compare.ByEquals[userID]()
		assert.True(t, eq("Bob", "bob"))
		assert.False(t, eq("bob", "rob"))
	})

	t.Run("struct keys", func(t *testing.T) {
		t.Parallel()

		eq := compare.ByEquals[point]()
		assert.True(t, eq(point{X: 3, Y: 4}, point{X: 3, Y: 4}))
		assert.False(t, eq(point{X: 3, Y: 4}, point{X: 4, Y: 3}))
	})
}

func TestEqualFold(t *testing.T) {
	t.Parallel()

	assert.True(t, compare.EqualFold("Content-Type", "content-type"))
	assert.True(t, compare.EqualFold("", ""))
	assert.False(t, compare.EqualFold("Accept", "Accept-Encoding"))
}

func zeroDiv() float64 {
	var zero float64

	return zero / zero
}
