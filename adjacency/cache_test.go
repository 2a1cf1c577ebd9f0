package adjacency_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/hypersurface/adjacency"
	"github.com/katalvlaran/hypersurface/skeleton"
	"github.com/katalvlaran/hypersurface/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMeta(t testing.TB, axes, side, maxDim int) skeleton.Meta {
	t.Helper()
	m, err := skeleton.New(axes, side, maxDim)
	require.NoError(t, err)

	return m
}

// TestNew_Numbering checks the flat order follows Meta.All and Index inverts Coord.
func TestNew_Numbering(t *testing.T) {
	m := mustMeta(t, 4, 3, 2)
	c := adjacency.New(m)
	require.Equal(t, m.Len(), c.Len())
	assert.Equal(t, m, c.Meta())

	i := 0
	for coord := range m.All() {
		assert.True(t, coord.Equal(c.Coord(i)))
		j, ok := c.Index(coord)
		require.True(t, ok)
		assert.Equal(t, i, j)
		i++
	}
}

// TestNeighbors_MatchMeta checks cached lists equal the lazy enumeration.
func TestNeighbors_MatchMeta(t *testing.T) {
	m := mustMeta(t, 3, 4, 2)
	c := adjacency.New(m)
	arcs := 0
	for i := 0; i < c.Len(); i++ {
		var want []int
		for nb := range m.Neighbors(c.Coord(i)) {
			j, ok := c.Index(nb)
			require.True(t, ok)
			want = append(want, j)
		}
		if diff := cmp.Diff(want, c.Neighbors(i), cmp.Comparer(func(a, b []int) bool { return slices.Equal(a, b) })); diff != "" {
			t.Errorf("neighbors of %v (-want +got):\n%s", c.Coord(i), diff)
		}
		assert.Equal(t, len(want), c.Degree(i))
		arcs += len(want)
	}
	assert.Equal(t, arcs, c.Arcs())
}

// TestNeighbors_Symmetric checks j ∈ N(i) ⇔ i ∈ N(j).
func TestNeighbors_Symmetric(t *testing.T) {
	for _, p := range [][3]int{{2, 3, 1}, {3, 2, 2}, {4, 2, 2}, {4, 1, 1}} {
		c := adjacency.New(mustMeta(t, p[0], p[1], p[2]))
		c.ForEach(func(i int, nbrs []int) {
			for _, j := range nbrs {
				assert.NotEqual(t, i, j)
				assert.Containsf(t, c.Neighbors(j), i, "%v: %d→%d not mirrored", c.Meta(), i, j)
			}
		})
	}
}

// TestForEach_Stable checks each index is visited once and in the same order.
func TestForEach_Stable(t *testing.T) {
	c := adjacency.New(mustMeta(t, 3, 3, 2))
	var first, second []int
	c.ForEach(func(i int, _ []int) { first = append(first, i) })
	c.ForEach(func(i int, _ []int) { second = append(second, i) })
	require.Len(t, first, c.Len())
	assert.Equal(t, first, second)
	for k, i := range first {
		assert.Equal(t, k, i)
	}
}

// TestIndex_Invalid rejects coordinates outside the skeleton.
func TestIndex_Invalid(t *testing.T) {
	c := adjacency.New(mustMeta(t, 3, 2, 1))
	_, ok := c.Index(skeleton.Coord{skeleton.In(0), skeleton.In(0), skeleton.Neg()})
	assert.False(t, ok)
	_, ok = c.Index(skeleton.Coord{skeleton.In(2), skeleton.Neg(), skeleton.Neg()})
	assert.False(t, ok)
}

// TestSurfaceAlignment checks flat indices address surface.Data.
func TestSurfaceAlignment(t *testing.T) {
	m := mustMeta(t, 4, 2, 2)
	c := adjacency.New(m)
	s := surface.New[int](m)
	for coord := range m.All() {
		j, _ := c.Index(coord)
		s.Set(coord, j)
	}
	for i, v := range s.Data() {
		assert.Equal(t, i, v)
	}
}

// TestCorners_Isolated covers k=0: no arcs at all.
func TestCorners_Isolated(t *testing.T) {
	c := adjacency.New(mustMeta(t, 3, 2, 0))
	assert.Equal(t, 8, c.Len())
	assert.Zero(t, c.Arcs())
	c.ForEach(func(_ int, nbrs []int) { assert.Empty(t, nbrs) })
}
