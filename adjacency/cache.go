package adjacency

import (
	"github.com/katalvlaran/hypersurface/skeleton"
)

// Cache is the precomputed adjacency of one skeleton.Meta.
// All methods are read-only and safe to call from any number of readers.
type Cache struct {
	meta    skeleton.Meta
	coords  []skeleton.Coord
	offsets map[skeleton.FaceKey]int
	start   []int // neighbors of i are arcs[start[i]:start[i+1]]
	arcs    []int
}

// New enumerates every coordinate of m and resolves its neighbors to flat indices.
// Complexity: O(#points·N).
func New(m skeleton.Meta) *Cache {
	faces := m.Faces()
	n := m.Len()
	c := &Cache{
		meta:    m,
		coords:  make([]skeleton.Coord, 0, n),
		offsets: make(map[skeleton.FaceKey]int, len(faces)),
		start:   make([]int, 1, n+1),
		arcs:    make([]int, 0, n*2*m.MaxDim()),
	}
	off := 0
	for _, f := range faces {
		c.offsets[f.Key] = off
		off += f.Size
	}

	buf := make([]skeleton.Coord, 0, 2*m.Axes())
	for coord := range m.All() {
		c.coords = append(c.coords, coord)
		buf = m.AppendNeighbors(buf[:0], coord)
		for _, nb := range buf {
			j, ok := c.Index(nb)
			if !ok {
				// Meta.Neighbors only yields valid coordinates.
				panic("adjacency: neighbor " + nb.String() + " outside " + m.String())
			}
			c.arcs = append(c.arcs, j)
		}
		c.start = append(c.start, len(c.arcs))
	}

	return c
}

// Meta returns the skeleton the cache was built from.
func (c *Cache) Meta() skeleton.Meta { return c.meta }

// Len returns the number of valid coordinates.
func (c *Cache) Len() int { return len(c.coords) }

// Arcs returns the total number of (point, neighbor) pairs.
func (c *Cache) Arcs() int { return len(c.arcs) }

// Coord returns the coordinate with flat index i. The result is shared with
// the cache and must not be modified.
func (c *Cache) Coord(i int) skeleton.Coord { return c.coords[i] }

// Index returns the flat index of coord, or false if it is not a point of the skeleton.
// Complexity: O(N).
func (c *Cache) Index(coord skeleton.Coord) (int, bool) {
	off, ok := c.offsets[skeleton.KeyOf(coord)]
	if !ok {
		return 0, false
	}
	idx, ok := c.meta.DenseIndex(coord)
	if !ok {
		return 0, false
	}

	return off + idx, true
}

// Neighbors returns the flat neighbor indices of i. The slice is shared with
// the cache and must not be modified.
func (c *Cache) Neighbors(i int) []int {
	return c.arcs[c.start[i]:c.start[i+1]:c.start[i+1]]
}

// Degree returns the number of neighbors of i.
func (c *Cache) Degree(i int) int { return c.start[i+1] - c.start[i] }

// ForEach calls fn once per coordinate, in flat index order, with the
// coordinate's flat index and its neighbor indices. The order is the same on
// every call. fn must not modify nbrs.
func (c *Cache) ForEach(fn func(i int, nbrs []int)) {
	for i := range c.coords {
		fn(i, c.arcs[c.start[i]:c.start[i+1]:c.start[i+1]])
	}
}
