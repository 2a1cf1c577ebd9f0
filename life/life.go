// Package life runs Conway-style cellular automata on a k-skeleton, where a
// cell's neighborhood is its skeleton adjacency (at most 2N cells).
package life

import (
	"math/rand/v2"

	"github.com/katalvlaran/hypersurface/adjacency"
	"github.com/katalvlaran/hypersurface/skeleton"
	"github.com/katalvlaran/hypersurface/surface"
)

// Rule holds birth and survival neighbor counts as bit sets: bit n set in
// Birth means a dead cell with n live neighbors becomes alive.
type Rule struct {
	Birth   uint64
	Survive uint64
}

// Conway is B3/S23.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Life is a double-buffered automaton.
type Life struct {
	cache *adjacency.Cache
	rule  Rule
	cur   *surface.Surface[uint8]
	nxt   *surface.Surface[uint8]
	gen   int
}

// New returns an all-dead automaton on m.
func New(m skeleton.Meta, rule Rule) *Life {
	return &Life{
		cache: adjacency.New(m),
		rule:  rule,
		cur:   surface.New[uint8](m),
		nxt:   surface.New[uint8](m),
	}
}

// Cells exposes the current generation; 1 is alive.
func (l *Life) Cells() *surface.Surface[uint8] { return l.cur }

// Generation returns how many steps have run since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset fills the board with random cells from a PCG source seeded by seed.
func (l *Life) Reset(seed int64) {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	cells := l.cur.Data()
	for i := range cells {
		cells[i] = uint8(r.IntN(2))
	}
	l.gen = 0
}

// Step advances one generation.
func (l *Life) Step() {
	cur, nxt := l.cur.Data(), l.nxt.Data()
	l.cache.ForEach(func(i int, nbrs []int) {
		n := 0
		for _, j := range nbrs {
			n += int(cur[j])
		}
		set := l.rule.Birth
		if cur[i] == 1 {
			set = l.rule.Survive
		}
		nxt[i] = uint8(set >> uint(n) & 1)
	})
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// Alive counts live cells.
func (l *Life) Alive() int {
	n := 0
	for _, v := range l.cur.Data() {
		n += int(v)
	}

	return n
}

// Clusters returns the number of connected groups of live cells.
func (l *Life) Clusters() int {
	cur := l.cur.Data()
	return len(l.cache.Components(func(i int) bool { return cur[i] == 1 }))
}
