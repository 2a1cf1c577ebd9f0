package skeleton

import "iter"

// cursor walks the candidate moves of one coordinate: axis by axis, Down
// before Up. Its whole state is the step counter.
type cursor struct {
	meta   Meta
	origin Coord
	free   int
	step   int // candidate 2·axis+0 is Down, 2·axis+1 is Up
}

func (m Meta) cursor(c Coord) cursor {
	return cursor{meta: m, origin: c, free: c.FreeCount()}
}

// next advances to the following admissible move and writes the neighbor
// into dst (len(dst) == len(origin)). It reports false once exhausted.
func (cur *cursor) next(dst Coord) (Move, bool) {
	for cur.step < 2*len(cur.origin) {
		axis, dir := cur.step/2, Down
		if cur.step%2 == 1 {
			dir = Up
		}
		cur.step++

		from := cur.origin[axis]
		to, ok := from.Step(dir, cur.meta.side)
		if !ok {
			continue
		}
		free := cur.free
		if from.Free() {
			free--
		}
		if to.Free() {
			free++
		}
		if free > cur.meta.maxDim {
			continue
		}
		copy(dst, cur.origin)
		dst[axis] = to

		return Move{Axis: axis, Dir: dir}, true
	}

	return Move{}, false
}

// Moves yields each neighbor of c together with the move that reaches it.
// Per axis in order, Down is tried before Up; a candidate is dropped when
// the axis has no point in that direction or when it would free more than
// MaxDim axes. At most 2N pairs are produced; each Coord is freshly allocated.
func (m Meta) Moves(c Coord) iter.Seq2[Move, Coord] {
	return func(yield func(Move, Coord) bool) {
		cur := m.cursor(c)
		for {
			dst := make(Coord, len(c))
			mv, ok := cur.next(dst)
			if !ok || !yield(mv, dst) {
				return
			}
		}
	}
}

// Neighbors yields the neighbors of c in the order of Moves.
func (m Meta) Neighbors(c Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, n := range m.Moves(c) {
			if !yield(n) {
				return
			}
		}
	}
}

// AppendNeighbors appends the neighbors of c to dst and returns the result.
// Callers that reuse dst across coordinates avoid reallocating the outer slice.
func (m Meta) AppendNeighbors(dst []Coord, c Coord) []Coord {
	cur := m.cursor(c)
	for {
		n := make(Coord, len(c))
		if _, ok := cur.next(n); !ok {
			return dst
		}
		dst = append(dst, n)
	}
}
