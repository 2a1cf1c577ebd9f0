package skeleton

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/hypersurface/combin"
)

// Meta is the immutable description of a k-skeleton: the axis count N, the
// number of interior offsets per free axis, and the cap on simultaneously
// free axes. It is a small value, safe to copy and share without locking.
type Meta struct {
	axes   int
	side   int
	maxDim int
}

// New validates the parameters and returns the skeleton metadata.
// Returns ErrBadAxes, ErrBadSide, ErrBadMaxDim or ErrTooLarge (wrapped with
// the offending values) on invalid input.
// Complexity: O(axes).
func New(axes, side, maxDim int) (Meta, error) {
	if axes < 1 || axes > MaxAxes {
		return Meta{}, fmt.Errorf("%w: axes=%d", ErrBadAxes, axes)
	}
	if side < 0 {
		return Meta{}, fmt.Errorf("%w: side=%d", ErrBadSide, side)
	}
	if maxDim < 0 || maxDim > axes {
		return Meta{}, fmt.Errorf("%w: maxDim=%d axes=%d", ErrBadMaxDim, maxDim, axes)
	}
	m := Meta{axes: axes, side: side, maxDim: maxDim}
	if _, ok := m.count(false); !ok {
		return Meta{}, fmt.Errorf("%w: faces of (%d,%d,%d)", ErrTooLarge, axes, side, maxDim)
	}
	if _, ok := m.count(true); !ok {
		return Meta{}, fmt.Errorf("%w: points of (%d,%d,%d)", ErrTooLarge, axes, side, maxDim)
	}

	return m, nil
}

// Axes returns N, the number of axes.
func (m Meta) Axes() int { return m.axes }

// Side returns the number of interior offsets per free axis.
func (m Meta) Side() int { return m.side }

// MaxDim returns the cap on free axes (the k of the k-skeleton).
func (m Meta) MaxDim() int { return m.maxDim }

// FaceCount returns Σ_{k=0}^{maxDim} C(N,k)·2^(N-k).
func (m Meta) FaceCount() int {
	n, _ := m.count(false)
	return n
}

// Len returns the number of valid coordinates, Σ_k C(N,k)·2^(N-k)·side^k.
func (m Meta) Len() int {
	n, _ := m.count(true)
	return n
}

// count sums faces (or points when weighted) and reports overflow.
func (m Meta) count(points bool) (int, bool) {
	total := 0
	for k := 0; k <= m.maxDim; k++ {
		term, ok := mulInt(combin.Binomial(m.axes, k), 1<<uint(m.axes-k))
		if !ok {
			return 0, false
		}
		if points {
			size, ok := powInt(m.side, k)
			if !ok {
				return 0, false
			}
			if term, ok = mulInt(term, size); !ok {
				return 0, false
			}
		}
		if total > math.MaxInt-term {
			return 0, false
		}
		total += term
	}

	return total, true
}

// Faces enumerates every face: by free-axis count ascending, then by free
// axis set in combin.Choose order, then by sign mask ascending, where bit j of
// the mask pins the j-th pinned axis to Positive.
// Complexity: O(#faces·N).
func (m Meta) Faces() []Face {
	out := make([]Face, 0, m.FaceCount())
	for k := 0; k <= m.maxDim; k++ {
		size, _ := powInt(m.side, k)
		for _, free := range combin.Choose(m.axes, k) {
			pinned := m.complement(free)
			for mask := 0; mask < 1<<uint(len(pinned)); mask++ {
				pattern := make(Coord, m.axes)
				for j, axis := range pinned {
					if mask>>uint(j)&1 == 1 {
						pattern[axis] = Pos()
					} else {
						pattern[axis] = Neg()
					}
				}
				out = append(out, Face{
					Key:     KeyOf(pattern),
					Pattern: pattern,
					Free:    free,
					Size:    size,
				})
			}
		}
	}

	return out
}

// complement returns the axes not listed in free, ascending.
func (m Meta) complement(free []int) []int {
	out := make([]int, 0, m.axes-len(free))
	j := 0
	for axis := 0; axis < m.axes; axis++ {
		if j < len(free) && free[j] == axis {
			j++
			continue
		}
		out = append(out, axis)
	}

	return out
}

// DenseIndex returns the mixed-radix index of c within its face: interior
// offsets are digits in axis order, the first free axis least significant.
// It reports false when c has the wrong length, more than MaxDim free axes,
// or an interior offset outside [0, side).
// For a fixed face this is a bijection onto [0, side^free).
// Complexity: O(N).
func (m Meta) DenseIndex(c Coord) (int, bool) {
	if len(c) != m.axes {
		return 0, false
	}
	idx, stride, free := 0, 1, 0
	for _, e := range c {
		switch e.Kind {
		case Interior:
			if e.Value < 0 || e.Value >= m.side {
				return 0, false
			}
			idx += e.Value * stride
			stride *= m.side
			free++
		case Negative, Positive:
		default:
			return 0, false
		}
	}
	if free > m.maxDim {
		return 0, false
	}

	return idx, true
}

// Valid reports whether c is a point of this skeleton.
func (m Meta) Valid(c Coord) bool {
	_, ok := m.DenseIndex(c)
	return ok
}

// CoordAt inverts DenseIndex: it returns the point of f with the given index.
// idx must lie in [0, f.Size).
// Complexity: O(N).
func (m Meta) CoordAt(f Face, idx int) Coord {
	c := f.Pattern.Clone()
	for _, axis := range f.Free {
		c[axis] = In(idx % m.side)
		idx /= m.side
	}

	return c
}

// All yields every valid coordinate, face by face in Faces order and in
// dense-index order within a face. The sequence is restartable; each yielded
// Coord is freshly allocated.
func (m Meta) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, f := range m.Faces() {
			for idx := 0; idx < f.Size; idx++ {
				if !yield(m.CoordAt(f, idx)) {
					return
				}
			}
		}
	}
}

// Euclid maps c into the (side+2)^N lattice: Negative→0, Interior(v)→v+1,
// Positive→side+1 on every axis. Used for geometry only, never for storage.
func (m Meta) Euclid(c Coord) []int {
	out := make([]int, len(c))
	for i, e := range c {
		out[i] = e.Euclid(m.side)
	}

	return out
}

// Project maps c into [-1, 1]^N, the normalized Euclid embedding a point
// cloud renderer consumes.
func (m Meta) Project(c Coord) []float32 {
	width := float32(m.side + 1)
	out := make([]float32, len(c))
	for i, e := range c {
		out[i] = float32(e.Euclid(m.side))/width*2 - 1
	}

	return out
}

// String renders the parameters, e.g. "skeleton(N=4 side=8 k=2)".
func (m Meta) String() string {
	return fmt.Sprintf("skeleton(N=%d side=%d k=%d)", m.axes, m.side, m.maxDim)
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a || r < 0 {
		return 0, false
	}

	return r, true
}

func powInt(base, exp int) (int, bool) {
	r := 1
	for i := 0; i < exp; i++ {
		var ok bool
		if r, ok = mulInt(r, base); !ok {
			return 0, false
		}
	}

	return r, true
}
