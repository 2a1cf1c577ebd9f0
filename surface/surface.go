package surface

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/hypersurface/skeleton"
)

// Sentinel errors carried by contract-violation panics.
var (
	// ErrUnknownFace indicates a coordinate whose pin pattern is not a face of the skeleton.
	ErrUnknownFace = errors.New("surface: coordinate belongs to no face")

	// ErrBadIndex indicates a coordinate with no dense index in its face.
	ErrBadIndex = errors.New("surface: coordinate has no dense index")
)

// Surface is a sparse container holding one T per skeleton point.
// It is not safe for concurrent mutation; see package wave for the
// buffer-swapping discipline consumers use.
type Surface[T any] struct {
	meta   skeleton.Meta
	data   []T
	planes map[skeleton.FaceKey][]T
}

// New allocates a zero-valued Surface for every face of m.
// Complexity: O(#faces·N + #points).
func New[T any](m skeleton.Meta) *Surface[T] {
	faces := m.Faces()
	s := &Surface[T]{
		meta:   m,
		data:   make([]T, m.Len()),
		planes: make(map[skeleton.FaceKey][]T, len(faces)),
	}
	off := 0
	for _, f := range faces {
		s.planes[f.Key] = s.data[off : off+f.Size : off+f.Size]
		off += f.Size
	}

	return s
}

// Meta returns the skeleton the Surface was built from.
func (s *Surface[T]) Meta() skeleton.Meta { return s.meta }

// Len returns the number of stored values, equal to Meta().Len().
func (s *Surface[T]) Len() int { return len(s.data) }

// Data returns the backing slice. Its order matches Meta().All() and
// adjacency.Cache flat indices. Writes through it are visible to At.
func (s *Surface[T]) Data() []T { return s.data }

// Plane returns the values of one face in dense-index order.
func (s *Surface[T]) Plane(key skeleton.FaceKey) ([]T, bool) {
	p, ok := s.planes[key]
	return p, ok
}

// Ref returns a pointer to the slot of c. It panics with ErrUnknownFace or
// ErrBadIndex when c is not a point of the skeleton.
// Complexity: O(N).
func (s *Surface[T]) Ref(c skeleton.Coord) *T {
	plane, ok := s.planes[skeleton.KeyOf(c)]
	if !ok || len(c) != s.meta.Axes() {
		panic(fmt.Errorf("%w: %v in %v", ErrUnknownFace, c, s.meta))
	}
	idx, ok := s.meta.DenseIndex(c)
	if !ok || idx >= len(plane) {
		panic(fmt.Errorf("%w: %v in %v", ErrBadIndex, c, s.meta))
	}

	return &plane[idx]
}

// At returns the value stored at c. Panics like Ref.
func (s *Surface[T]) At(c skeleton.Coord) T { return *s.Ref(c) }

// Set stores v at c. Panics like Ref.
func (s *Surface[T]) Set(c skeleton.Coord, v T) { *s.Ref(c) = v }

// Fill stores v in every slot.
func (s *Surface[T]) Fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

// CopyFrom overwrites s with the values of src. Both must come from equal metadata.
func (s *Surface[T]) CopyFrom(src *Surface[T]) {
	if s.meta != src.meta {
		panic(fmt.Errorf("surface: copy between %v and %v", src.meta, s.meta))
	}
	copy(s.data, src.data)
}

// All yields every coordinate with its value, in Data order.
func (s *Surface[T]) All() iter.Seq2[skeleton.Coord, T] {
	return func(yield func(skeleton.Coord, T) bool) {
		i := 0
		for c := range s.meta.All() {
			if !yield(c, s.data[i]) {
				return
			}
			i++
		}
	}
}
