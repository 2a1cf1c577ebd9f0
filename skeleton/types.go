package skeleton

import (
	"errors"
	"strconv"
	"strings"
)

// MaxAxes bounds the axis count so that a FaceKey fits in 64 bits.
const MaxAxes = 32

// Sentinel errors for skeleton construction.
var (
	// ErrBadAxes indicates an axis count outside [1, MaxAxes].
	ErrBadAxes = errors.New("skeleton: axis count out of range")

	// ErrBadSide indicates a negative side length.
	ErrBadSide = errors.New("skeleton: side length must be non-negative")

	// ErrBadMaxDim indicates a dimensionality cap outside [0, axes].
	ErrBadMaxDim = errors.New("skeleton: max dimension out of range")

	// ErrTooLarge indicates the skeleton has more points or faces than an int can count.
	ErrTooLarge = errors.New("skeleton: skeleton too large")
)

// Kind tells whether an axis is free or pinned, and to which boundary.
// The zero Kind is Interior, so the zero Extent is Interior(0), the face sentinel.
type Kind uint8

const (
	// Interior marks a free axis; Extent.Value holds the offset.
	Interior Kind = iota
	// Negative pins the axis to its lower boundary.
	Negative
	// Positive pins the axis to its upper boundary.
	Positive
)

// Extent is the state of one axis of a coordinate.
// Value is meaningful only for Interior extents and is zero otherwise.
type Extent struct {
	Kind  Kind
	Value int
}

// Neg returns the extent pinned to the lower boundary.
func Neg() Extent { return Extent{Kind: Negative} }

// Pos returns the extent pinned to the upper boundary.
func Pos() Extent { return Extent{Kind: Positive} }

// In returns the free extent at offset v.
func In(v int) Extent { return Extent{Kind: Interior, Value: v} }

// Free reports whether e is an Interior extent.
func (e Extent) Free() bool { return e.Kind == Interior }

// String renders "-", "+" or the interior offset.
func (e Extent) String() string {
	switch e.Kind {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return strconv.Itoa(e.Value)
	}
}

// Direction is a unit step along one axis.
type Direction int8

const (
	// Down steps toward the Negative boundary.
	Down Direction = -1
	// Up steps toward the Positive boundary.
	Up Direction = 1
)

// Move names the axis and direction that lead from a coordinate to a neighbor.
type Move struct {
	Axis int
	Dir  Direction
}

// Reverse returns the move leading back.
func (mv Move) Reverse() Move { return Move{Axis: mv.Axis, Dir: -mv.Dir} }

// Coord is one extent per axis. Coordinates handed out by this package are
// never retained by it, callers may modify them freely.
type Coord []Extent

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// Equal reports whether c and o agree on every axis.
func (c Coord) Equal(o Coord) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// FreeCount returns the number of Interior axes in c.
func (c Coord) FreeCount() int {
	n := 0
	for _, e := range c {
		if e.Kind == Interior {
			n++
		}
	}

	return n
}

// String renders c as e.g. "(-,3,+)".
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')

	return sb.String()
}
