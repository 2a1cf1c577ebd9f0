package skeleton

// Step moves e one unit in dir along an axis of the given side length.
// It reports false when there is no lattice point in that direction:
// past a pin, or past the last interior offset of an invalid extent.
//
//	Positive, Up   → none
//	Positive, Down → Interior(side-1), or Negative when side == 0
//	Negative, Down → none
//	Negative, Up   → Interior(0), or Positive when side == 0
//	Interior(v), Up   → Interior(v+1), Positive at v+1 == side, none beyond
//	Interior(v), Down → Negative at v == 0, else Interior(v-1)
//
// Complexity: O(1).
func (e Extent) Step(dir Direction, side int) (Extent, bool) {
	switch e.Kind {
	case Positive:
		if dir == Up {
			return Extent{}, false
		}
		if side > 0 {
			return In(side - 1), true
		}
		return Neg(), true
	case Negative:
		if dir == Down {
			return Extent{}, false
		}
		if side > 0 {
			return In(0), true
		}
		return Pos(), true
	case Interior:
		if dir == Up {
			next := e.Value + 1
			switch {
			case next < side:
				return In(next), true
			case next == side:
				return Pos(), true
			default:
				return Extent{}, false
			}
		}
		if e.Value == 0 {
			return Neg(), true
		}
		return In(e.Value - 1), true
	}

	return Extent{}, false
}

// Euclid returns the offset of e on an axis of width side+2:
// Negative → 0, Interior(v) → v+1, Positive → side+1.
// Complexity: O(1).
func (e Extent) Euclid(side int) int {
	switch e.Kind {
	case Negative:
		return 0
	case Positive:
		return side + 1
	default:
		return e.Value + 1
	}
}
