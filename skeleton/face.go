package skeleton

// FaceKey packs a face pattern into 2 bits per axis (axis i at bits 2i..2i+1):
// 0 for a free axis, 1 for Negative, 2 for Positive. Two coordinates share a
// face exactly when their keys are equal; interior offsets never affect it.
type FaceKey uint64

// KeyOf returns the face key of c.
// Complexity: O(len(c)).
func KeyOf(c Coord) FaceKey {
	var k FaceKey
	for i, e := range c {
		k |= FaceKey(e.Kind&3) << (2 * uint(i))
	}

	return k
}

// Face is one plane of the skeleton.
type Face struct {
	// Key identifies the face.
	Key FaceKey
	// Pattern is the canonical coordinate: free axes hold Interior(0).
	Pattern Coord
	// Free lists the free axes in ascending order.
	Free []int
	// Size is side^len(Free), the number of points on the face.
	Size int
}

// Dim returns the number of free axes of f.
func (f Face) Dim() int { return len(f.Free) }

// FaceOf returns the canonical face pattern of c: every Interior entry is
// replaced by Interior(0), pins are kept.
func FaceOf(c Coord) Coord {
	out := make(Coord, len(c))
	for i, e := range c {
		if e.Kind != Interior {
			out[i] = e
		}
	}

	return out
}
