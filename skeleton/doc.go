// Package skeleton describes the k-skeleton of an N-dimensional hypercube
// lattice: the lattice points lying on faces of dimension ≤ k, without the
// enclosing N-volume.
//
// What:
//
//   - Extent is the per-axis state of a point: pinned to the Negative or
//     Positive boundary, or free at Interior(v) with v in [0, side).
//   - Coord is an N-tuple of extents. Its free-axis count must not exceed MaxDim.
//   - A Face ("plane") groups all coordinates sharing the same pinned axes and
//     pin signs. FaceKey packs that pattern into a comparable uint64.
//   - Meta (axes, side, maxDim) enumerates faces, indexes points inside a face,
//     embeds them in Euclidean space and walks their neighbors.
//
// Why:
//
//   - Wave and cellular-automaton simulations on the surface of a 3- or 4-cube
//     need only Σ C(N,k)·2^(N-k)·side^k cells instead of side^N.
//
// Geometry:
//
//	Each axis has width side+2: Negative→0, Interior(v)→v+1, Positive→side+1.
//	Walking off the interior lands on the adjacent pinned face, and walking
//	inward from a pin lands on Interior(0) or Interior(side-1). A step that
//	would free one axis too many is not a neighbor.
//
// Complexity:
//
//   - New, Len, FaceCount: O(N).
//   - Faces, All:          O(#faces·N) and O(#points·N).
//   - DenseIndex, Euclid:  O(N).
//   - Neighbors:           O(N) per coordinate, at most 2N results.
//
// Errors:
//
//   - ErrBadAxes:   axis count outside [1, MaxAxes].
//   - ErrBadSide:   negative side length.
//   - ErrBadMaxDim: maxDim outside [0, axes].
//   - ErrTooLarge:  point or face count does not fit in an int.
package skeleton
