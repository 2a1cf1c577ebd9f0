// Package hypersurface stores and traverses the k-skeleton of an
// N-dimensional hypercube lattice: the points on its faces of dimension ≤ k,
// e.g. the square faces of a 4-cube, without the side^N volume around them.
//
// Packages:
//
//	combin/    — increasing m-subsets of {0,…,n-1} and binomial counts
//	skeleton/  — Extent, Coord, Face, and Meta: face enumeration, dense
//	             indexing, Euclidean embedding and neighbor walks
//	surface/   — Surface[T], one dense plane per face keyed by FaceKey
//	adjacency/ — Cache: flat numbering, precomputed neighbor lists, BFS
//	wave/      — finite-difference wave scheme with read/write/prev buffers
//	life/      — B3/S23 cellular automaton on the skeleton
//
// Quick ASCII example, N=2, side=2, k=1 (the outline of a square):
//
//	-,+  0,+  1,+  +,+
//	-,1            +,1
//	-,0            +,0
//	-,-  0,-  1,-  +,-
//
// Corners are 0-faces, each side is a 1-face of two points; the four
// interior points of the full square are not stored.
//
//	go get github.com/katalvlaran/hypersurface
package hypersurface
