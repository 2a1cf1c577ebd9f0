// Package adjacency precomputes the neighbor graph of a k-skeleton once, so
// a simulation step can read neighbors as plain integer slices.
//
// What:
//
//   - Cache numbers every valid coordinate with a flat index in
//     skeleton.Meta.All order (the same order as surface.Surface.Data).
//   - For each flat index it stores the flat indices of the neighbors, in
//     skeleton.Meta.Neighbors order, in compressed-row form.
//   - Distances runs a breadth-first search over the cached graph.
//
// Why:
//
//   - Neighbor enumeration allocates and branches per call; a simulation
//     calling it for every point on every step pays that cost thousands of
//     times per frame. The cache pays it once.
//
// Complexity:
//
//   - New:       O(#points·N) time, O(#points·N) memory.
//   - ForEach:   O(#points + #arcs).
//   - Index:     O(N).
//   - Distances: O(#points + #arcs).
//
// The cache is immutable after New; rebuild it for different metadata.
package adjacency
