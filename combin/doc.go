// Package combin enumerates index subsets for the hypersurface packages.
//
// What:
//
//   - Choose(n, m) lists every strictly increasing m-element subset of {0,…,n-1}.
//   - Binomial(n, m) counts them without allocating.
//
// Why:
//
//   - A face of an N-cube is described by which axes are free; Choose(N, k)
//     yields exactly the axis sets of the k-dimensional faces.
//
// Complexity:
//
//   - Choose:   O(C(n,m)·m) time and memory.
//   - Binomial: O(min(m, n-m)).
//
// Errors:
//
//   - None. Out-of-range arguments (m > n, negatives) produce an empty result.
package combin
