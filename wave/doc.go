// Package wave propagates a scalar wave over a k-skeleton with a
// second-order finite-difference scheme.
//
// The field lives in three surface.Surface[float32] buffers: read (current
// step), prev (previous step) and write (next step). Each Step reads read and
// prev, fills write, then rotates the buffers by swapping pointers; values are
// never copied between buffers.
//
// Per point, with d neighbors and neighbor sum Σ:
//
//	cfd   = 0.5·dt·(Σ − d·center)
//	first = center − cfd
//	next  = −prev + 2·center + cfd
package wave
