// Package xengine accumulates cross-correlation visibilities.
//
// An Integration holds one running complex sum and one block counter per
// (antenna pair, frequency channel) cell. Channelized spectra are folded
// in with Accumulate (one time block at a time) or AccumulateSeries (a
// strided conjugate dot product over the time axis of a block-major
// series). Snapshot copies the current state into a read-only Visibility
// table without ending the interval; Reset starts a new one.
//
// Cells hold raw sums. Visibility.Mean divides by the block counter, so
// the integration scale stays explicit until the caller asks for it.
//
// An Integration is not safe for concurrent mutation. For parallel
// accumulation, give each worker its own Integration over the same pair
// set and combine them with Merge, which adds cells pair by pair in
// registration order and channels ascending so partitioned reductions
// stay reproducible.
package xengine
