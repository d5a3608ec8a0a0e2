// Package vec provides the strided scale and conjugate-dot primitives
// used by the channelizer and the visibility accumulator.
//
// Both operations are deliberately narrow replacements for the
// corresponding CBLAS routines (scal and dotc_sub): a single pass over
// the data with a documented left-to-right accumulation order, so that
// results are bit-reproducible for fixed inputs regardless of the
// build. Vectorized backends may hide behind the same contract as long
// as they preserve that order.
package vec
