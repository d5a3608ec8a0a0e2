// Package fft holds the process-scoped cache of forward transform
// plans used by the channelizer.
//
// Plans are keyed by (length, precision) and built on first use; a
// cache miss only costs planning time, never correctness. An optional
// manifest file can pre-build plans for known sizes at startup, the
// moral equivalent of loading FFTW wisdom. The channelizer and
// accumulator never mutate this state themselves.
package fft
