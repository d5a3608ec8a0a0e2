// Package buffer provides 64-byte aligned scratch storage with pooled
// reuse. The channelizer and accumulator stage their hot loops through
// these buffers so vectorized transform backends see the alignment they
// expect. Acquire returns zeroed storage; Release returns it to the
// pool and is safe to call at most once per handle.
package buffer
