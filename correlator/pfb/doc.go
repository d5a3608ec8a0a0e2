// Package pfb implements the polyphase filter-bank channelizer, the
// F-stage of the correlator.
//
// A channelization consumes one block of channelCount*taps complex
// samples: each of the taps sub-blocks is multiplied by its slice of
// the prototype filter and the branches are summed before a single
// forward transform of length channelCount. The branch summation is
// what separates a filter bank from a plain windowed transform and is
// what buys the leakage suppression.
package pfb
