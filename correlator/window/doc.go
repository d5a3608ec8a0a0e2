// Package window builds the prototype filter that shapes the polyphase
// filter bank's frequency response.
//
// The prototype is a normalized-sinc lowpass evaluated across the full
// channelCount*taps span, optionally multiplied by a Hanning or Hamming
// window over the same span. The channelizer consumes the result in
// per-tap slices of channelCount coefficients.
package window
