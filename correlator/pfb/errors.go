package pfb

import "errors"

var (
	// ErrBadChannels reports a non-positive channel count at construction.
	ErrBadChannels = errors.New("pfb: channel count must be > 0")

	// ErrBlockLength reports an input block whose length is not
	// channelCount*taps.
	ErrBlockLength = errors.New("pfb: sample block length mismatch")

	// ErrSpectrumLength reports an output slice whose length is not
	// channelCount.
	ErrSpectrumLength = errors.New("pfb: spectrum length mismatch")

	// ErrTransform wraps failures of the forward transform backend.
	ErrTransform = errors.New("pfb: forward transform failed")
)
