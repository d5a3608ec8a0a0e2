package xengine

import "errors"

var (
	// ErrChannelCount indicates a spectrum or integration whose channel
	// count does not match the one fixed at Begin.
	ErrChannelCount = errors.New("xengine: channel count mismatch")

	// ErrUnknownPair indicates an antenna pair that was not registered
	// when the integration began.
	ErrUnknownPair = errors.New("xengine: pair not registered")

	// ErrNoPairs indicates an attempt to begin an integration with an
	// empty pair set.
	ErrNoPairs = errors.New("xengine: at least one pair required")

	// ErrDuplicatePair indicates the same pair appearing twice in the
	// set passed to Begin.
	ErrDuplicatePair = errors.New("xengine: duplicate pair")

	// ErrPairSet indicates two integrations that do not cover the same
	// pairs in the same order and therefore cannot be merged.
	ErrPairSet = errors.New("xengine: integrations cover different pair sets")

	// ErrSeriesLength indicates a time series whose length is not
	// blockCount * channelCount.
	ErrSeriesLength = errors.New("xengine: series length does not match block and channel counts")

	// ErrNoBlocks indicates a request for a per-block mean on a pair
	// that has not accumulated any blocks yet.
	ErrNoBlocks = errors.New("xengine: no blocks accumulated for pair")
)
