package window

import (
	"errors"
	"fmt"
)

var (
	errBadChannels  = errors.New("window: channel count must be > 0")
	errBadTaps      = errors.New("window: tap count must be > 0")
	errUnknownShape = errors.New("window: unknown shape")
)

func validateDims(channelCount, taps int) error {
	if channelCount <= 0 {
		return fmt.Errorf("%w: %d", errBadChannels, channelCount)
	}
	if taps <= 0 {
		return fmt.Errorf("%w: %d", errBadTaps, taps)
	}
	return nil
}
