package xengine

import (
	"fmt"

	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/spectrum"
	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/vec"
)

// Visibility is a read-only snapshot of an Integration: raw per-channel
// sums plus the block counter for every registered pair. It shares
// nothing mutable with the integration it was taken from.
type Visibility[C vec.Complex] struct {
	channelCount int
	pairs        []Pair
	index        map[Pair]int
	sums         [][]C
	counts       []uint64
}

// Visibility64 snapshots complex128 integrations.
type Visibility64 = Visibility[complex128]

// Visibility32 snapshots complex64 integrations.
type Visibility32 = Visibility[complex64]

// ChannelCount reports the per-spectrum channel count.
func (v *Visibility[C]) ChannelCount() int { return v.channelCount }

// Pairs returns the registered pairs in registration order. The slice is
// shared; callers must not modify it.
func (v *Visibility[C]) Pairs() []Pair { return v.pairs }

// Count reports how many time blocks the pair's sums cover.
func (v *Visibility[C]) Count(p Pair) (uint64, error) {
	i, ok := v.index[p]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	return v.counts[i], nil
}

// At returns the raw accumulated sum for one (pair, channel) cell.
func (v *Visibility[C]) At(p Pair, channel int) (C, error) {
	var zero C
	i, ok := v.index[p]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	if channel < 0 || channel >= v.channelCount {
		return zero, fmt.Errorf("%w: channel %d of %d", ErrChannelCount, channel, v.channelCount)
	}
	return v.sums[i][channel], nil
}

// Sum returns a copy of the pair's raw per-channel sums.
func (v *Visibility[C]) Sum(p Pair) ([]C, error) {
	i, ok := v.index[p]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	return append([]C(nil), v.sums[i]...), nil
}

// Mean returns the pair's per-channel sums divided by its block counter,
// the per-block visibility estimate. Fails with ErrNoBlocks when the
// counter is zero.
func (v *Visibility[C]) Mean(p Pair) ([]C, error) {
	i, ok := v.index[p]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	if v.counts[i] == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoBlocks, p)
	}

	out := append([]C(nil), v.sums[i]...)
	scale := scalar[C](1 / float64(v.counts[i]))
	if err := vec.ScaleInPlace(len(out), scale, out, 1); err != nil {
		return nil, err
	}
	return out, nil
}

// Power returns |Mean(p)[k]|² per channel. For an autocorrelation pair
// this is the mean power spectrum of the stand.
func (v *Visibility[C]) Power(p Pair) ([]float64, error) {
	mean, err := v.Mean(p)
	if err != nil {
		return nil, err
	}
	return spectrum.Power(widen(mean)), nil
}

func scalar[C vec.Complex](v float64) C {
	var c C
	switch p := any(&c).(type) {
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(v, 0)
	}
	return c
}

func widen[C vec.Complex](src []C) []complex128 {
	switch s := any(src).(type) {
	case []complex128:
		return s
	case []complex64:
		out := make([]complex128, len(s))
		for i, z := range s {
			out[i] = complex(float64(real(z)), float64(imag(z)))
		}
		return out
	}
	return nil
}
