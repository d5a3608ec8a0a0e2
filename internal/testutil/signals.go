package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// Tone generates a unit complex exponential at the center frequency of
// the given channel for a bank with channelCount channels. The result
// spans blocks * channelCount samples, so each consecutive channelCount
// samples walk exactly `channel` full cycles.
func Tone(channel, channelCount, blocks int) []complex128 {
	out := make([]complex128, blocks*channelCount)
	step := 2 * math.Pi * float64(channel) / float64(channelCount)
	for n := range out {
		out[n] = cmplx.Exp(complex(0, step*float64(n)))
	}
	return out
}

// DCComplex generates a constant complex signal.
func DCComplex(value complex128, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// OnesComplex returns a slice of length n filled with 1+0i.
func OnesComplex(n int) []complex128 {
	return DCComplex(1, n)
}

// DeterministicComplexNoise generates complex white noise with a fixed
// seed, both parts uniform in [-amplitude, amplitude).
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// DC generates a constant-valued real signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
