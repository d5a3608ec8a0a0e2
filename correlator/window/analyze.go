package window

// BranchSums returns, for each of the channelCount polyphase branches,
// the sum of the prototype coefficients that branch sees across taps.
// For a well-behaved prototype the sums are nearly equal, which is what
// concentrates a DC input into channel 0 after the transform.
func BranchSums(coeffs []float64, channelCount int) []float64 {
	if channelCount <= 0 || len(coeffs) == 0 || len(coeffs)%channelCount != 0 {
		return nil
	}

	sums := make([]float64, channelCount)
	for i, c := range coeffs {
		sums[i%channelCount] += c
	}

	return sums
}

// CoherentGain returns the mean coefficient value, the DC gain of the
// prototype per sample.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs))
}
