package xengine

import (
	"fmt"

	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/vec"
)

// Pair identifies an antenna baseline by the indices of its two stands.
// For a baseline set from AllBaselines, A <= B and A == B denotes an
// autocorrelation.
type Pair struct {
	A, B int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.A, p.B)
}

// AllBaselines enumerates every unordered stand pair for standCount
// stands, autocorrelations included, in the conventional order
// (0,0), (0,1), ... (0,n-1), (1,1), ... (n-1,n-1). The result has
// standCount*(standCount+1)/2 entries. A non-positive standCount yields
// nil.
func AllBaselines(standCount int) []Pair {
	if standCount <= 0 {
		return nil
	}

	pairs := make([]Pair, 0, standCount*(standCount+1)/2)
	for a := 0; a < standCount; a++ {
		for b := a; b < standCount; b++ {
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	return pairs
}

// Integration is the mutable accumulator state for one integration
// interval: a running complex sum per (pair, channel) cell plus one block
// counter per pair.
type Integration[C vec.Complex] struct {
	channelCount int
	pairs        []Pair
	index        map[Pair]int
	cells        [][]C
	counts       []uint64
}

// Integration64 accumulates complex128 spectra.
type Integration64 = Integration[complex128]

// Integration32 accumulates complex64 spectra.
type Integration32 = Integration[complex64]

// Begin allocates a zeroed Integration over the given pair set and
// channel count. The pair set and channel count are fixed for the life of
// the integration; the slice is copied.
func Begin[C vec.Complex](pairs []Pair, channelCount int) (*Integration[C], error) {
	if channelCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChannelCount, channelCount)
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	in := &Integration[C]{
		channelCount: channelCount,
		pairs:        append([]Pair(nil), pairs...),
		index:        make(map[Pair]int, len(pairs)),
		cells:        make([][]C, len(pairs)),
		counts:       make([]uint64, len(pairs)),
	}
	for i, p := range in.pairs {
		if _, dup := in.index[p]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicatePair, p)
		}
		in.index[p] = i
		in.cells[i] = make([]C, channelCount)
	}
	return in, nil
}

// ChannelCount reports the per-spectrum channel count fixed at Begin.
func (in *Integration[C]) ChannelCount() int { return in.channelCount }

// Pairs returns the registered pairs in registration order. The slice is
// shared; callers must not modify it.
func (in *Integration[C]) Pairs() []Pair { return in.pairs }

// Count reports how many time blocks have been folded into the given
// pair since the last Reset.
func (in *Integration[C]) Count(p Pair) (uint64, error) {
	i, ok := in.index[p]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	return in.counts[i], nil
}

// Accumulate folds one time block into the pair's cells: for every
// channel k it adds conj(specA[k]) * specB[k] and then increments the
// pair's block counter. On any validation failure no cell is touched.
func (in *Integration[C]) Accumulate(p Pair, specA, specB []C) error {
	i, ok := in.index[p]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	if len(specA) != in.channelCount {
		return fmt.Errorf("%w: spectrum a has %d channels, want %d", ErrChannelCount, len(specA), in.channelCount)
	}
	if len(specB) != in.channelCount {
		return fmt.Errorf("%w: spectrum b has %d channels, want %d", ErrChannelCount, len(specB), in.channelCount)
	}

	cell := in.cells[i]
	for k := 0; k < in.channelCount; k++ {
		cell[k] += conj(specA[k]) * specB[k]
	}
	in.counts[i]++
	return nil
}

// AccumulateSeries folds blockCount consecutive time blocks at once.
// seriesA and seriesB are block-major: the spectrum for block t occupies
// [t*channelCount, (t+1)*channelCount). Per channel the time axis is
// reduced with a single strided conjugate dot product, so the result is
// identical to blockCount sequential Accumulate calls. On any validation
// failure no cell is touched.
func (in *Integration[C]) AccumulateSeries(p Pair, blockCount int, seriesA, seriesB []C) error {
	i, ok := in.index[p]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownPair, p)
	}
	if blockCount <= 0 {
		return fmt.Errorf("%w: block count %d", ErrSeriesLength, blockCount)
	}
	want := blockCount * in.channelCount
	if len(seriesA) != want {
		return fmt.Errorf("%w: series a has %d samples, want %d", ErrSeriesLength, len(seriesA), want)
	}
	if len(seriesB) != want {
		return fmt.Errorf("%w: series b has %d samples, want %d", ErrSeriesLength, len(seriesB), want)
	}

	sums := make([]C, in.channelCount)
	for k := 0; k < in.channelCount; k++ {
		s, err := vec.DotcSub(blockCount, seriesA[k:], in.channelCount, seriesB[k:], in.channelCount)
		if err != nil {
			return err
		}
		sums[k] = s
	}

	cell := in.cells[i]
	for k, s := range sums {
		cell[k] += s
	}
	in.counts[i] += uint64(blockCount)
	return nil
}

// Merge adds other's cells and counters into in. Both integrations must
// have been begun over the same pair set in the same order and with the
// same channel count. Cells are combined pair by pair in registration
// order, channels ascending, so partitioned reductions compose in a
// fixed order. other is left unchanged.
func (in *Integration[C]) Merge(other *Integration[C]) error {
	if other.channelCount != in.channelCount {
		return fmt.Errorf("%w: %d vs %d", ErrChannelCount, other.channelCount, in.channelCount)
	}
	if len(other.pairs) != len(in.pairs) {
		return fmt.Errorf("%w: %d vs %d pairs", ErrPairSet, len(other.pairs), len(in.pairs))
	}
	for i, p := range in.pairs {
		if other.pairs[i] != p {
			return fmt.Errorf("%w: position %d holds %v vs %v", ErrPairSet, i, other.pairs[i], p)
		}
	}

	for i := range in.pairs {
		dst, src := in.cells[i], other.cells[i]
		for k := 0; k < in.channelCount; k++ {
			dst[k] += src[k]
		}
		in.counts[i] += other.counts[i]
	}
	return nil
}

// Snapshot copies the current sums and counters into a read-only
// Visibility table. The integration keeps running; callers may poll
// mid-interval.
func (in *Integration[C]) Snapshot() *Visibility[C] {
	v := &Visibility[C]{
		channelCount: in.channelCount,
		pairs:        in.pairs,
		index:        in.index,
		sums:         make([][]C, len(in.cells)),
		counts:       append([]uint64(nil), in.counts...),
	}
	for i, cell := range in.cells {
		v.sums[i] = append([]C(nil), cell...)
	}
	return v
}

// Reset zeroes every cell and counter, beginning a new integration
// interval. Snapshots taken earlier are unaffected.
func (in *Integration[C]) Reset() {
	for _, cell := range in.cells {
		for k := range cell {
			cell[k] = 0
		}
	}
	for i := range in.counts {
		in.counts[i] = 0
	}
}

func conj[C vec.Complex](z C) C {
	switch v := any(z).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(C)
	case complex128:
		return any(complex(real(v), -imag(v))).(C)
	}
	return z
}
