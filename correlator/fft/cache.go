package fft

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrBadLength reports a non-positive transform length.
var ErrBadLength = errors.New("fft: transform length must be > 0")

type planKey struct {
	length int
	bits   int
}

type registry struct {
	mu     sync.Mutex
	plans  map[planKey]any
	loaded bool
}

var global = &registry{plans: make(map[planKey]any)}

// ForwardPlan returns the shared plan for complex transforms of length
// n in the precision selected by C, building and caching it on first
// use. The returned plan is shared; callers execute it with their own
// input and output buffers, matching how FFTW plans are shared across
// worker threads.
func ForwardPlan[C algofft.Complex](n int) (*algofft.Plan[C], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, n)
	}

	k := planKey{length: n, bits: precisionBits[C]()}

	global.mu.Lock()
	defer global.mu.Unlock()

	if p, ok := global.plans[k]; ok {
		return p.(*algofft.Plan[C]), nil
	}

	p, err := algofft.NewPlanT[C](n)
	if err != nil {
		return nil, fmt.Errorf("fft: create plan for length %d: %w", n, err)
	}
	global.plans[k] = p

	return p, nil
}

// Loaded reports whether a plan manifest was successfully applied at
// startup. The host process may surface this as a performance note.
func Loaded() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.loaded
}

// Reset drops every cached plan and clears the manifest flag.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.plans = make(map[planKey]any)
	global.loaded = false
}

func precisionBits[C algofft.Complex]() int {
	var zero C
	switch any(zero).(type) {
	case complex64:
		return 32
	default:
		return 64
	}
}
