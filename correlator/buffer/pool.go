package buffer

import (
	"fmt"
	"sync"
	"unsafe"
)

// Pool hands out aligned buffers with sync.Pool-backed reuse. Safe for
// concurrent use; allocation is all-or-nothing.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Aligned{}
			},
		},
	}
}

// Acquire returns a zeroed, 64-byte aligned region of byteSize bytes.
// Zero and negative sizes are rejected. Callers must release the handle
// on every exit path, typically via defer.
func (p *Pool) Acquire(byteSize int) (*Aligned, error) {
	if byteSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, byteSize)
	}

	a := p.pool.Get().(*Aligned)
	if err := a.reserve(byteSize); err != nil {
		return nil, err
	}
	a.pool = p

	return a, nil
}

// AcquireComplex64s returns an aligned handle sized for n complex64
// values alongside its typed view.
func (p *Pool) AcquireComplex64s(n int) (*Aligned, []complex64, error) {
	a, err := p.Acquire(n * 8)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Complex64s(), nil
}

// AcquireComplex128s returns an aligned handle sized for n complex128
// values alongside its typed view.
func (p *Pool) AcquireComplex128s(n int) (*Aligned, []complex128, error) {
	a, err := p.Acquire(n * 16)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Complex128s(), nil
}

// AcquireSlice returns an aligned handle sized for n values of T along
// with its typed view. T must be a fixed-size numeric type.
func AcquireSlice[T any](p *Pool, n int) (*Aligned, []T, error) {
	var zero T
	a, err := p.Acquire(n * int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, nil, err
	}
	return a, view[T](a.data), nil
}

func (p *Pool) put(a *Aligned) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
