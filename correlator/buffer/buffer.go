package buffer

import (
	"errors"
	"fmt"
	"unsafe"
)

// Alignment is the byte boundary every acquired buffer starts on.
const Alignment = 64

// Allocation errors.
var (
	ErrBadSize = errors.New("buffer: size must be positive")
	ErrAlign   = errors.New("buffer: cannot satisfy alignment")
)

// Aligned is a zero-initialized storage region whose first byte sits on
// a 64-byte boundary. A handle is owned by exactly one caller between
// Acquire and Release.
type Aligned struct {
	raw  []byte
	data []byte
	pool *Pool
}

func (a *Aligned) reserve(byteSize int) error {
	if cap(a.raw) < byteSize+Alignment {
		a.raw = make([]byte, byteSize+Alignment)
	}
	a.raw = a.raw[:byteSize+Alignment]

	addr := uintptr(unsafe.Pointer(&a.raw[0]))
	off := int((Alignment - addr%Alignment) % Alignment)
	a.data = a.raw[off : off+byteSize]

	if uintptr(unsafe.Pointer(&a.data[0]))%Alignment != 0 {
		return fmt.Errorf("%w: base %#x", ErrAlign, addr)
	}

	for i := range a.data {
		a.data[i] = 0
	}

	return nil
}

// Len returns the usable size in bytes.
func (a *Aligned) Len() int { return len(a.data) }

// Bytes returns the aligned region. Valid until Release.
func (a *Aligned) Bytes() []byte { return a.data }

// Float32s views the region as float32 values.
func (a *Aligned) Float32s() []float32 {
	return view[float32](a.data)
}

// Float64s views the region as float64 values.
func (a *Aligned) Float64s() []float64 {
	return view[float64](a.data)
}

// Complex64s views the region as complex64 values.
func (a *Aligned) Complex64s() []complex64 {
	return view[complex64](a.data)
}

// Complex128s views the region as complex128 values.
func (a *Aligned) Complex128s() []complex128 {
	return view[complex128](a.data)
}

// Release returns the buffer to the pool it came from. The handle must
// not be used afterwards; a second Release is a no-op because the
// handle forgets its pool on the first call.
func (a *Aligned) Release() {
	p := a.pool
	if p == nil {
		return
	}
	a.pool = nil
	p.put(a)
}

func view[T any](data []byte) []T {
	var elem T
	size := int(unsafe.Sizeof(elem))
	n := len(data) / size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), n)
}
