package vec

import "fmt"

// Element enumerates the value types the primitives operate on.
type Element interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Complex enumerates the complex instantiations of the primitives.
type Complex interface {
	~complex64 | ~complex128
}

// ScaleInPlace multiplies n strided elements of x by alpha:
//
//	x[i*inc] *= alpha  for i in [0, n)
//
// The stride must be non-negative; a zero stride is only valid for
// n <= 1. The walk is a replacement for cblas_[sdcz]scal.
func ScaleInPlace[T Element](n int, alpha T, x []T, inc int) error {
	if err := checkAccess(n, len(x), inc); err != nil {
		return err
	}

	idx := 0
	for i := 0; i < n; i++ {
		x[idx] *= alpha
		idx += inc
	}

	return nil
}

// DotcSub returns the conjugate dot product of two strided sequences:
//
//	sum over i in [0, n) of conj(x[i*incX]) * y[i*incY]
//
// Accumulation happens in a single left-to-right pass; the summation
// order is part of the contract and must not be reordered. The walk is
// a replacement for cblas_[cz]dotc_sub.
func DotcSub[C Complex](n int, x []C, incX int, y []C, incY int) (C, error) {
	var zero C

	if err := checkAccess(n, len(x), incX); err != nil {
		return zero, err
	}
	if err := checkAccess(n, len(y), incY); err != nil {
		return zero, err
	}

	accum := zero
	ix, iy := 0, 0
	for i := 0; i < n; i++ {
		accum += conj(x[ix]) * y[iy]
		ix += incX
		iy += incY
	}

	return accum, nil
}

// Dotc returns conj(a)*b summed over two equal-length contiguous
// sequences. It is DotcSub with unit strides.
func Dotc[C Complex](x, y []C) (C, error) {
	n := len(x)
	if len(y) != n {
		var zero C
		return zero, fmt.Errorf("%w: %d vs %d", ErrShortSlice, n, len(y))
	}
	return DotcSub(n, x, 1, y, 1)
}

func checkAccess(n, length, inc int) error {
	if n <= 0 {
		if n < 0 {
			return fmt.Errorf("vec: negative count %d", n)
		}
		return nil
	}
	if inc < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeStride, inc)
	}
	if inc == 0 && n > 1 {
		return fmt.Errorf("%w: n=%d", ErrZeroStride, n)
	}
	if need := 1 + (n-1)*inc; need > length {
		return fmt.Errorf("%w: need %d elements, have %d", ErrShortSlice, need, length)
	}
	return nil
}

func conj[C Complex](z C) C {
	switch v := any(z).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(C)
	case complex128:
		return any(complex(real(v), -imag(v))).(C)
	default:
		return z
	}
}
