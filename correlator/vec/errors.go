package vec

import "errors"

// Degenerate access-pattern errors. A zero stride with more than one
// element would read the same location forever; negative strides are
// not representable with slice-based storage.
var (
	ErrZeroStride     = errors.New("vec: zero stride with more than one element")
	ErrNegativeStride = errors.New("vec: negative stride")
	ErrShortSlice     = errors.New("vec: slice shorter than count and stride require")
)
