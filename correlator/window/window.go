package window

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Shape identifies a prototype-filter shape.
type Shape int

const (
	// ShapeSinc is the plain normalized-sinc prototype.
	ShapeSinc Shape = iota
	// ShapeHanning multiplies the sinc base by a Hanning window.
	ShapeHanning
	// ShapeHamming multiplies the sinc base by a Hamming window.
	ShapeHamming
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeSinc:
		return "sinc"
	case ShapeHanning:
		return "hanning"
	case ShapeHamming:
		return "hamming"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// DefaultTaps is the tap count the filter bank uses unless configured
// otherwise.
const DefaultTaps = 4

// Option configures prototype generation.
type Option func(*config)

type config struct {
	perTap   bool
	sincBase bool
}

func defaultConfig() config {
	return config{sincBase: true}
}

// WithPerTapWindow evaluates the shape window across each tap slice of
// channelCount coefficients instead of the full filter span. This is a
// documented alternate mode; the default full-span window is the
// standard construction.
func WithPerTapWindow() Option {
	return func(c *config) {
		c.perTap = true
	}
}

// WithoutSincBase drops the sinc lowpass base and returns the raw shape
// window. Mostly useful for inspecting the window itself.
func WithoutSincBase() Option {
	return func(c *config) {
		c.sincBase = false
	}
}

// Prototype returns the filter coefficients for a bank of channelCount
// channels and the given tap count, in the requested precision. The
// result always has length channelCount*taps and depends only on the
// arguments.
func Prototype[F algofft.Float](channelCount, taps int, shape Shape, opts ...Option) ([]F, error) {
	coeffs, err := prototype64(channelCount, taps, shape, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]F, len(coeffs))
	for i, v := range coeffs {
		out[i] = F(v)
	}

	return out, nil
}

func prototype64(channelCount, taps int, shape Shape, opts ...Option) ([]float64, error) {
	if err := validateDims(channelCount, taps); err != nil {
		return nil, err
	}
	if shape != ShapeSinc && shape != ShapeHanning && shape != ShapeHamming {
		return nil, fmt.Errorf("%w: %d", errUnknownShape, int(shape))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := channelCount * taps
	coeffs := make([]float64, n)

	if cfg.sincBase {
		// Half-sample offset keeps the filter symmetric about the
		// center of the even-length span.
		center := float64(taps*channelCount)/2 - 0.5
		for i := range coeffs {
			coeffs[i] = Sinc((float64(i) - center) / float64(channelCount))
		}
	} else {
		for i := range coeffs {
			coeffs[i] = 1
		}
	}

	if shape != ShapeSinc {
		vecmath.MulBlockInPlace(coeffs, shapeWindow(shape, n, channelCount, cfg.perTap))
	}

	return coeffs, nil
}

func shapeWindow(shape Shape, n, channelCount int, perTap bool) []float64 {
	eval := Hanning
	if shape == ShapeHamming {
		eval = Hamming
	}

	span := n
	if perTap {
		span = channelCount
	}

	w := make([]float64, n)
	den := float64(span - 1)
	for i := range w {
		if den == 0 {
			w[i] = eval(0)
			continue
		}
		w[i] = eval(2 * math.Pi * float64(i%span) / den)
	}

	return w
}

// Sinc returns the normalized sinc sin(pi*x)/(pi*x), with the removable
// singularity at x == 0 evaluating to exactly 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// Hanning evaluates the Hanning window 0.5 - 0.5*cos(x).
func Hanning(x float64) float64 {
	return 0.5 - 0.5*math.Cos(x)
}

// Hamming evaluates the Hamming window 0.54 - 0.46*cos(x).
func Hamming(x float64) float64 {
	return 0.54 - 0.46*math.Cos(x)
}
