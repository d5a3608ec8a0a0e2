package pfb

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/buffer"
	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/fft"
	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/vec"
	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/window"
)

// Channelizer converts fixed-size blocks of complex samples into
// complex spectra of channelCount bins.
//
// The type parameters F and C select precision: float32/complex64 or
// float64/complex128. All configuration is read once at construction;
// after New the channelizer is immutable and Channelize is safe for
// concurrent use: the prototype is read-only, scratch space comes from
// an internal pool per call, and the shared transform plan is executed
// with per-call buffers the same way FFTW plans are shared across
// worker threads.
type Channelizer[F algofft.Float, C algofft.Complex] struct {
	channelCount int
	taps         int
	shape        window.Shape
	gain         float64

	proto  []F // prototype filter, len channelCount*taps
	protoC []C // same coefficients promoted to complex for the hot loop

	plan *algofft.Plan[C]
	pool *buffer.Pool
}

// Channelizer64 is the float64 specialization of Channelizer.
type Channelizer64 = Channelizer[float64, complex128]

// Channelizer32 is the float32 specialization of Channelizer.
type Channelizer32 = Channelizer[float32, complex64]

// Option configures a Channelizer.
type Option func(*config)

type config struct {
	taps    int
	shape   window.Shape
	gain    float64
	gainSet bool
	winOpts []window.Option
}

func defaultConfig() config {
	return config{
		taps:  window.DefaultTaps,
		shape: window.ShapeSinc,
	}
}

// WithTaps sets the tap count. Values <= 0 are ignored; the default
// is 4.
func WithTaps(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.taps = n
		}
	}
}

// WithShape selects the prototype-filter shape.
func WithShape(s window.Shape) Option {
	return func(c *config) {
		c.shape = s
	}
}

// WithGain sets the normalization factor applied to every output bin.
// The default is 1/channelCount, which keeps downstream accumulation
// magnitudes well conditioned.
func WithGain(g float64) Option {
	return func(c *config) {
		c.gain = g
		c.gainSet = true
	}
}

// WithWindowOptions forwards options to the prototype construction.
func WithWindowOptions(opts ...window.Option) Option {
	return func(c *config) {
		c.winOpts = append(c.winOpts, opts...)
	}
}

// New builds a channelizer for the given channel count.
func New[F algofft.Float, C algofft.Complex](channelCount int, opts ...Option) (*Channelizer[F, C], error) {
	if channelCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadChannels, channelCount)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.gainSet {
		cfg.gain = 1 / float64(channelCount)
	}

	proto, err := window.Prototype[F](channelCount, cfg.taps, cfg.shape, cfg.winOpts...)
	if err != nil {
		return nil, err
	}

	protoC := make([]C, len(proto))
	for i, v := range proto {
		protoC[i] = toComplex[F, C](v)
	}

	plan, err := fft.ForwardPlan[C](channelCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}

	return &Channelizer[F, C]{
		channelCount: channelCount,
		taps:         cfg.taps,
		shape:        cfg.shape,
		gain:         cfg.gain,
		proto:        proto,
		protoC:       protoC,
		plan:         plan,
		pool:         buffer.NewPool(),
	}, nil
}

// ChannelCount returns the number of output channels.
func (c *Channelizer[F, C]) ChannelCount() int { return c.channelCount }

// Taps returns the tap count.
func (c *Channelizer[F, C]) Taps() int { return c.taps }

// Shape returns the prototype-filter shape.
func (c *Channelizer[F, C]) Shape() window.Shape { return c.shape }

// Gain returns the normalization factor applied per output bin.
func (c *Channelizer[F, C]) Gain() float64 { return c.gain }

// BlockLength returns the required input block length,
// channelCount*taps.
func (c *Channelizer[F, C]) BlockLength() int { return c.channelCount * c.taps }

// Coefficients returns the prototype filter. The slice is shared and
// must not be modified.
func (c *Channelizer[F, C]) Coefficients() []F { return c.proto }

// Channelize transforms one sample block into dst. The block is read
// only, dst must hold channelCount values, and dst is written only
// after the whole pipeline has succeeded; a failed call leaves it
// untouched. Channel 0 is the DC bin in natural transform order.
func (c *Channelizer[F, C]) Channelize(dst []C, block []C) error {
	if len(block) != c.channelCount*c.taps {
		return fmt.Errorf("%w: got %d, want %d", ErrBlockLength, len(block), c.channelCount*c.taps)
	}
	if len(dst) != c.channelCount {
		return fmt.Errorf("%w: got %d, want %d", ErrSpectrumLength, len(dst), c.channelCount)
	}

	work, workBuf, err := buffer.AcquireSlice[C](c.pool, 2*c.channelCount)
	if err != nil {
		return err
	}
	defer work.Release()

	sum := workBuf[:c.channelCount]
	out := workBuf[c.channelCount:]

	// Branch summation: tap t contributes its slice of the prototype
	// times its sub-block, accumulated channel-wise.
	for t := 0; t < c.taps; t++ {
		base := t * c.channelCount
		for k := 0; k < c.channelCount; k++ {
			sum[k] += block[base+k] * c.protoC[base+k]
		}
	}

	if err := c.plan.Forward(out, sum); err != nil {
		return fmt.Errorf("%w: %v", ErrTransform, err)
	}

	if c.gain != 1 {
		if err := vec.ScaleInPlace(c.channelCount, toComplex[F, C](F(c.gain)), out, 1); err != nil {
			return err
		}
	}

	copy(dst, out)

	return nil
}

// ChannelizeAll channelizes independent blocks into the matching dst
// rows. Rows are processed in order; the first failure aborts the call
// with rows beyond it unwritten.
func (c *Channelizer[F, C]) ChannelizeAll(dst [][]C, blocks [][]C) error {
	if len(dst) != len(blocks) {
		return fmt.Errorf("%w: %d outputs for %d blocks", ErrSpectrumLength, len(dst), len(blocks))
	}

	for i := range blocks {
		if err := c.Channelize(dst[i], blocks[i]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}

	return nil
}

func toComplex[F algofft.Float, C algofft.Complex](v F) C {
	var c C
	switch p := any(&c).(type) {
	case *complex64:
		*p = complex(float32(v), 0)
	case *complex128:
		*p = complex(float64(v), 0)
	}
	return c
}
