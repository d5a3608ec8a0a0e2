package pfb

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/ctaylor-physics/lsl-ZeroWterms/correlator/window"
	"github.com/ctaylor-physics/lsl-ZeroWterms/internal/testutil"
)

func TestChannelizeZeroBlock(t *testing.T) {
	for _, channels := range []int{4, 8, 64} {
		c, err := New[float64, complex128](channels)
		if err != nil {
			t.Fatalf("New(%d): %v", channels, err)
		}

		block := make([]complex128, c.BlockLength())
		dst := make([]complex128, channels)

		if err := c.Channelize(dst, block); err != nil {
			t.Fatalf("Channelize: %v", err)
		}

		for k, v := range dst {
			if v != 0 {
				t.Fatalf("channels=%d bin %d = %v, want 0", channels, k, v)
			}
		}
	}
}

func TestChannelizeHanningDCConcentration(t *testing.T) {
	// 16 unit samples through a 4-channel, 4-tap Hanning bank put all
	// energy into the DC bin.
	c, err := New[float64, complex128](4, WithShape(window.ShapeHanning))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := testutil.OnesComplex(16)
	dst := make([]complex128, 4)

	if err := c.Channelize(dst, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}

	dc := cmplx.Abs(dst[0])
	if dc == 0 {
		t.Fatal("DC bin is zero for a DC input")
	}

	for k := 1; k < len(dst); k++ {
		if leak := cmplx.Abs(dst[k]); leak > 0.02*dc {
			t.Fatalf("bin %d leak %v exceeds 2%% of DC %v", k, leak, dc)
		}
	}
}

func TestChannelizeTonePeaksInItsBin(t *testing.T) {
	// A complex exponential at bin m's center frequency through a
	// rectangular-equivalent prototype lands entirely in bin m.
	const channels, taps, bin = 8, 4, 3

	c, err := New[float64, complex128](channels,
		WithWindowOptions(window.WithoutSincBase()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := testutil.Tone(bin, channels, taps)
	dst := make([]complex128, channels)

	if err := c.Channelize(dst, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}

	// Unnormalized transform of taps coherent blocks is channels*taps;
	// the default 1/channels gain leaves taps.
	if got := cmplx.Abs(dst[bin]); math.Abs(got-taps) > 1e-9 {
		t.Fatalf("bin %d magnitude %v, want %v", bin, got, float64(taps))
	}

	for k := range dst {
		if k == bin {
			continue
		}
		if leak := cmplx.Abs(dst[k]); leak > 1e-9 {
			t.Fatalf("bin %d leak %v, want 0", k, leak)
		}
	}
}

func TestChannelizeDeterministicAndPure(t *testing.T) {
	c, err := New[float64, complex128](16, WithShape(window.ShapeHamming))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := testutil.DeterministicComplexNoise(7, 1.0, c.BlockLength())
	orig := append([]complex128(nil), block...)

	a := make([]complex128, 16)
	b := make([]complex128, 16)

	if err := c.Channelize(a, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}
	if err := c.Channelize(b, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}

	for k := range a {
		if a[k] != b[k] {
			t.Fatalf("bin %d not bit-reproducible: %v vs %v", k, a[k], b[k])
		}
	}

	for i := range block {
		if block[i] != orig[i] {
			t.Fatalf("input sample %d mutated: %v -> %v", i, orig[i], block[i])
		}
	}
}

func TestChannelizeShapeErrors(t *testing.T) {
	c, err := New[float64, complex128](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	dst := make([]complex128, 8)

	if err := c.Channelize(dst, make([]complex128, 31)); !errors.Is(err, ErrBlockLength) {
		t.Fatalf("short block: got %v, want ErrBlockLength", err)
	}
	if err := c.Channelize(dst, make([]complex128, 33)); !errors.Is(err, ErrBlockLength) {
		t.Fatalf("long block: got %v, want ErrBlockLength", err)
	}
	if err := c.Channelize(make([]complex128, 7), make([]complex128, 32)); !errors.Is(err, ErrSpectrumLength) {
		t.Fatalf("short dst: got %v, want ErrSpectrumLength", err)
	}

	// dst must stay untouched on failure.
	for i := range dst {
		dst[i] = complex(float64(i), 0)
	}
	_ = c.Channelize(dst, make([]complex128, 3))
	for i := range dst {
		if dst[i] != complex(float64(i), 0) {
			t.Fatal("failed call wrote into dst")
		}
	}
}

func TestNewRejectsBadChannelCount(t *testing.T) {
	if _, err := New[float64, complex128](0); !errors.Is(err, ErrBadChannels) {
		t.Fatalf("got %v, want ErrBadChannels", err)
	}
}

func TestGainOption(t *testing.T) {
	block := testutil.OnesComplex(16)

	unit, err := New[float64, complex128](4, WithGain(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	def, err := New[float64, complex128](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a := make([]complex128, 4)
	b := make([]complex128, 4)
	if err := unit.Channelize(a, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}
	if err := def.Channelize(b, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}

	for k := range a {
		if cmplx.Abs(a[k]-4*b[k]) > 1e-9 {
			t.Fatalf("bin %d: unit gain %v vs 4x default %v", k, a[k], 4*b[k])
		}
	}
}

func TestFloat32Channelizer(t *testing.T) {
	c, err := New[float32, complex64](4, WithShape(window.ShapeHanning))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := make([]complex64, 16)
	for i := range block {
		block[i] = 1
	}
	dst := make([]complex64, 4)

	if err := c.Channelize(dst, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}

	dc := float64(real(dst[0])*real(dst[0]) + imag(dst[0])*imag(dst[0]))
	if dc == 0 {
		t.Fatal("DC bin is zero")
	}
	for k := 1; k < 4; k++ {
		leak := float64(real(dst[k])*real(dst[k]) + imag(dst[k])*imag(dst[k]))
		if leak > 0.001*dc {
			t.Fatalf("bin %d power leak %v too large vs DC %v", k, leak, dc)
		}
	}
}

func TestChannelizeAll(t *testing.T) {
	c, err := New[float64, complex128](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	blocks := make([][]complex128, 3)
	dst := make([][]complex128, 3)
	for i := range blocks {
		blocks[i] = make([]complex128, 16)
		for n := range blocks[i] {
			blocks[i][n] = complex(float64(i+1), 0)
		}
		dst[i] = make([]complex128, 4)
	}

	if err := c.ChannelizeAll(dst, blocks); err != nil {
		t.Fatalf("ChannelizeAll: %v", err)
	}

	// Scaling the input scales the spectrum linearly.
	for k := range dst[0] {
		if cmplx.Abs(dst[1][k]-2*dst[0][k]) > 1e-9 {
			t.Fatalf("bin %d: %v vs 2x %v", k, dst[1][k], dst[0][k])
		}
		if cmplx.Abs(dst[2][k]-3*dst[0][k]) > 1e-9 {
			t.Fatalf("bin %d: %v vs 3x %v", k, dst[2][k], dst[0][k])
		}
	}

	if err := c.ChannelizeAll(dst[:2], blocks); err == nil {
		t.Fatal("expected error for mismatched row counts")
	}
}

func TestChannelizeConcurrent(t *testing.T) {
	c, err := New[float64, complex128](16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	block := make([]complex128, c.BlockLength())
	for i := range block {
		block[i] = complex(float64(i%5), float64(i%3))
	}

	want := make([]complex128, 16)
	if err := c.Channelize(want, block); err != nil {
		t.Fatalf("Channelize: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dst := make([]complex128, 16)
			for i := 0; i < 50; i++ {
				if err := c.Channelize(dst, block); err != nil {
					errs <- err
					return
				}
				for k := range dst {
					if dst[k] != want[k] {
						errs <- errors.New("concurrent result differs")
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		t.Fatalf("concurrent channelize: %v", err)
	}
}
