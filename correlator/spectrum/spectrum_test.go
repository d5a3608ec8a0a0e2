package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	in := []complex128{3 + 4i, 0, -1i, 2}

	mag := Magnitude(in)
	pow := Power(in)

	wantMag := []float64{5, 0, 1, 2}
	wantPow := []float64{25, 0, 1, 4}

	for i := range in {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Fatalf("magnitude[%d]=%v, want %v", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Fatalf("power[%d]=%v, want %v", i, pow[i], wantPow[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if Magnitude(nil) != nil {
		t.Fatal("Magnitude(nil) != nil")
	}
	if Power(nil) != nil {
		t.Fatal("Power(nil) != nil")
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0, 1}
	im := []float64{4, 2, 0}
	dst := make([]float64, 3)

	PowerFromParts(dst, re, im)
	want := []float64{25, 4, 1}
	for i := range dst {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("power[%d]=%v, want %v", i, dst[i], want[i])
		}
	}

	MagnitudeFromParts(dst, re, im)
	wantM := []float64{5, 2, 1}
	for i := range dst {
		if math.Abs(dst[i]-wantM[i]) > 1e-12 {
			t.Fatalf("magnitude[%d]=%v, want %v", i, dst[i], wantM[i])
		}
	}
}
