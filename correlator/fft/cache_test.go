package fft

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestForwardPlanCachesByLengthAndPrecision(t *testing.T) {
	Reset()

	p1, err := ForwardPlan[complex128](64)
	if err != nil {
		t.Fatalf("ForwardPlan: %v", err)
	}
	p2, err := ForwardPlan[complex128](64)
	if err != nil {
		t.Fatalf("ForwardPlan: %v", err)
	}
	if p1 != p2 {
		t.Fatal("same length and precision returned distinct plans")
	}

	p3, err := ForwardPlan[complex128](128)
	if err != nil {
		t.Fatalf("ForwardPlan: %v", err)
	}
	if p3 == p1 {
		t.Fatal("different lengths share a plan")
	}

	q, err := ForwardPlan[complex64](64)
	if err != nil {
		t.Fatalf("ForwardPlan[complex64]: %v", err)
	}
	if q == nil {
		t.Fatal("nil complex64 plan")
	}
}

func TestForwardPlanRejectsBadLength(t *testing.T) {
	if _, err := ForwardPlan[complex128](0); !errors.Is(err, ErrBadLength) {
		t.Fatalf("got %v, want ErrBadLength", err)
	}
	if _, err := ForwardPlan[complex128](-4); !errors.Is(err, ErrBadLength) {
		t.Fatalf("got %v, want ErrBadLength", err)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	Reset()
	defer Reset()

	if _, err := ForwardPlan[complex128](256); err != nil {
		t.Fatalf("ForwardPlan: %v", err)
	}
	if _, err := ForwardPlan[complex64](32); err != nil {
		t.Fatalf("ForwardPlan: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plans.txt")
	if err := SaveManifest(path); err != nil {
		t.Fatalf("SaveManifest: %v", err)
	}

	Reset()
	if Loaded() {
		t.Fatal("Loaded() true after Reset")
	}

	ok, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !ok {
		t.Fatal("LoadManifest returned false for existing manifest")
	}
	if !Loaded() {
		t.Fatal("Loaded() false after successful load")
	}

	global.mu.Lock()
	n := len(global.plans)
	global.mu.Unlock()
	if n != 2 {
		t.Fatalf("cache holds %d plans after load, want 2", n)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	Reset()
	defer Reset()

	ok, err := LoadManifest(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("missing manifest should not error: %v", err)
	}
	if ok || Loaded() {
		t.Fatal("missing manifest reported as loaded")
	}
}

func TestLoadManifestRejectsGarbage(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("complex96 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for unknown precision")
	}
}
