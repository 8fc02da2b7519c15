package viewmap

import (
	"errors"
	"math"
	"testing"
)

// linearStore builds a store whose complete map is the linear field
// f(x, y) = a*x + b*y on a w x h raster.
func linearStore(t *testing.T, w, h int, a, b float32) *MapStore {
	t.Helper()
	m := NewGrayMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetPixel(x, y, a*float32(x)+b*float32(y))
		}
	}
	s, err := BuildMapStore(WithComplete(m))
	if err != nil {
		t.Fatalf("BuildMapStore: %v", err)
	}
	return s
}

func TestViewMapGradientNormLinearField(t *testing.T) {
	// Box downsampling keeps a linear field linear, and the difference
	// stride matches each level's resolution, so the norm is the same at
	// every level.
	const a, b = 0.5, 0.25
	s := linearStore(t, 64, 64, a, b)
	want := math.Hypot(a, b)

	for level := 0; level <= 3; level++ {
		fn, err := NewViewMapGradientNorm(s, level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		for _, p := range []Point{Pt(20, 20), Pt(8, 33), Pt(16, 16)} {
			got, err := fn.Evaluate(At{P: p})
			if err != nil {
				t.Fatalf("level %d point %v: %v", level, p, err)
			}
			if math.Abs(got-want) > 1e-4 {
				t.Errorf("level %d point %v: norm = %v, want %v", level, p, got, want)
			}
		}
	}
}

func TestViewMapGradientNormFlatField(t *testing.T) {
	s, err := BuildMapStore(WithComplete(flatMap(32, 32, 9)))
	if err != nil {
		t.Fatal(err)
	}
	fn, err := NewViewMapGradientNorm(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := fn.Evaluate(At{P: Pt(10, 10)})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("flat field norm = %v, want 0", got)
	}
}

func TestViewMapGradientNormNonNegative(t *testing.T) {
	m := NewGrayMap(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.SetPixel(x, y, float32((x*31+y*17)%7))
		}
	}
	s, err := BuildMapStore(WithComplete(m))
	if err != nil {
		t.Fatal(err)
	}
	fn, err := NewViewMapGradientNorm(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	for y := -2; y < 18; y++ {
		for x := -2; x < 18; x++ {
			got, err := fn.Evaluate(At{P: Pt(float64(x), float64(y))})
			if err != nil {
				t.Fatal(err)
			}
			if got < 0 {
				t.Fatalf("norm at (%d,%d) = %v, negative", x, y, got)
			}
		}
	}
}

func TestViewMapGradientNormEdgeClamp(t *testing.T) {
	// Forward taps past the right/bottom edges clamp to the edge pixel,
	// so the difference there vanishes instead of reading out of bounds.
	const a, b = 1.0, 0.0
	s := linearStore(t, 8, 8, a, b)
	fn, err := NewViewMapGradientNorm(s, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := fn.Evaluate(At{P: Pt(7, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("norm at right edge = %v, want 0 (clamped tap)", got)
	}
}

func TestViewMapGradientNormConfigErrors(t *testing.T) {
	s := linearStore(t, 16, 16, 1, 1)
	if _, err := NewViewMapGradientNorm(s, 99); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("bad level err = %v, want ErrLevelOutOfRange", err)
	}
	if _, err := NewViewMapGradientNorm(&MapStore{}, 0); !errors.Is(err, ErrNoCompleteMap) {
		t.Errorf("empty store err = %v, want ErrNoCompleteMap", err)
	}
}
