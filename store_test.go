package viewmap

import (
	"errors"
	"testing"
)

func flatMap(w, h int, v float32) *GrayMap {
	m := NewGrayMap(w, h)
	m.Fill(v)
	return m
}

func testStore(t *testing.T) *MapStore {
	t.Helper()
	s, err := BuildMapStore(
		WithMap("result", flatMap(32, 32, 1)),
		WithSteerable(
			flatMap(32, 32, 10),
			flatMap(32, 32, 20),
			flatMap(32, 32, 30),
			flatMap(32, 32, 40),
		),
		WithComplete(flatMap(32, 32, 5)),
	)
	if err != nil {
		t.Fatalf("BuildMapStore: %v", err)
	}
	return s
}

func TestBuildMapStore(t *testing.T) {
	s := testStore(t)

	p, err := s.Map("result")
	if err != nil {
		t.Fatalf("Map(result): %v", err)
	}
	if got := p.NumLevels(); got != 6 {
		t.Errorf("result pyramid levels = %d, want 6", got)
	}

	for o := East; o < NumOrientations; o++ {
		p, err := s.Steerable(o)
		if err != nil {
			t.Fatalf("Steerable(%v): %v", o, err)
		}
		want := float32(10 * (int(o) + 1))
		if got := p.Pixel(0, 3, 3); got != want {
			t.Errorf("Steerable(%v) pixel = %v, want %v", o, got, want)
		}
	}

	if _, err := s.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
}

func TestMapStoreUnknownMap(t *testing.T) {
	s := testStore(t)
	if _, err := s.Map("nope"); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("Map(nope) err = %v, want ErrUnknownMap", err)
	}
	if _, err := s.LevelDepth("nope"); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("LevelDepth(nope) err = %v, want ErrUnknownMap", err)
	}
}

func TestMapStoreInvalidOrientation(t *testing.T) {
	s := testStore(t)
	for _, o := range []Orientation{-1, 4, 17} {
		if _, err := s.Steerable(o); !errors.Is(err, ErrInvalidOrientation) {
			t.Errorf("Steerable(%d) err = %v, want ErrInvalidOrientation", int(o), err)
		}
	}
}

func TestMapStoreMissingMaps(t *testing.T) {
	s, err := BuildMapStore(WithMap("only", flatMap(8, 8, 1)))
	if err != nil {
		t.Fatalf("BuildMapStore: %v", err)
	}
	if _, err := s.Steerable(East); !errors.Is(err, ErrNoSteerableMaps) {
		t.Errorf("Steerable err = %v, want ErrNoSteerableMaps", err)
	}
	if _, err := s.Complete(); !errors.Is(err, ErrNoCompleteMap) {
		t.Errorf("Complete err = %v, want ErrNoCompleteMap", err)
	}
}

func TestBuildMapStoreEmptySource(t *testing.T) {
	if _, err := BuildMapStore(WithMap("bad", nil)); !errors.Is(err, ErrEmptySource) {
		t.Errorf("empty named source err = %v, want ErrEmptySource", err)
	}
	_, err := BuildMapStore(WithSteerable(flatMap(8, 8, 1), nil, flatMap(8, 8, 1), flatMap(8, 8, 1)))
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("empty steerable source err = %v, want ErrEmptySource", err)
	}
	if _, err := BuildMapStore(WithComplete(NewGrayMap(0, 0))); !errors.Is(err, ErrEmptySource) {
		t.Errorf("empty complete source err = %v, want ErrEmptySource", err)
	}
}

func TestMapStoreReadPixel(t *testing.T) {
	s := testStore(t)

	v, err := s.ReadPixel("result", 0, 5, 5)
	if err != nil {
		t.Fatalf("ReadPixel: %v", err)
	}
	if v != 1 {
		t.Errorf("ReadPixel = %v, want 1", v)
	}

	if _, err := s.ReadPixel("result", 99, 0, 0); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("ReadPixel bad level err = %v, want ErrLevelOutOfRange", err)
	}
	if _, err := s.ReadSteerablePixel(NorthEast, -1, 0, 0); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("ReadSteerablePixel bad level err = %v, want ErrLevelOutOfRange", err)
	}
	if _, err := s.ReadCompletePixel(99, 0, 0); !errors.Is(err, ErrLevelOutOfRange) {
		t.Errorf("ReadCompletePixel bad level err = %v, want ErrLevelOutOfRange", err)
	}

	if v, err := s.ReadSteerablePixel(North, 1, 2, 2); err != nil || v != 30 {
		t.Errorf("ReadSteerablePixel(North) = %v, %v, want 30, nil", v, err)
	}
	if v, err := s.ReadCompletePixel(2, 1, 1); err != nil || v != 5 {
		t.Errorf("ReadCompletePixel = %v, %v, want 5, nil", v, err)
	}
}

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{East, "E"},
		{NorthEast, "NE"},
		{North, "N"},
		{NorthWest, "NW"},
		{Orientation(9), "Orientation(9)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Orientation(%d).String() = %q, want %q", int(tt.o), got, tt.want)
		}
	}
	if Orientation(4).Valid() {
		t.Error("Orientation(4).Valid() = true")
	}
	if !NorthWest.Valid() {
		t.Error("NorthWest.Valid() = false")
	}
}
