package viewmap

import "fmt"

// ReadMapPixel reads a single unfiltered pixel from a named pyramid at a
// fixed level. The map name is resolved once at construction; evaluation
// never re-resolves it.
type ReadMapPixel struct {
	pyr   *Pyramid
	level int
}

// NewReadMapPixel builds the functor for the named map and pyramid level.
// An unknown name or out-of-range level is a construction error.
func NewReadMapPixel(store *MapStore, name string, level int) (*ReadMapPixel, error) {
	pyr, err := store.Map(name)
	if err != nil {
		return nil, err
	}
	if err := levelCheck(pyr, level); err != nil {
		return nil, fmt.Errorf("map %q: %w", name, err)
	}
	return &ReadMapPixel{pyr: pyr, level: level}, nil
}

// Name returns "ReadMapPixelF0D".
func (r *ReadMapPixel) Name() string {
	return "ReadMapPixelF0D"
}

// Evaluate returns the pixel under the iterator's current point at the
// configured level. The level-0 coordinate is divided by 2^level
// (truncating) to address the coarser level.
func (r *ReadMapPixel) Evaluate(it PointIterator) (float64, error) {
	p := it.Point()
	return float64(r.pyr.PixelClamped(r.level, int(p.X)>>r.level, int(p.Y)>>r.level)), nil
}

// ReadSteerableViewMapPixel reads a single pixel from one of the four
// orientation pyramids at a fixed level.
type ReadSteerableViewMapPixel struct {
	pyr         *Pyramid
	orientation Orientation
	level       int
}

// NewReadSteerableViewMapPixel builds the functor for the given orientation
// (one of East, NorthEast, North, NorthWest) and pyramid level. An invalid
// orientation or out-of-range level is a construction error.
func NewReadSteerableViewMapPixel(store *MapStore, o Orientation, level int) (*ReadSteerableViewMapPixel, error) {
	pyr, err := store.Steerable(o)
	if err != nil {
		return nil, err
	}
	if err := levelCheck(pyr, level); err != nil {
		return nil, fmt.Errorf("steerable map %v: %w", o, err)
	}
	return &ReadSteerableViewMapPixel{pyr: pyr, orientation: o, level: level}, nil
}

// Name returns "ReadSteerableViewMapPixelF0D".
func (r *ReadSteerableViewMapPixel) Name() string {
	return "ReadSteerableViewMapPixelF0D"
}

// Evaluate returns the orientation-pyramid pixel under the iterator's
// current point at the configured level.
func (r *ReadSteerableViewMapPixel) Evaluate(it PointIterator) (float64, error) {
	p := it.Point()
	return float64(r.pyr.PixelClamped(r.level, int(p.X)>>r.level, int(p.Y)>>r.level)), nil
}

// ReadCompleteViewMapPixel reads a single pixel from the combined
// (non-oriented) view-map pyramid at a fixed level.
type ReadCompleteViewMapPixel struct {
	pyr   *Pyramid
	level int
}

// NewReadCompleteViewMapPixel builds the functor for the given pyramid
// level of the combined view map.
func NewReadCompleteViewMapPixel(store *MapStore, level int) (*ReadCompleteViewMapPixel, error) {
	pyr, err := store.Complete()
	if err != nil {
		return nil, err
	}
	if err := levelCheck(pyr, level); err != nil {
		return nil, fmt.Errorf("complete map: %w", err)
	}
	return &ReadCompleteViewMapPixel{pyr: pyr, level: level}, nil
}

// Name returns "ReadCompleteViewMapPixelF0D".
func (r *ReadCompleteViewMapPixel) Name() string {
	return "ReadCompleteViewMapPixelF0D"
}

// Evaluate returns the combined-pyramid pixel under the iterator's current
// point at the configured level.
func (r *ReadCompleteViewMapPixel) Evaluate(it PointIterator) (float64, error) {
	p := it.Point()
	return float64(r.pyr.PixelClamped(r.level, int(p.X)>>r.level, int(p.Y)>>r.level)), nil
}
