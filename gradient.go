package viewmap

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ViewMapGradientNorm returns the magnitude of the local gradient of the
// combined view-map pyramid at a fixed level, used to detect edges and
// transitions in density.
//
// Differences are taken at stride step = 2^level in level-0 coordinates,
// which advances exactly one pixel at the configured level, and divided by
// the stride so the result is expressed per level-0 pixel. On a linear
// field the norm is therefore the same at every level.
type ViewMapGradientNorm struct {
	pyr   *Pyramid
	level int
	step  int
}

// NewViewMapGradientNorm builds the functor for the given level of the
// combined view map.
func NewViewMapGradientNorm(store *MapStore, level int) (*ViewMapGradientNorm, error) {
	pyr, err := store.Complete()
	if err != nil {
		return nil, err
	}
	if err := levelCheck(pyr, level); err != nil {
		return nil, fmt.Errorf("complete map: %w", err)
	}
	return &ViewMapGradientNorm{
		pyr:   pyr,
		level: level,
		step:  1 << level,
	}, nil
}

// Name returns "GetViewMapGradientNormF0D".
func (v *ViewMapGradientNorm) Name() string {
	return "GetViewMapGradientNormF0D"
}

// sample reads the pyramid at the configured level under a level-0
// coordinate, replicating edge pixels for outside taps.
func (v *ViewMapGradientNorm) sample(x, y int) float32 {
	return v.pyr.PixelClamped(v.level, x>>v.level, y>>v.level)
}

// Evaluate returns the Euclidean norm of the forward-difference gradient
// at the iterator's current point. The result is non-negative.
func (v *ViewMapGradientNorm) Evaluate(it PointIterator) (float64, error) {
	p := it.Point()
	x, y := int(p.X), int(p.Y)

	f0 := v.sample(x, y)
	dx := (v.sample(x+v.step, y) - f0) / float32(v.step)
	dy := (v.sample(x, y+v.step) - f0) / float32(v.step)

	return float64(math32.Hypot(dx, dy)), nil
}
