package viewmap

import (
	"sync"

	"github.com/strokelab/viewmap/internal/filter"
)

// PointIterator yields the current 2D query position and the rasters
// associated with it. It is the calling contract between the curve-walking
// side of a stylization pipeline and the functors: the pipeline advances
// the iterator along a curve and hands it to Evaluate at each point.
//
// DensityImage and DepthBuffer may return nil when the pipeline carries no
// such raster; functors that need one report a lookup failure.
type PointIterator interface {
	// Point returns the current query position in level-0 pixel coordinates.
	Point() Point

	// DensityImage returns the current result/density image, or nil.
	DensityImage() *GrayMap

	// DepthBuffer returns the current depth buffer, or nil.
	DepthBuffer() *GrayMap
}

// At is a fixed-position PointIterator for single queries and tests.
type At struct {
	P       Point
	Density *GrayMap
	Depth   *GrayMap
}

// Point returns the fixed query position.
func (a At) Point() Point { return a.P }

// DensityImage returns the attached density image, or nil.
func (a At) DensityImage() *GrayMap { return a.Density }

// DepthBuffer returns the attached depth buffer, or nil.
func (a At) DepthBuffer() *GrayMap { return a.Depth }

// UnaryFunction0D is the evaluation contract shared by all point-query
// functors: one scalar result per point, or an error. Implementations hold
// no mutable state beyond their construction-time configuration and are
// safe for concurrent use.
type UnaryFunction0D interface {
	// Name returns a human-readable functor name for diagnostics.
	Name() string

	// Evaluate computes the functor's value at the iterator's current point.
	Evaluate(it PointIterator) (float64, error)
}

// Kind identifies one of the functor variants for the factory.
type Kind int

// The functor kinds.
const (
	KindDensity Kind = iota
	KindLocalAverageDepth
	KindReadMapPixel
	KindReadSteerableViewMapPixel
	KindReadCompleteViewMapPixel
	KindViewMapGradientNorm
)

// Config selects and parameterizes a functor for the New factory.
// Fields irrelevant to the chosen Kind are ignored; zero values of Sigma
// and MaskSize select the defaults.
type Config struct {
	Kind        Kind
	Sigma       float64     // KindDensity
	MaskSize    float64     // KindLocalAverageDepth
	MapName     string      // KindReadMapPixel
	Orientation Orientation // KindReadSteerableViewMapPixel
	Level       int         // all pyramid-backed kinds
}

// New builds the functor described by cfg. Pyramid-backed kinds resolve
// their map in store and validate level and orientation eagerly; store may
// be nil for KindDensity and KindLocalAverageDepth.
func New(store *MapStore, cfg Config) (UnaryFunction0D, error) {
	switch cfg.Kind {
	case KindDensity:
		return NewDensity(cfg.Sigma), nil
	case KindLocalAverageDepth:
		return NewLocalAverageDepth(cfg.MaskSize), nil
	case KindReadMapPixel:
		return NewReadMapPixel(store, cfg.MapName, cfg.Level)
	case KindReadSteerableViewMapPixel:
		return NewReadSteerableViewMapPixel(store, cfg.Orientation, cfg.Level)
	case KindReadCompleteViewMapPixel:
		return NewReadCompleteViewMapPixel(store, cfg.Level)
	case KindViewMapGradientNorm:
		return NewViewMapGradientNorm(store, cfg.Level)
	}
	return nil, ErrUnknownKind
}

// windowed bundles a Gaussian filter with a pool of window buffers, shared
// by the two smoothing functors. The pool keeps per-query gathering
// allocation-free without introducing shared mutable state.
type windowed struct {
	g   *filter.Gaussian
	win sync.Pool
}

func newWindowed(sigma float64) *windowed {
	w := &windowed{g: filter.Cached(sigma)}
	n := w.g.MaskSize()
	w.win.New = func() any {
		buf := make([]float32, n*n)
		return &buf
	}
	return w
}

// at gathers the clamped sample window centered on p and returns the
// Gaussian-weighted sum.
func (w *windowed) at(img *GrayMap, p Point) float64 {
	bufp := w.win.Get().(*[]float32)
	window := *bufp

	b := w.g.Bound()
	cx, cy := int(p.X), int(p.Y)
	i := 0
	for dy := -b; dy <= b; dy++ {
		for dx := -b; dx <= b; dx++ {
			window[i] = img.PixelClamped(cx+dx, cy+dy)
			i++
		}
	}

	// Window length always matches the mask by construction.
	v, _ := w.g.Compute(window)
	w.win.Put(bufp)
	return v
}

// levelCheck validates a pyramid level against a pyramid's depth.
func levelCheck(p *Pyramid, level int) error {
	if level < 0 || level >= p.NumLevels() {
		return ErrLevelOutOfRange
	}
	return nil
}
