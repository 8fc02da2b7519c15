package viewmap

import (
	"math"

	"github.com/dgravesa/go-parallel/parallel"
	"golang.org/x/image/draw"
)

// Pyramid holds pre-computed downscaled copies of a gray map.
//
// Level 0 is the original full-resolution image; each further level is half
// the size of the previous one (both dimensions) and covers the same logical
// extent, so a level-0 coordinate (x, y) addresses pixel (x >> L, y >> L) at
// level L. The chain continues until the smallest dimension reaches 1 pixel,
// or the configured maximum level count.
//
// A Pyramid is immutable after construction and safe for concurrent reads.
type Pyramid struct {
	levels []*GrayMap // Level 0 = original size
}

// PyramidOption configures pyramid construction.
type PyramidOption func(*pyramidOptions)

type pyramidOptions struct {
	maxLevels int
	scaler    draw.Scaler
}

// WithMaxLevels limits the pyramid to at most n levels. n < 1 means no limit.
func WithMaxLevels(n int) PyramidOption {
	return func(o *pyramidOptions) {
		o.maxLevels = n
	}
}

// WithScaler substitutes a golang.org/x/image/draw scaler (for example
// draw.BiLinear) for the default 2x2 box filter when producing each level.
// Scaler output round-trips through 16-bit gray, so intensities outside
// [0, 1] should stick with the default box filter.
func WithScaler(s draw.Scaler) PyramidOption {
	return func(o *pyramidOptions) {
		o.scaler = s
	}
}

// BuildPyramid creates a pyramid from the source image.
//
// The source becomes level 0 and is not copied; it must not be mutated while
// the pyramid is in use. Returns nil if src is nil or empty.
func BuildPyramid(src *GrayMap, opts ...PyramidOption) *Pyramid {
	if src.IsEmpty() {
		return nil
	}

	var o pyramidOptions
	for _, opt := range opts {
		opt(&o)
	}

	maxDim := max(src.Width(), src.Height())
	numLevels := 1 + int(math.Floor(math.Log2(float64(maxDim))))
	if o.maxLevels > 0 && numLevels > o.maxLevels {
		numLevels = o.maxLevels
	}

	p := &Pyramid{
		levels: make([]*GrayMap, numLevels),
	}
	p.levels[0] = src

	for i := 1; i < numLevels; i++ {
		if o.scaler != nil {
			p.levels[i] = downsampleScaler(p.levels[i-1], o.scaler)
		} else {
			p.levels[i] = downsampleBox(p.levels[i-1])
		}
	}

	Logger().Debug("pyramid built",
		"levels", numLevels,
		"width", src.Width(),
		"height", src.Height(),
	)

	return p
}

// downsampleBox creates a half-size copy of src by averaging 2x2 blocks.
// Rows are processed in parallel.
func downsampleBox(src *GrayMap) *GrayMap {
	srcW, srcH := src.Width(), src.Height()
	dstW := max(1, srcW/2)
	dstH := max(1, srcH/2)
	dst := NewGrayMap(dstW, dstH)

	parallel.For(dstH, func(dy, _ int) {
		for dx := 0; dx < dstW; dx++ {
			sx := dx * 2
			sy := dy * 2

			// Sample the 2x2 block, clamping for odd source dimensions.
			v0 := src.Pixel(sx, sy)
			v1 := src.Pixel(min(sx+1, srcW-1), sy)
			v2 := src.Pixel(sx, min(sy+1, srcH-1))
			v3 := src.Pixel(min(sx+1, srcW-1), min(sy+1, srcH-1))

			dst.pix[dy*dstW+dx] = (v0 + v1 + v2 + v3) / 4
		}
	})

	return dst
}

// downsampleScaler creates a half-size copy of src using an x/image scaler.
func downsampleScaler(src *GrayMap, s draw.Scaler) *GrayMap {
	dstW := max(1, src.Width()/2)
	dstH := max(1, src.Height()/2)
	dst := NewGrayMap(dstW, dstH)
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Level returns the map at the specified level.
// Level 0 is the original image. Returns nil if level is out of range.
func (p *Pyramid) Level(n int) *GrayMap {
	if p == nil || n < 0 || n >= len(p.levels) {
		return nil
	}
	return p.levels[n]
}

// NumLevels returns the total number of levels in the pyramid.
// Returns 0 if the pyramid is nil.
func (p *Pyramid) NumLevels() int {
	if p == nil {
		return 0
	}
	return len(p.levels)
}

// Pixel returns the intensity at (x, y) in level coordinates, or 0 if the
// level or coordinates are out of range.
func (p *Pyramid) Pixel(level, x, y int) float32 {
	m := p.Level(level)
	if m == nil {
		return 0
	}
	return m.Pixel(x, y)
}

// PixelClamped returns the intensity at (x, y) in level coordinates,
// replicating the nearest edge pixel for outside reads. Returns 0 if the
// level is out of range.
func (p *Pyramid) PixelClamped(level, x, y int) float32 {
	m := p.Level(level)
	if m == nil {
		return 0
	}
	return m.PixelClamped(x, y)
}
