package viewmap

// DefaultDepthMaskSize is the window mask size used by NewLocalAverageDepth
// when no positive mask size is supplied.
const DefaultDepthMaskSize = 5.0

// LocalAverageDepth returns the Gaussian-weighted average depth around a
// point, obtained by querying the depth buffer on a window around that
// point. Depth-dependent stylization (fog, fading) is the typical consumer.
type LocalAverageDepth struct {
	w *windowed
}

// NewLocalAverageDepth builds the functor from the size of the mask that
// will be used; sigma is half the mask size. maskSize <= 0 selects
// DefaultDepthMaskSize.
func NewLocalAverageDepth(maskSize float64) *LocalAverageDepth {
	if maskSize <= 0 {
		maskSize = DefaultDepthMaskSize
	}
	return &LocalAverageDepth{w: newWindowed(maskSize / 2)}
}

// Name returns "LocalAverageDepthF0D".
func (d *LocalAverageDepth) Name() string {
	return "LocalAverageDepthF0D"
}

// Evaluate returns the average depth around the iterator's current point.
// It fails with ErrNoDepthBuffer if the iterator carries no depth buffer.
func (d *LocalAverageDepth) Evaluate(it PointIterator) (float64, error) {
	buf := it.DepthBuffer()
	if buf.IsEmpty() {
		return 0, ErrNoDepthBuffer
	}
	return d.w.at(buf, it.Point()), nil
}
