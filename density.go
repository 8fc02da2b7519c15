package viewmap

// DefaultDensitySigma is the smoothing strength used by NewDensity when no
// positive sigma is supplied.
const DefaultDensitySigma = 2.0

// Density returns the Gaussian-smoothed density of the result image at a
// point. The density is integrated over a square pixel window around the
// evaluation point; the larger the sigma, the smoother the result.
type Density struct {
	w *windowed
}

// NewDensity builds the functor from the Gaussian sigma value.
// sigma <= 0 selects DefaultDensitySigma.
func NewDensity(sigma float64) *Density {
	if sigma <= 0 {
		sigma = DefaultDensitySigma
	}
	return &Density{w: newWindowed(sigma)}
}

// Name returns "DensityF0D".
func (d *Density) Name() string {
	return "DensityF0D"
}

// Evaluate returns the smoothed density at the iterator's current point.
// It fails with ErrNoDensityImage if the iterator carries no density image.
func (d *Density) Evaluate(it PointIterator) (float64, error) {
	img := it.DensityImage()
	if img.IsEmpty() {
		return 0, ErrNoDensityImage
	}
	return d.w.at(img, it.Point()), nil
}
