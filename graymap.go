package viewmap

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// GrayMap represents a rectangular single-channel raster of float32
// intensities. It is the pixel type for density images, depth buffers and
// view-map pyramid levels.
//
// Intensities are not range-restricted: density maps count coverage and
// depth buffers hold scene depths. Only the image.Image view clamps to
// [0, 1] when converting to 16-bit gray.
//
// Thread safety: GrayMap is safe for concurrent reads. Writes require
// external synchronization.
type GrayMap struct {
	width  int
	height int
	pix    []float32
}

// NewGrayMap creates a new gray map with the given dimensions.
// Non-positive dimensions yield an empty map.
func NewGrayMap(width, height int) *GrayMap {
	if width < 1 || height < 1 {
		return &GrayMap{}
	}
	return &GrayMap{
		width:  width,
		height: height,
		pix:    make([]float32, width*height),
	}
}

// Width returns the width of the map in pixels.
func (m *GrayMap) Width() int {
	return m.width
}

// Height returns the height of the map in pixels.
func (m *GrayMap) Height() int {
	return m.height
}

// IsEmpty reports whether the map has no pixels.
func (m *GrayMap) IsEmpty() bool {
	return m == nil || m.width == 0 || m.height == 0
}

// Pix returns the raw pixel data in row-major order.
func (m *GrayMap) Pix() []float32 {
	return m.pix
}

// Pixel returns the intensity at (x, y), or 0 outside the map.
func (m *GrayMap) Pixel(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// PixelClamped returns the intensity at (x, y) with coordinates clamped to
// the map bounds, replicating the nearest edge pixel for outside reads.
// Calling PixelClamped on an empty map returns 0.
func (m *GrayMap) PixelClamped(x, y int) float32 {
	if m.IsEmpty() {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x >= m.width {
		x = m.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.height {
		y = m.height - 1
	}
	return m.pix[y*m.width+x]
}

// SetPixel sets the intensity of a single pixel. Writes outside the map
// are ignored.
func (m *GrayMap) SetPixel(x, y int, v float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = v
}

// Fill sets every pixel to the given intensity.
func (m *GrayMap) Fill(v float32) {
	for i := range m.pix {
		m.pix[i] = v
	}
}

// GrayMapFromImage creates a gray map from an image using Rec. 601 luma
// weights, scaled so that full white maps to 1.0.
func GrayMapFromImage(img image.Image) *GrayMap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	m := NewGrayMap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			luma := 0.299*float32(r) + 0.587*float32(g) + 0.114*float32(b)
			m.pix[y*width+x] = luma / 0xffff
		}
	}

	return m
}

// clamp01 clamps an intensity to [0, 1] for 16-bit gray conversion.
func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// At implements the image.Image interface.
func (m *GrayMap) At(x, y int) color.Color {
	return color.Gray16{Y: uint16(clamp01(m.Pixel(x, y)) * 0xffff)}
}

// Set implements the draw.Image interface, so that golang.org/x/image/draw
// scalers can write into a GrayMap.
func (m *GrayMap) Set(x, y int, c color.Color) {
	g := color.Gray16Model.Convert(c).(color.Gray16)
	m.SetPixel(x, y, float32(g.Y)/0xffff)
}

// Bounds implements the image.Image interface.
func (m *GrayMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *GrayMap) ColorModel() color.Model {
	return color.Gray16Model
}
