// Package viewport owns the pan/zoom/iteration state of the explorer and
// the mapping between pixel and complex-plane coordinates.
package viewport

import "math"

// Default view: the classic full-set framing around the main cardioid.
const (
	DefaultCenterRe      = -0.7
	DefaultCenterIm      = 0.0
	DefaultMaxIterations = 150

	// BaseSpan is the plane width shown at zoom factor 1.
	BaseSpan = 3.5

	// Scale clamps. MinScale sits near the float64 resolution limit;
	// MaxScale keeps zoom-out from running the view off to infinity.
	MinScale = 1e-17
	MaxScale = 1.0
)

// Viewport is an immutable snapshot of the view state: where the image is
// centered, how many plane units one pixel covers, and the iteration bound.
type Viewport struct {
	Center        complex128
	Scale         float64 // plane units per pixel, uniform in both axes
	MaxIterations uint32
}

// PixelToPlane maps a pixel coordinate to its complex-plane point. The
// image midpoint maps to the viewport center.
func (v Viewport) PixelToPlane(px, py float64, width, height int) complex128 {
	re := real(v.Center) + (px-float64(width)/2)*v.Scale
	im := imag(v.Center) + (py-float64(height)/2)*v.Scale
	return complex(re, im)
}

// PlaneToPixel is the inverse of PixelToPlane.
func (v Viewport) PlaneToPixel(z complex128, width, height int) (float64, float64) {
	px := (real(z)-real(v.Center))/v.Scale + float64(width)/2
	py := (imag(z)-imag(v.Center))/v.Scale + float64(height)/2
	return px, py
}

// ZoomFactor reports the magnification relative to the default framing for
// an image of the given width. 1 is the full set, larger is deeper.
func (v Viewport) ZoomFactor(width int) float64 {
	return DefaultScale(width) / v.Scale
}

// DefaultScale returns the plane-units-per-pixel value that frames the
// whole set in an image of the given width.
func DefaultScale(width int) float64 {
	if width < 1 {
		width = 1
	}
	return BaseSpan / float64(width)
}

// ScaleForZoom converts a magnification factor to a per-pixel scale,
// clamped into the valid range.
func ScaleForZoom(zoom float64, width int) float64 {
	if zoom <= 0 {
		zoom = 1
	}
	return clampScale(DefaultScale(width) / zoom)
}

func clampScale(s float64) float64 {
	switch {
	case math.IsNaN(s), s < MinScale:
		return MinScale
	case s > MaxScale:
		return MaxScale
	}
	return s
}
