package render

import (
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/viewport"
)

// PixelInfo is the diagnostic answer for a single pixel query. Formatting
// is left to the caller; the core produces values only.
type PixelInfo struct {
	Point      complex128
	Iterations uint32
	Smooth     float64
	Bounded    bool
}

// Describe maps a pixel to its plane point and evaluates it under the
// given viewport. Backs the right-click / describe diagnostics.
func Describe(vp viewport.Viewport, x, y, width, height int) PixelInfo {
	c := vp.PixelToPlane(float64(x), float64(y), width, height)
	s := fractal.Evaluate(c, vp.MaxIterations)
	return PixelInfo{
		Point:      c,
		Iterations: s.Iterations,
		Smooth:     s.Smooth,
		Bounded:    !s.Escaped,
	}
}
