package viewport

// Controller is the single owner of the mutable view state. All
// transitions are synchronous state writes; renderers receive an
// immutable Snapshot, never the live state, so input arriving between
// frames cannot corrupt an in-flight render.
type Controller struct {
	width, height int
	vp            Viewport
}

// NewController creates a controller for an image of the given size,
// starting at the default viewport.
func NewController(width, height int) *Controller {
	c := &Controller{width: width, height: height}
	c.Reset()
	return c
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() Viewport { return c.vp }

// Size returns the image dimensions the controller maps against.
func (c *Controller) Size() (int, int) { return c.width, c.height }

// Reset restores the default center, scale and iteration bound.
func (c *Controller) Reset() {
	c.vp = Viewport{
		Center:        complex(DefaultCenterRe, DefaultCenterIm),
		Scale:         DefaultScale(c.width),
		MaxIterations: DefaultMaxIterations,
	}
}

// Zoom multiplies the scale by factor about the current center. Factors
// below 1 zoom in. The resulting scale is clamped away from 0 and Inf.
func (c *Controller) Zoom(factor float64) {
	c.vp.Scale = clampScale(c.vp.Scale * factor)
}

// ZoomAt zooms while keeping the plane point under the given pixel fixed,
// so the feature under the cursor stays put.
func (c *Controller) ZoomAt(factor float64, px, py int) {
	focus := c.vp.PixelToPlane(float64(px), float64(py), c.width, c.height)
	c.vp.Scale = clampScale(c.vp.Scale * factor)

	re := real(focus) - (float64(px)-float64(c.width)/2)*c.vp.Scale
	im := imag(focus) - (float64(py)-float64(c.height)/2)*c.vp.Scale
	c.vp.Center = complex(re, im)
}

// CenterAt recenters the view on the plane point under the given pixel.
func (c *Controller) CenterAt(px, py int) {
	c.vp.Center = c.vp.PixelToPlane(float64(px), float64(py), c.width, c.height)
}

// CenterOn recenters the view on a plane point directly.
func (c *Controller) CenterOn(z complex128) { c.vp.Center = z }

// SetMaxIterations replaces the iteration bound, clamped to at least 1.
func (c *Controller) SetMaxIterations(n uint32) {
	if n < 1 {
		n = 1
	}
	c.vp.MaxIterations = n
}

// ScaleIterations multiplies the iteration bound by factor, rounding to
// the nearest integer and clamping to at least 1. Used by the PageUp /
// PageDown bindings which double and halve the bound.
func (c *Controller) ScaleIterations(factor float64) {
	n := float64(c.vp.MaxIterations) * factor
	if n > float64(1<<31) {
		n = float64(1 << 31)
	}
	if n < 1 {
		n = 1
	}
	c.vp.MaxIterations = uint32(n + 0.5)
}

// AdjustIterations adds delta to the iteration bound, clamping to at
// least 1.
func (c *Controller) AdjustIterations(delta int) {
	n := int64(c.vp.MaxIterations) + int64(delta)
	if n < 1 {
		n = 1
	}
	c.vp.MaxIterations = uint32(n)
}

// SetViewport replaces the whole view state, clamping invalid fields.
func (c *Controller) SetViewport(vp Viewport) {
	vp.Scale = clampScale(vp.Scale)
	if vp.MaxIterations < 1 {
		vp.MaxIterations = 1
	}
	c.vp = vp
}
