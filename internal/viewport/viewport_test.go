package viewport

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMapRoundTrip(t *testing.T) {
	vp := Viewport{Center: complex(-0.5, 0.1), Scale: 0.004, MaxIterations: 150}
	w, h := 800, 600

	pixels := [][2]float64{{0, 0}, {400, 300}, {799, 599}, {123, 456}}
	for _, p := range pixels {
		z := vp.PixelToPlane(p[0], p[1], w, h)
		px, py := vp.PlaneToPixel(z, w, h)
		if math.Abs(px-p[0]) > 0.5 || math.Abs(py-p[1]) > 0.5 {
			t.Errorf("round trip (%v, %v) -> (%v, %v)", p[0], p[1], px, py)
		}
	}
}

func TestCenterMapsToMidpoint(t *testing.T) {
	vp := Viewport{Center: complex(-0.7, 0), Scale: 0.004, MaxIterations: 150}
	z := vp.PixelToPlane(400, 300, 800, 600)
	if z != vp.Center {
		t.Errorf("midpoint maps to %v, want %v", z, vp.Center)
	}
}

func TestZoomFactor(t *testing.T) {
	c := NewController(200, 300)
	if f := c.Snapshot().ZoomFactor(200); math.Abs(f-1.0) > 1e-12 {
		t.Fatalf("fresh controller zoom factor %f, want 1", f)
	}

	c.Zoom(0.5)
	if f := c.Snapshot().ZoomFactor(200); math.Abs(f-2.0) > 1e-12 {
		t.Errorf("zoom factor %f, want 2", f)
	}

	c.Zoom(0.2)
	if f := c.Snapshot().ZoomFactor(200); math.Abs(f-10.0) > 1e-12 {
		t.Errorf("zoom factor %f, want 10", f)
	}

	c.Zoom(2.0)
	if f := c.Snapshot().ZoomFactor(200); math.Abs(f-5.0) > 1e-12 {
		t.Errorf("zoom factor %f, want 5", f)
	}
}

func TestZoomAtKeepsFocusFixed(t *testing.T) {
	c := NewController(800, 600)
	px, py := 123, 457

	before := c.Snapshot().PixelToPlane(float64(px), float64(py), 800, 600)
	c.ZoomAt(0.5, px, py)
	after := c.Snapshot().PixelToPlane(float64(px), float64(py), 800, 600)

	if cmplx.Abs(after-before) > 1e-12 {
		t.Errorf("focus point moved under zoom: %v -> %v", before, after)
	}
}

func TestZoomClamps(t *testing.T) {
	c := NewController(800, 600)

	for i := 0; i < 200; i++ {
		c.Zoom(1e-3)
	}
	if s := c.Snapshot().Scale; s != MinScale {
		t.Errorf("scale %g not clamped to MinScale", s)
	}

	for i := 0; i < 200; i++ {
		c.Zoom(1e3)
	}
	if s := c.Snapshot().Scale; s != MaxScale {
		t.Errorf("scale %g not clamped to MaxScale", s)
	}
}

func TestCenterAt(t *testing.T) {
	c := NewController(800, 600)
	want := c.Snapshot().PixelToPlane(100, 50, 800, 600)
	c.CenterAt(100, 50)
	if got := c.Snapshot().Center; got != want {
		t.Errorf("center %v, want %v", got, want)
	}
	// The clicked point now maps to the midpoint.
	z := c.Snapshot().PixelToPlane(400, 300, 800, 600)
	if z != want {
		t.Errorf("midpoint %v after recenter, want %v", z, want)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	c := NewController(800, 600)
	def := c.Snapshot()

	c.ZoomAt(0.25, 13, 500)
	c.CenterAt(700, 20)
	c.ScaleIterations(8)
	c.Reset()

	if got := c.Snapshot(); got != def {
		t.Errorf("reset gave %+v, want %+v", got, def)
	}
}

func TestIterationClamps(t *testing.T) {
	c := NewController(800, 600)

	c.SetMaxIterations(0)
	if n := c.Snapshot().MaxIterations; n != 1 {
		t.Errorf("expected clamp to 1, got %d", n)
	}

	c.SetMaxIterations(4)
	c.ScaleIterations(0.1)
	if n := c.Snapshot().MaxIterations; n < 1 {
		t.Errorf("scaled bound below 1: %d", n)
	}

	c.AdjustIterations(-100)
	if n := c.Snapshot().MaxIterations; n != 1 {
		t.Errorf("adjusted bound not clamped to 1: %d", n)
	}
}

func TestCommands(t *testing.T) {
	c := NewController(800, 600)
	start := c.Snapshot()

	c.Apply(CmdZoomIn, 0, 0, false)
	if c.Snapshot().Scale >= start.Scale {
		t.Error("CmdZoomIn did not shrink scale")
	}

	c.Apply(CmdMoreIterations, 0, 0, false)
	if c.Snapshot().MaxIterations != start.MaxIterations*2 {
		t.Errorf("CmdMoreIterations gave %d", c.Snapshot().MaxIterations)
	}

	c.Apply(CmdSetCenter, 10, 10, false)
	if c.Snapshot().Center == start.Center {
		t.Error("CmdSetCenter did not move the center")
	}

	c.Apply(CmdReset, 0, 0, false)
	if c.Snapshot() != start {
		t.Error("CmdReset did not restore defaults")
	}
}
