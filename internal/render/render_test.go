package render

import (
	"testing"

	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/viewport"
)

func testViewport(width int) viewport.Viewport {
	return viewport.Viewport{
		Center:        complex(-0.5, 0),
		Scale:         3.0 / float64(width),
		MaxIterations: 100,
	}
}

func TestCenterOfCardioidIsBounded(t *testing.T) {
	fb := New().Render(testViewport(100), 100, 100)

	if s := fb.At(50, 50); s.Escaped {
		t.Error("pixel (50,50) over the main cardioid should be bounded")
	}
}

func TestCornersEscape(t *testing.T) {
	fb := New().Render(testViewport(100), 100, 100)

	for _, p := range [][2]int{{0, 0}, {99, 0}, {0, 99}, {99, 99}} {
		if s := fb.At(p[0], p[1]); !s.Escaped {
			t.Errorf("corner pixel (%d,%d) should escape", p[0], p[1])
		}
	}
}

func TestWorkerCountInvariant(t *testing.T) {
	vp := testViewport(64)

	want := NewWithWorkers(1).Render(vp, 64, 48)
	for _, workers := range []int{2, 3, 7, 16, 100} {
		got := NewWithWorkers(workers).Render(vp, 64, 48)
		if len(got.Samples) != len(want.Samples) {
			t.Fatalf("workers=%d: %d samples, want %d", workers, len(got.Samples), len(want.Samples))
		}
		for i := range got.Samples {
			if got.Samples[i] != want.Samples[i] {
				t.Fatalf("workers=%d: sample %d differs", workers, i)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := New()
	vp := testViewport(80)

	a := r.Render(vp, 80, 60)
	b := r.Render(vp, 80, 60)
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs between identical renders", i)
		}
	}
}

func TestRGBABufferShape(t *testing.T) {
	fb := New().Render(testViewport(32), 32, 24)
	img := fb.RGBA(palette.SchemeGreen, nil)

	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	if len(img.Pix) != 32*24*4 {
		t.Fatalf("pixel buffer length %d, want %d", len(img.Pix), 32*24*4)
	}
	// Interior pixel of the set must be opaque black.
	o := img.PixOffset(16, 12)
	if img.Pix[o] != 0 || img.Pix[o+1] != 0 || img.Pix[o+2] != 0 || img.Pix[o+3] != 255 {
		t.Error("interior pixel not opaque black")
	}
}

func TestColorsMatchesRGBA(t *testing.T) {
	fb := New().Render(testViewport(16), 16, 16)
	table := fb.EqualizationTable()

	img := fb.RGBA(palette.SchemeRainbow, table)
	cols := fb.Colors(palette.SchemeRainbow, table, nil)

	for i, c := range cols {
		o := i * 4
		if img.Pix[o] != c.R || img.Pix[o+1] != c.G || img.Pix[o+2] != c.B {
			t.Fatalf("pixel %d differs between RGBA and Colors", i)
		}
	}
}

func TestDescribe(t *testing.T) {
	vp := testViewport(100)

	info := Describe(vp, 50, 50, 100, 100)
	if !info.Bounded {
		t.Error("center pixel should describe as bounded")
	}
	if info.Point != complex(-0.5, 0) {
		t.Errorf("center pixel maps to %v, want (-0.5+0i)", info.Point)
	}

	info = Describe(vp, 0, 0, 100, 100)
	if info.Bounded {
		t.Error("corner pixel should describe as escaped")
	}
	if lo, hi := float64(info.Iterations), float64(info.Iterations+1); info.Smooth < lo || info.Smooth >= hi {
		t.Errorf("smooth %f outside [%f, %f)", info.Smooth, lo, hi)
	}
}

func TestRecycleReusesBuffers(t *testing.T) {
	r := New()
	fb := r.Render(testViewport(32), 32, 32)
	buf := &fb.Samples[0]
	r.Recycle(fb)

	again := r.Render(testViewport(32), 32, 32)
	if &again.Samples[0] != buf {
		t.Error("recycled buffer was not reused")
	}
}

func TestDegenerateSize(t *testing.T) {
	fb := New().Render(testViewport(10), 0, 10)
	if len(fb.Samples) != 0 {
		t.Errorf("zero-width frame should be empty, got %d samples", len(fb.Samples))
	}
}
