package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/histogram"
	"github.com/san-kum/mandelscope/internal/palette"
)

// FrameBuffer is one rendered frame: a row-major grid of escape-time
// samples plus the iteration bound it was computed under. It is built
// once per render pass and immutable afterwards.
type FrameBuffer struct {
	Width, Height int
	MaxIterations uint32
	Samples       []fractal.Sample
}

// At returns the sample for pixel (x, y). Panics on out-of-range
// coordinates; a caller indexing outside the frame is a bug, not a
// recoverable condition.
func (fb *FrameBuffer) At(x, y int) fractal.Sample {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		panic(fmt.Sprintf("render: pixel (%d, %d) outside %dx%d frame", x, y, fb.Width, fb.Height))
	}
	return fb.Samples[y*fb.Width+x]
}

// EqualizationTable builds the histogram-equalization table for this
// frame's iteration distribution.
func (fb *FrameBuffer) EqualizationTable() *histogram.Table {
	return histogram.Build(fb.Samples, fb.MaxIterations)
}

// RGBA colors the frame into a standard image, ready for PNG encoding.
// A nil table applies the scheme to raw values; a non-nil table remaps
// through it first.
func (fb *FrameBuffer) RGBA(scheme palette.Scheme, table *histogram.Table) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, s := range fb.Samples {
		c := palette.Color(scheme, s, fb.MaxIterations, table)
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = c.A
	}
	return img
}

// Colors colors the frame into a flat pixel slice, the layout raylib
// texture updates expect.
func (fb *FrameBuffer) Colors(scheme palette.Scheme, table *histogram.Table, dst []color.RGBA) []color.RGBA {
	if cap(dst) < len(fb.Samples) {
		dst = make([]color.RGBA, len(fb.Samples))
	}
	dst = dst[:len(fb.Samples)]
	for i, s := range fb.Samples {
		dst[i] = palette.Color(scheme, s, fb.MaxIterations, table)
	}
	return dst
}

// EscapedFraction reports the share of pixels that escaped, a cheap
// density signal for HUD display.
func (fb *FrameBuffer) EscapedFraction() float64 {
	if len(fb.Samples) == 0 {
		return 0
	}
	n := 0
	for _, s := range fb.Samples {
		if s.Escaped {
			n++
		}
	}
	return float64(n) / float64(len(fb.Samples))
}
