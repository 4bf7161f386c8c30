package palette

import (
	"image/color"
	"testing"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/histogram"
)

var black = color.RGBA{A: 255}

func TestBoundedAlwaysBlack(t *testing.T) {
	sample := fractal.Sample{Iterations: 150}
	for i := 0; i < int(schemeCount); i++ {
		if c := Color(Scheme(i), sample, 150, nil); c != black {
			t.Errorf("scheme %s colored a bounded sample %v", Scheme(i), c)
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    color.RGBA
	}{
		{0, 1, 1, color.RGBA{R: 255, A: 255}},
		{120, 1, 1, color.RGBA{G: 255, A: 255}},
		{240, 1, 1, color.RGBA{B: 255, A: 255}},
		{0, 0, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{0, 0, 0, color.RGBA{A: 255}},
	}

	for _, tt := range tests {
		if got := hsv(tt.h, tt.s, tt.v); got != tt.want {
			t.Errorf("hsv(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestSchemeIndexFallback(t *testing.T) {
	if FromIndex(-1) != DefaultScheme {
		t.Error("negative index should fall back to default")
	}
	if FromIndex(99) != DefaultScheme {
		t.Error("out-of-range index should fall back to default")
	}
	if FromIndex(int(SchemeBlue)) != SchemeBlue {
		t.Error("valid index mangled")
	}
}

func TestFromName(t *testing.T) {
	for i, name := range Names() {
		if FromName(name) != Scheme(i) {
			t.Errorf("FromName(%q) != %v", name, Scheme(i))
		}
	}
	if FromName("no-such-palette") != DefaultScheme {
		t.Error("unknown name should fall back to default")
	}
}

func TestNextCycles(t *testing.T) {
	s := DefaultScheme
	for i := 0; i < int(schemeCount); i++ {
		s = s.Next()
	}
	if s != DefaultScheme {
		t.Errorf("cycling all schemes should return to start, got %v", s)
	}
}

func TestEqualizedPathUsesTable(t *testing.T) {
	samples := []fractal.Sample{
		{Iterations: 1, Smooth: 1.5, Escaped: true},
		{Iterations: 1, Smooth: 1.5, Escaped: true},
		{Iterations: 8, Smooth: 8.5, Escaped: true},
	}
	table := histogram.Build(samples, 10)

	low := Color(SchemeGrayscale, samples[0], 10, table)
	high := Color(SchemeGrayscale, samples[2], 10, table)

	if low.R > high.R {
		t.Errorf("equalized grayscale not monotonic: %d > %d", low.R, high.R)
	}
}

func TestOutOfRangeValuesClamp(t *testing.T) {
	// Smooth beyond the iteration bound must clamp, not wrap or fail.
	sample := fractal.Sample{Iterations: 500, Smooth: 500.5, Escaped: true}
	c := Color(SchemeGrayscale, sample, 100, nil)
	if c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("over-range grayscale should clamp to white, got %v", c)
	}
}

func TestGreenEndpoints(t *testing.T) {
	if c := At(SchemeGreen, 0); c != black {
		t.Errorf("green at 0 should be black, got %v", c)
	}
	c := At(SchemeGreen, 1)
	if c.G != 255 || c.R == 0 {
		t.Errorf("green at 1 should be bright with a white cast, got %v", c)
	}
}
