// Package palette maps escape-time samples to colors. The scheme set is a
// closed enumeration: each scheme is a pure function over a normalized
// position in the gradient, selected by index, with no registration
// machinery. Points inside the set are always black unless a scheme says
// otherwise.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/histogram"
)

// Scheme selects one of the fixed color palettes.
type Scheme int

const (
	SchemeGreen Scheme = iota
	SchemeRainbow
	SchemeRedish
	SchemeBlue
	SchemeGrayscale
	SchemeSmooth

	schemeCount
)

// DefaultScheme is used when an index falls outside the enumeration.
const DefaultScheme = SchemeGreen

// SmoothPeriod is the iteration span of one full hue cycle for the
// cyclic smooth scheme when equalization is off.
const SmoothPeriod = 64.0

var schemeNames = [...]string{
	"green",
	"rainbow",
	"redish",
	"blue",
	"grayscale",
	"smooth",
}

func (s Scheme) String() string {
	if s < 0 || s >= schemeCount {
		return schemeNames[DefaultScheme]
	}
	return schemeNames[s]
}

// Names lists the scheme names in index order.
func Names() []string {
	return append([]string(nil), schemeNames[:]...)
}

// FromIndex maps an arbitrary index to a scheme, falling back to the
// default instead of failing.
func FromIndex(i int) Scheme {
	if i < 0 || i >= int(schemeCount) {
		return DefaultScheme
	}
	return Scheme(i)
}

// FromName resolves a scheme by name, falling back to the default.
func FromName(name string) Scheme {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i)
		}
	}
	return DefaultScheme
}

// Next cycles to the following scheme.
func (s Scheme) Next() Scheme { return (s + 1) % schemeCount }

// Color maps a sample to a color under the given scheme. Bounded samples
// are black. With a table, the raw iteration count is first remapped
// through the equalization table; without one the scheme is applied to
// the raw value (the smooth scheme cycles with SmoothPeriod, the discrete
// ones use the fraction of the iteration bound).
func Color(s Scheme, sample fractal.Sample, maxIterations uint32, table *histogram.Table) color.RGBA {
	if !sample.Escaped {
		return color.RGBA{A: 255}
	}

	var t float64
	switch {
	case table != nil:
		t = table.Lookup(sample.Iterations)
	case s == SchemeSmooth:
		t = math.Mod(sample.Smooth/SmoothPeriod, 1)
	default:
		if maxIterations < 1 {
			maxIterations = 1
		}
		t = sample.Smooth / float64(maxIterations)
	}

	return at(s, clamp01(t))
}

// At evaluates a scheme's continuous color function at a normalized
// gradient position. Used directly for palette preview bars.
func At(s Scheme, t float64) color.RGBA { return at(s, clamp01(t)) }

func at(s Scheme, t float64) color.RGBA {
	switch s {
	case SchemeRainbow:
		return hsv(300*t, 1, 1)
	case SchemeRedish:
		return redish(t)
	case SchemeBlue:
		return blue(t)
	case SchemeGrayscale:
		return gray(t)
	case SchemeSmooth:
		return smooth(t)
	default:
		return green(t)
	}
}

// green runs black - green - white, brightening with the square root so
// low counts stay distinguishable.
func green(t float64) color.RGBA {
	level := uint8(math.Sqrt(t) * 255)
	var rb uint8
	if t > 0.5 {
		rb = uint8((t - 0.5) / 0.5 * 180)
	}
	return color.RGBA{R: rb, G: level, B: rb, A: 255}
}

// redish runs dark red into the red - yellow hue band.
func redish(t float64) color.RGBA {
	if t < 0.5 {
		level := uint8(math.Sqrt(t/0.5) * 255)
		return color.RGBA{R: level, A: 255}
	}
	return hsv(60*(t-0.5)/0.5, 1, 1)
}

// blue runs dark blue into the blue - purple hue band.
func blue(t float64) color.RGBA {
	const limit = 1.0 / 3
	if t < limit {
		level := uint8(math.Sqrt(t/limit) * 255)
		return color.RGBA{B: level, A: 255}
	}
	return hsv(240+60*(t-limit)/(1-limit), 1, 1)
}

func gray(t float64) color.RGBA {
	level := uint8(t * 255)
	return color.RGBA{R: level, G: level, B: level, A: 255}
}

// smooth is the continuous gradient scheme; go-colorful does the HSV
// conversion and keeps the ramp perceptually even.
func smooth(t float64) color.RGBA {
	c := colorful.Hsv(math.Mod(360*t+240, 360), 0.85, 1)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsv converts hue [0..360), saturation and value [0..1] to RGB.
func hsv(h, s, v float64) color.RGBA {
	rgb := func(r, g, b float64) color.RGBA {
		return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
	}

	if s <= 0 {
		return rgb(v, v, v)
	}

	h = math.Mod(h, 360)
	hh := h / 60
	region := int(hh)
	ff := hh - float64(region)

	p := v * (1 - s)
	q := v * (1 - s*ff)
	tt := v * (1 - s*(1-ff))

	switch region {
	case 0:
		return rgb(v, tt, p)
	case 1:
		return rgb(q, v, p)
	case 2:
		return rgb(p, v, tt)
	case 3:
		return rgb(p, q, v)
	case 4:
		return rgb(tt, p, v)
	default:
		return rgb(v, p, q)
	}
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
