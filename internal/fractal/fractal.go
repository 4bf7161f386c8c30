// Package fractal implements escape-time evaluation for the Mandelbrot set.
//
// Evaluation is a pure function of a complex coordinate and an iteration
// bound, so pixels can be computed in any order or in parallel with
// identical results. All arithmetic is double precision; beyond roughly
// 1e14 magnification adjacent pixels collapse onto the same float64 value
// and visible artifacting is expected. That is a stated limit, not a bug.
package fractal

import "math"

// EscapeRadius is the orbit modulus beyond which divergence is guaranteed.
const EscapeRadius = 2.0

// Sample is the escape-time result for one point of the complex plane.
// Escaped samples carry the iteration count at escape and a continuous
// escape measure in [Iterations, Iterations+1) for banding-free coloring.
// Non-escaped samples represent points treated as inside the set.
type Sample struct {
	Iterations uint32
	Smooth     float64
	Escaped    bool
}

// Evaluate iterates z' = z^2 + c from z = 0 until the orbit leaves the
// escape radius or maxIterations is reached. A maxIterations below 1 is
// clamped to 1.
func Evaluate(c complex128, maxIterations uint32) Sample {
	if maxIterations < 1 {
		maxIterations = 1
	}

	if inMainBody(c) {
		return Sample{Iterations: maxIterations}
	}

	z := complex(0, 0)
	for n := uint32(1); n <= maxIterations; n++ {
		z = z*z + c
		re, im := real(z), imag(z)
		abs2 := re*re + im*im
		if abs2 > EscapeRadius*EscapeRadius {
			return Sample{Iterations: n, Smooth: smooth(n, abs2), Escaped: true}
		}
	}

	return Sample{Iterations: maxIterations}
}

// smooth computes the standard continuous escape value n + 1 - log2(log2|z|),
// clamped into [n, n+1) so callers can rely on the range.
func smooth(n uint32, abs2 float64) float64 {
	logZ := 0.5 * math.Log(abs2)
	if logZ <= math.Ln2 {
		// |z| barely past the radius; log2(log2|z|) would go non-positive.
		return float64(n)
	}
	v := float64(n) + 1 - math.Log2(logZ/math.Ln2)
	lo, hi := float64(n), float64(n+1)
	if v < lo {
		return lo
	}
	if v >= hi {
		return math.Nextafter(hi, lo)
	}
	return v
}

// inMainBody reports whether c lies in the main cardioid or the period-2
// bulb, both of which are known interior regions. Points there never
// escape, so the iteration loop can be skipped entirely.
func inMainBody(c complex128) bool {
	re, im := real(c), imag(c)

	p := math.Sqrt((re-0.25)*(re-0.25) + im*im)
	if re <= p-2*p*p+0.25 {
		return true
	}
	return (re+1)*(re+1)+im*im <= 0.0625
}
