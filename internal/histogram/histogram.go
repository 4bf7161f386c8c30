// Package histogram builds per-frame equalization tables that flatten the
// distribution of escape iteration counts. Regions where many pixels share
// similar counts get a proportionally larger slice of the color gradient,
// which keeps deep-zoom frames from washing out into a single hue.
package histogram

import "github.com/san-kum/mandelscope/internal/fractal"

// Table maps a raw escape iteration count to a normalized display value
// in [0, 1]. It is monotonic by construction, derived once per frame and
// discarded with it. The iteration bound itself (bounded pixels) is
// excluded from the distribution and pinned to 1.
type Table struct {
	norm          []float64
	maxIterations uint32
}

// Build counts escaped-iteration occurrences across the samples and
// returns the cumulative-distribution table. A frame with no escaped
// pixels yields a degenerate table that maps every count to 0.
func Build(samples []fractal.Sample, maxIterations uint32) *Table {
	if maxIterations < 1 {
		maxIterations = 1
	}

	counts := make([]int, maxIterations+1)
	for _, s := range samples {
		if s.Escaped && s.Iterations <= maxIterations {
			counts[s.Iterations]++
		}
	}

	t := &Table{
		norm:          make([]float64, maxIterations+1),
		maxIterations: maxIterations,
	}

	total := 0
	cdf := make([]int, maxIterations+1)
	for i := uint32(0); i < maxIterations; i++ {
		total += counts[i]
		cdf[i] = total
	}

	// Everything below the first occupied bin maps to 0; without that
	// anchor the darkest band would start mid-gradient.
	denom := total - cdf[0]
	if denom > 0 {
		for i := uint32(0); i < maxIterations; i++ {
			t.norm[i] = float64(cdf[i]-cdf[0]) / float64(denom)
		}
	}
	t.norm[maxIterations] = 1

	return t
}

// Lookup returns the normalized display value for a raw iteration count.
// Out-of-range counts clamp to the table edges.
func (t *Table) Lookup(iterations uint32) float64 {
	if iterations > t.maxIterations {
		iterations = t.maxIterations
	}
	return t.norm[iterations]
}

// MaxIterations returns the iteration bound the table was built for.
func (t *Table) MaxIterations() uint32 { return t.maxIterations }
