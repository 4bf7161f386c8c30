package histogram

import (
	"testing"

	"github.com/san-kum/mandelscope/internal/fractal"
)

func escaped(n uint32) fractal.Sample {
	return fractal.Sample{Iterations: n, Smooth: float64(n), Escaped: true}
}

func bounded(max uint32) fractal.Sample {
	return fractal.Sample{Iterations: max}
}

func TestMonotonic(t *testing.T) {
	samples := []fractal.Sample{
		escaped(1), escaped(1), escaped(2), escaped(5),
		escaped(5), escaped(5), escaped(9), bounded(10),
	}
	table := Build(samples, 10)

	for n := uint32(1); n <= 10; n++ {
		if table.Lookup(n) < table.Lookup(n-1) {
			t.Errorf("table not monotonic at %d: %f < %f", n, table.Lookup(n), table.Lookup(n-1))
		}
	}
}

func TestRange(t *testing.T) {
	samples := []fractal.Sample{escaped(2), escaped(3), escaped(7), escaped(7)}
	table := Build(samples, 10)

	for n := uint32(0); n <= 10; n++ {
		v := table.Lookup(n)
		if v < 0 || v > 1 {
			t.Errorf("lookup(%d) = %f outside [0, 1]", n, v)
		}
	}
	if table.Lookup(10) != 1 {
		t.Errorf("bound count should map to 1, got %f", table.Lookup(10))
	}
}

func TestFlattensDenseBands(t *testing.T) {
	// 90 pixels at count 2, 10 at count 8: the dense band should claim
	// most of the gradient.
	samples := make([]fractal.Sample, 0, 100)
	for i := 0; i < 90; i++ {
		samples = append(samples, escaped(2))
	}
	for i := 0; i < 10; i++ {
		samples = append(samples, escaped(8))
	}
	table := Build(samples, 100)

	if v := table.Lookup(2); v < 0.8 {
		t.Errorf("dense band at %f of the gradient, expected most of it", v)
	}
}

func TestAllBoundedFrame(t *testing.T) {
	samples := []fractal.Sample{bounded(50), bounded(50), bounded(50)}
	table := Build(samples, 50)

	for n := uint32(0); n < 50; n++ {
		if v := table.Lookup(n); v != 0 {
			t.Fatalf("degenerate table should map %d to 0, got %f", n, v)
		}
	}
}

func TestEmptyFrame(t *testing.T) {
	table := Build(nil, 10)
	if v := table.Lookup(5); v != 0 {
		t.Errorf("empty frame should yield constant table, got %f", v)
	}
}

func TestOutOfRangeLookupClamps(t *testing.T) {
	table := Build([]fractal.Sample{escaped(1)}, 5)
	if v := table.Lookup(100); v != 1 {
		t.Errorf("out-of-range lookup should clamp to top, got %f", v)
	}
}
