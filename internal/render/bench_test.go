package render

import (
	"fmt"
	"testing"
)

func BenchmarkRender(b *testing.B) {
	sizes := []int{128, 256, 512}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dpx", size), func(b *testing.B) {
			r := New()
			vp := testViewport(size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fb := r.Render(vp, size, size)
				r.Recycle(fb)
			}
		})
	}
}

func BenchmarkRenderSequential(b *testing.B) {
	r := NewWithWorkers(1)
	vp := testViewport(256)
	for i := 0; i < b.N; i++ {
		fb := r.Render(vp, 256, 256)
		r.Recycle(fb)
	}
}

func BenchmarkColorize(b *testing.B) {
	r := New()
	fb := r.Render(testViewport(512), 512, 512)
	table := fb.EqualizationTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fb.Colors(0, table, nil)
	}
}
