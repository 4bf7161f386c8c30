package render

import (
	"sync"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// bufferPool recycles sample grids between frames. Interactive zooming
// re-renders at a fixed size many times per second; reusing the backing
// slice keeps that allocation-free.
type bufferPool struct {
	mu   sync.Mutex
	free [][]fractal.Sample
}

func newBufferPool() *bufferPool {
	return &bufferPool{}
}

func (p *bufferPool) get(n int) []fractal.Sample {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, buf := range p.free {
		if cap(buf) >= n {
			p.free = append(p.free[:i], p.free[i+1:]...)
			return buf[:n]
		}
	}
	return make([]fractal.Sample, n)
}

func (p *bufferPool) put(buf []fractal.Sample) {
	if buf == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	// Keep a small free list; frames are all the same size in practice.
	if len(p.free) < 4 {
		p.free = append(p.free, buf)
	}
}
