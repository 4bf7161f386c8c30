// Package render drives escape-time evaluation over every pixel of an
// output frame. Rows are computed on a worker pool; each worker writes a
// disjoint band of the sample grid, so there is no shared mutable state
// and a frame is a pure function of the viewport snapshot it was given.
package render

import (
	"runtime"
	"sync"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/viewport"
)

// Renderer computes frames. The zero value is not usable; construct with
// New.
type Renderer struct {
	workers int
	pool    *bufferPool
}

// New creates a renderer with one worker per CPU.
func New() *Renderer {
	return NewWithWorkers(runtime.NumCPU())
}

// NewWithWorkers creates a renderer with an explicit worker count.
// Counts below 1 are clamped to 1.
func NewWithWorkers(workers int) *Renderer {
	if workers < 1 {
		workers = 1
	}
	return &Renderer{workers: workers, pool: newBufferPool()}
}

// Workers returns the configured worker count.
func (r *Renderer) Workers() int { return r.workers }

// Render evaluates every pixel of a width×height frame under the given
// viewport snapshot. Rows are split into contiguous bands, one per
// worker; the last band absorbs the remainder.
func (r *Renderer) Render(vp viewport.Viewport, width, height int) *FrameBuffer {
	if vp.MaxIterations < 1 {
		vp.MaxIterations = 1
	}
	if width < 1 || height < 1 {
		return &FrameBuffer{Width: 0, Height: 0, MaxIterations: vp.MaxIterations}
	}

	fb := &FrameBuffer{
		Width:         width,
		Height:        height,
		MaxIterations: vp.MaxIterations,
		Samples:       r.pool.get(width * height),
	}

	workers := r.workers
	if workers > height {
		workers = height
	}
	rowsPer := height / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := w * rowsPer
		y1 := y0 + rowsPer
		if w == workers-1 {
			y1 = height
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				row := fb.Samples[y*width : (y+1)*width]
				for x := 0; x < width; x++ {
					c := vp.PixelToPlane(float64(x), float64(y), width, height)
					row[x] = fractal.Evaluate(c, vp.MaxIterations)
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return fb
}

// Recycle returns a frame's sample storage to the renderer for reuse.
// The frame must not be read after this call.
func (r *Renderer) Recycle(fb *FrameBuffer) {
	if fb == nil {
		return
	}
	r.pool.put(fb.Samples)
	fb.Samples = nil
}
