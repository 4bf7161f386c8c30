// Package gui is the raylib presentation layer: it owns the window,
// translates key and mouse events into viewport commands, and blits
// finished frames to a texture. All fractal math stays in the core
// packages; this layer only consumes pixel buffers and produces input.
package gui

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mandelscope/internal/histogram"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
	"github.com/san-kum/mandelscope/internal/viewport"
)

// HUD colors.
var (
	colText    = rl.NewColor(235, 235, 235, 255)
	colTextDim = rl.NewColor(140, 140, 140, 255)
	colShadow  = rl.NewColor(0, 0, 0, 160)
)

type App struct {
	width, height int

	ctrl     *viewport.Controller
	renderer *render.Renderer

	scheme   palette.Scheme
	equalize bool
	showBars bool

	// Render pipeline. The worker consumes viewport snapshots and
	// produces frames; results older than the latest request are stale
	// and dropped after completion (no mid-frame cancellation).
	jobs    chan renderJob
	results chan renderResult
	gen     uint64

	frame      *frameState
	tex        rl.Texture2D
	pixels     []color.RGBA
	texDirty   bool
	rendering  bool
	renderTime time.Duration
}

type renderJob struct {
	gen uint64
	vp  viewport.Viewport
}

type renderResult struct {
	gen     uint64
	fb      *render.FrameBuffer
	elapsed time.Duration
}

// frameState is the last completed frame plus its equalization table,
// kept so palette and equalization toggles recolor without recomputing.
type frameState struct {
	fb    *render.FrameBuffer
	table *histogram.Table
}

// NewApp creates the explorer for a window of the given size. Run must
// be called on the main thread.
func NewApp(width, height int, scheme palette.Scheme, equalize bool) *App {
	return &App{
		width:    width,
		height:   height,
		ctrl:     viewport.NewController(width, height),
		renderer: render.New(),
		scheme:   scheme,
		equalize: equalize,
		jobs:     make(chan renderJob, 1),
		results:  make(chan renderResult, 2),
	}
}

// SetViewport replaces the starting view, typically from a preset.
func (a *App) SetViewport(vp viewport.Viewport) {
	a.ctrl.SetViewport(vp)
}

// Run opens the window and blocks in the update/draw loop until the
// user quits.
func (a *App) Run() {
	rl.InitWindow(int32(a.width), int32(a.height), "mandelscope")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	img := rl.GenImageColor(a.width, a.height, rl.Black)
	a.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(a.tex)

	go a.renderWorker()
	defer close(a.jobs)

	a.submit()

	for !rl.WindowShouldClose() {
		if a.update() {
			return
		}
		a.draw()
	}
}

// renderWorker computes frames off the event loop so input stays
// responsive during deep-zoom renders.
func (a *App) renderWorker() {
	for job := range a.jobs {
		start := time.Now()
		fb := a.renderer.Render(job.vp, a.width, a.height)
		a.results <- renderResult{gen: job.gen, fb: fb, elapsed: time.Since(start)}
	}
}

// submit queues a render of the current viewport snapshot, replacing
// any not-yet-started request.
func (a *App) submit() {
	a.gen++
	a.rendering = true
	job := renderJob{gen: a.gen, vp: a.ctrl.Snapshot()}
	for {
		select {
		case a.jobs <- job:
			return
		case <-a.jobs:
			// Drop the superseded queued request.
		}
	}
}

// collect drains finished frames, keeping only one matching the latest
// request. Stale frames are recycled and discarded.
func (a *App) collect() {
	for {
		select {
		case res := <-a.results:
			if res.gen != a.gen {
				a.renderer.Recycle(res.fb)
				continue
			}
			if a.frame != nil {
				a.renderer.Recycle(a.frame.fb)
			}
			a.frame = &frameState{fb: res.fb, table: res.fb.EqualizationTable()}
			a.renderTime = res.elapsed
			a.rendering = false
			a.texDirty = true
		default:
			return
		}
	}
}
