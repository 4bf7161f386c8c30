// Package tui is the terminal presentation layer: a bubbletea program
// that draws the set with half-block cells (two pixels per character)
// and a stats sidebar. It mirrors the GUI's command set for terminals
// without a display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandelscope/internal/histogram"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
	"github.com/san-kum/mandelscope/internal/viewport"
)

const sidebarWidth = 38

// Model is the bubbletea state for the explorer.
type Model struct {
	ctrl     *viewport.Controller
	renderer *render.Renderer

	scheme   palette.Scheme
	equalize bool
	theme    Theme

	termW, termH int
	imgW, imgH   int // pixel grid, two rows per terminal cell

	gen        uint64
	frame      *render.FrameBuffer
	table      *histogram.Table
	canvas     string
	renderTime time.Duration
	rendering  bool

	showHelp bool
}

type frameMsg struct {
	gen     uint64
	fb      *render.FrameBuffer
	elapsed time.Duration
}

// NewModel creates the terminal explorer starting at the given
// viewpoint. The per-pixel scale is derived from the terminal grid once
// its size is known; zoom is the size-independent magnification.
func NewModel(center complex128, zoom float64, maxIterations uint32, scheme palette.Scheme, equalize bool) Model {
	ctrl := viewport.NewController(80, 48)
	ctrl.SetViewport(viewport.Viewport{
		Center:        center,
		Scale:         viewport.ScaleForZoom(zoom, 80),
		MaxIterations: maxIterations,
	})
	return Model{
		ctrl:     ctrl,
		renderer: render.New(),
		scheme:   scheme,
		equalize: equalize,
		theme:    Themes[0],
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.imgW = msg.Width - sidebarWidth - 2
		if m.imgW < 16 {
			m.imgW = 16
		}
		m.imgH = (msg.Height - 1) * 2
		if m.imgH < 16 {
			m.imgH = 16
		}
		m.ctrl = resized(m.ctrl, m.imgW, m.imgH)
		return m.rerender()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if msg.gen != m.gen {
			m.renderer.Recycle(msg.fb)
			return m, nil
		}
		if m.frame != nil {
			m.renderer.Recycle(m.frame)
		}
		m.frame = msg.fb
		m.table = msg.fb.EqualizationTable()
		m.renderTime = msg.elapsed
		m.rendering = false
		m.redraw()
		return m, nil
	}

	return m, nil
}

// resized carries the viewpoint over to a controller for the new image
// size, keeping the on-screen plane width stable.
func resized(old *viewport.Controller, w, h int) *viewport.Controller {
	vp := old.Snapshot()
	oldW, _ := old.Size()
	c := viewport.NewController(w, h)
	if oldW > 0 {
		vp.Scale = vp.Scale * float64(oldW) / float64(w)
	}
	c.SetViewport(vp)
	return c
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	panStep := m.imgW / 8

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "+", "=":
		m.ctrl.Apply(viewport.CmdZoomIn, 0, 0, false)
		return m.rerender()
	case "-", "_":
		m.ctrl.Apply(viewport.CmdZoomOut, 0, 0, false)
		return m.rerender()

	case "left", "h":
		return m.pan(-panStep, 0)
	case "right", "l":
		return m.pan(panStep, 0)
	case "up", "k":
		return m.pan(0, -m.imgH/8)
	case "down", "j":
		return m.pan(0, m.imgH/8)

	case "i", "pgup":
		m.ctrl.Apply(viewport.CmdMoreIterations, 0, 0, false)
		return m.rerender()
	case "o", "pgdown":
		m.ctrl.Apply(viewport.CmdFewerIterations, 0, 0, false)
		return m.rerender()

	case "r":
		m.ctrl.Apply(viewport.CmdReset, 0, 0, false)
		return m.rerender()

	case "c":
		m.scheme = m.scheme.Next()
		m.redraw()
		return m, nil
	case "e":
		m.equalize = !m.equalize
		m.redraw()
		return m, nil
	case "t":
		m.theme = NextTheme(m.theme)
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

func (m Model) pan(dx, dy int) (tea.Model, tea.Cmd) {
	m.ctrl.CenterAt(m.imgW/2+dx, m.imgH/2+dy)
	return m.rerender()
}

// rerender queues an async frame computation for the current snapshot.
// Frames finishing after a newer request are dropped by generation.
func (m Model) rerender() (tea.Model, tea.Cmd) {
	if m.imgW == 0 || m.imgH == 0 {
		return m, nil
	}
	m.gen++
	m.rendering = true
	gen, vp, w, h := m.gen, m.ctrl.Snapshot(), m.imgW, m.imgH
	r := m.renderer
	return m, func() tea.Msg {
		start := time.Now()
		fb := r.Render(vp, w, h)
		return frameMsg{gen: gen, fb: fb, elapsed: time.Since(start)}
	}
}
