package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
	"github.com/san-kum/mandelscope/internal/viewport"
)

// update translates this frame's input into commands. Returns true when
// the user quit.
func (a *App) update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return true
	}

	// Viewport commands trigger a recompute.
	switch {
	case rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd):
		a.ctrl.Apply(viewport.CmdZoomIn, 0, 0, false)
		a.submit()
	case rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract):
		a.ctrl.Apply(viewport.CmdZoomOut, 0, 0, false)
		a.submit()
	case rl.IsKeyPressed(rl.KeySpace):
		a.ctrl.Apply(viewport.CmdReset, 0, 0, false)
		a.submit()
	case rl.IsKeyPressed(rl.KeyPageUp):
		a.ctrl.Apply(viewport.CmdMoreIterations, 0, 0, false)
		a.submit()
	case rl.IsKeyPressed(rl.KeyPageDown):
		a.ctrl.Apply(viewport.CmdFewerIterations, 0, 0, false)
		a.submit()
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		pos := rl.GetMousePosition()
		cmd := viewport.CmdZoomIn
		if wheel < 0 {
			cmd = viewport.CmdZoomOut
		}
		a.ctrl.Apply(cmd, int(pos.X), int(pos.Y), true)
		a.submit()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		a.ctrl.Apply(viewport.CmdSetCenter, int(pos.X), int(pos.Y), false)
		a.submit()
	}

	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		pos := rl.GetMousePosition()
		info := render.Describe(a.ctrl.Snapshot(), int(pos.X), int(pos.Y), a.width, a.height)
		if info.Bounded {
			fmt.Printf("point [%g, %gi]: bounded\n", real(info.Point), imag(info.Point))
		} else {
			fmt.Printf("point [%g, %gi]: escaped at %d (smooth %.3f)\n",
				real(info.Point), imag(info.Point), info.Iterations, info.Smooth)
		}
	}

	// Display commands only recolor the existing frame.
	if rl.IsKeyPressed(rl.KeyH) {
		a.equalize = !a.equalize
		a.texDirty = true
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.showBars = !a.showBars
	}
	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix} {
		if rl.IsKeyPressed(key) {
			a.scheme = palette.FromIndex(i)
			a.texDirty = true
		}
	}

	a.collect()
	return false
}
