package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mandelscope/internal/histogram"
	"github.com/san-kum/mandelscope/internal/palette"
)

func (a *App) draw() {
	if a.texDirty && a.frame != nil {
		var table *histogram.Table
		if a.equalize {
			table = a.frame.table
		}
		a.pixels = a.frame.fb.Colors(a.scheme, table, a.pixels)
		rl.UpdateTexture(a.tex, a.pixels)
		a.texDirty = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(a.tex, 0, 0, rl.White)

	if a.showBars {
		a.drawPaletteBars()
	}
	a.drawHUD()

	rl.EndDrawing()
}

// drawPaletteBars overlays one gradient strip per scheme, the full
// palette swatch view.
func (a *App) drawPaletteBars() {
	names := palette.Names()
	barHeight := int32(a.height / len(names))

	for i, name := range names {
		y := int32(i) * barHeight
		for x := 0; x < a.width; x++ {
			c := palette.At(palette.Scheme(i), float64(x)/float64(a.width))
			rl.DrawRectangle(int32(x), y, 1, barHeight, rl.NewColor(c.R, c.G, c.B, 255))
		}
		rl.DrawText(name, 12, y+8, 16, colShadow)
		rl.DrawText(name, 10, y+6, 16, colText)
	}
}

func (a *App) drawHUD() {
	vp := a.ctrl.Snapshot()

	status := fmt.Sprintf("zoom %.4g  iter %d  %s", vp.ZoomFactor(a.width), vp.MaxIterations, a.scheme)
	if a.equalize {
		status += "  eq"
	}
	if a.rendering {
		status += "  ..."
	} else {
		status += fmt.Sprintf("  %dms", a.renderTime.Milliseconds())
	}

	rl.DrawText(status, 12, 12, 18, colShadow)
	rl.DrawText(status, 10, 10, 18, colText)

	help := "[wheel/+/-] zoom  [click] center  [rclick] info  [1-6] palette  [h] equalize  [c] swatches  [pgup/pgdn] iter  [space] reset  [q] quit"
	rl.DrawText(help, 10, int32(a.height)-24, 12, colTextDim)

	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), int32(a.width)-70, 10, 14, colTextDim)
}
