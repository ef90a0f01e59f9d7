package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout: a boxed board two columns per cell, a title line above it and a
// HUD panel on the right.
const (
	cellW       = 2
	boardBoxW   = Width*cellW + 2
	boardBoxH   = Height + 2
	hudGap      = 2
	hudW        = 18
	layoutWidth = boardBoxW + hudGap + hudW
	// Title line plus the board box.
	layoutHeight = boardBoxH + 1
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// Render draws the playfield, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", layoutWidth, layoutHeight))
		return
	}

	f := g.engine.Frame()
	ox := core.Clamp((dst.Width()-layoutWidth)/2, 0, dst.Width())
	oy := core.Clamp((dst.Height()-layoutHeight)/2, 0, dst.Height())

	dst.DrawTextColored(ox+1, oy, "T E T R I S", core.ColorCyan)

	box := core.NewRect(ox, oy+1, boardBoxW, boardBoxH)
	dst.DrawBox(box, core.ColorGray)
	renderCells(dst, box.X+1, box.Y+1, &f)

	g.renderHUD(dst, box.Right()+hudGap, box.Y, &f)

	switch {
	case f.GameOver:
		renderOverlay(dst, box, "GAME OVER", "R: restart")
	case f.Paused:
		renderOverlay(dst, box, "PAUSED", "P: resume")
	}
}

// renderCells draws the frame's grid with its top-left cell at (x0, y0).
func renderCells(dst *core.Screen, x0, y0 int, f *Frame) {
	for y := range f.Cells {
		for x, c := range f.Cells[y] {
			sx := x0 + x*cellW
			sy := y0 + y
			if c == core.ColorDefault {
				dst.SetColored(sx, sy, emptyRune, core.ColorDim)
				dst.Set(sx+1, sy, ' ')
				continue
			}
			dst.SetColored(sx, sy, blockRune, c)
			dst.SetColored(sx+1, sy, blockRune, c)
		}
	}
}

// renderHUD draws score and statistics in a panel at (x, y).
func (g *Game) renderHUD(dst *core.Screen, x, y int, f *Frame) {
	dst.DrawBox(core.NewRect(x, y, hudW, 12), core.ColorGray)

	line := y + 1
	put := func(label, value string, c core.Color) {
		dst.DrawText(x+2, line, label)
		dst.DrawTextColored(x+2, line+1, value, c)
		line += 3
	}
	put("Score", fmt.Sprintf("%d", f.Score), core.ColorYellow)
	put("Lines", fmt.Sprintf("%d", f.Lines), core.ColorWhite)
	put("Mode", g.title, core.ColorWhite)

	status := "Playing"
	statusColor := core.ColorGreen
	switch {
	case f.GameOver:
		status, statusColor = "Game Over", core.ColorRed
	case f.Paused:
		status, statusColor = "Paused", core.ColorYellow
	}
	dst.DrawTextColored(x+2, line-1, status, statusColor)
}

// renderOverlay draws a two-line message box centered on area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	h := 5
	cx, cy := area.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColored(cx-len(line1)/2, box.Y+1, line1, core.ColorRed)
	dst.DrawText(cx-len(line2)/2, box.Y+3, line2)
}
