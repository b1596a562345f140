// Package terminal draws a run into a tcell screen and plays its sound cues.
package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/buildyguy/runner"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

type Renderer struct {
	screen    tcell.Screen
	drawables []runner.Drawable
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Cells returns the inclusive cell range covered by r in a cols×rows grid.
// Any partial overlap covers a cell so thin platforms stay visible. ok is
// false when r is entirely off the grid.
func Cells(r gamemath.Rect, cols, rows int) (x0, y0, x1, y1 int, ok bool) {
	x0 = max(int(math.Floor(r.Left())), 0)
	y0 = max(int(math.Floor(r.Top())), 0)
	x1 = min(int(math.Ceil(r.Right()))-1, cols-1)
	y1 = min(int(math.Ceil(r.Bottom()))-1, rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw renders the visible window of g with a one-line HUD on top.
func (r *Renderer) Draw(g *runner.Game, best float64) {
	cols, rows := r.screen.Size()
	field := rows - hudRows
	palette := g.Config().Palette

	bg := styleOf(palette.Background)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	view := g.View()
	r.drawables = g.Drawables(r.drawables[:0])
	for _, d := range r.drawables {
		box := runner.Project(d.Box, view, float64(cols), float64(field))
		x0, y0, x1, y1, ok := Cells(box, cols, field)
		if !ok {
			continue
		}
		style := styleOf(d.Color)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.screen.SetContent(x, y+hudRows, ' ', nil, style)
			}
		}
	}

	hud := fmt.Sprintf(" Distance %.1f  Best %.1f ", g.Distance(), best)
	if g.Config().Physics.DebugCollisions {
		hud += fmt.Sprintf(" Fallbacks %d ", g.Simulation().Fallbacks())
	}
	switch {
	case g.Dead():
		hud += " GAME OVER - r to retry, esc to quit"
	case g.Paused():
		hud += " PAUSED"
	}
	r.drawText(0, 0, hud, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	cols, _ := r.screen.Size()
	for _, ch := range s {
		if x >= cols {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
