package scenes

import (
	"image/color"

	"github.com/automoto/buildyguy/fonts"
	"github.com/automoto/buildyguy/runner"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOutline = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// drawWorld fills every drawable projected from view onto the screen.
func drawWorld(screen *ebiten.Image, drawables []runner.Drawable, view gamemath.Rect, debug bool) {
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	for _, d := range drawables {
		r := runner.Project(d.Box, view, w, h)
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), d.Color, false)
		if debug {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, debugOutline, false)
		}
	}
}

var faces = map[fonts.FontName]text.Face{}

func face(name fonts.FontName) text.Face {
	f, ok := faces[name]
	if !ok {
		f = text.NewGoXFace(name.Get())
		faces[name] = f
	}
	return f
}

func drawText(screen *ebiten.Image, s string, name fonts.FontName, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face(name), op)
}

// drawCentered draws s horizontally centred on the screen at y.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y float64, clr color.Color) {
	width, _ := text.Measure(s, face(name), 0)
	x := (float64(screen.Bounds().Dx()) - width) / 2
	drawText(screen, s, name, x, y, clr)
}
