package runner

import "github.com/automoto/buildyguy/shared/gamemath"

// Project maps a world box into a w×h target where view fills the target.
func Project(box, view gamemath.Rect, w, h float64) gamemath.Rect {
	sx := w / view.W
	sy := h / view.H
	return gamemath.NewRect((box.X-view.X)*sx, (box.Y-view.Y)*sy, box.W*sx, box.H*sy)
}
