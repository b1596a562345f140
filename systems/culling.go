package systems

import (
	"math"

	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var bodyQuery = donburi.NewQuery(filter.Contains(physics.Body))

// UpdateCulling removes every body the camera has left behind, or that lies
// above or below the padded view, except the player. Bodies ahead of the view
// are kept so they can scroll in.
func UpdateCulling(w donburi.World) {
	_, runner, ok := runnerOf(w)
	if !ok {
		return
	}
	camera, ok := cameraOf(w)
	if !ok {
		return
	}

	rc := runner.Config.Runner
	view := ViewRect(camera.Position.X, rc.AspectRatio).Inflate(rc.CullMargin)
	view.W = math.Inf(1)

	var culled []donburi.Entity
	bodyQuery.Each(w, func(e *donburi.Entry) {
		if e.Entity() == runner.Player {
			return
		}
		if !gamemath.Intersects(physics.Body.Get(e).Box, view) {
			culled = append(culled, e.Entity())
		}
	})
	for _, e := range culled {
		w.Remove(e)
	}
}

// ViewRect is the visible window for a camera at x.
func ViewRect(x, aspect float64) gamemath.Rect {
	return gamemath.NewRect(x, 0, aspect, 1)
}
