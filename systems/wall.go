package systems

import (
	"github.com/automoto/buildyguy/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateWalls spawns a hazard wall pair one screen ahead each time the camera
// passes the next wall mark, then moves the mark by a random spacing.
func UpdateWalls(w donburi.World) {
	_, runner, ok := runnerOf(w)
	if !ok {
		return
	}
	camera, ok := cameraOf(w)
	if !ok || camera.Position.X < runner.NextWall {
		return
	}

	rc := runner.Config.Runner
	gapTop := randRange(runner.Rand.Float64(), rc.WallHeightMin, rc.WallHeightMax)
	factory.CreateWallPair(w, runner.Config, rc.AspectRatio+runner.NextWall, gapTop)
	runner.NextWall += randRange(runner.Rand.Float64(), rc.WallSpacingMin, rc.WallSpacingMax)
}

// randRange maps u in [0, 1) onto [lo, hi).
func randRange(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
