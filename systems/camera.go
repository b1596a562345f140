package systems

import (
	"github.com/yohamta/donburi"
)

// UpdateCamera scrolls the view at a constant speed. The distance travelled is
// the camera's x position.
func UpdateCamera(w donburi.World) {
	_, runner, ok := runnerOf(w)
	if !ok {
		return
	}
	camera, ok := cameraOf(w)
	if !ok {
		return
	}

	rc := runner.Config.Runner
	camera.Position.X += rc.CameraSpeed * rc.TimeStep
	runner.Distance = camera.Position.X
}
