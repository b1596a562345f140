package systems

import (
	"github.com/automoto/buildyguy/components"
	"github.com/yohamta/donburi"
)

// System is one stage of a runner update. Systems run in a fixed order on the
// loop goroutine and never touch rendering.
type System func(w donburi.World)

// runnerOf returns the runner singleton, if the world has one.
func runnerOf(w donburi.World) (*donburi.Entry, *components.RunnerData, bool) {
	entry, ok := components.Runner.First(w)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Runner.Get(entry), true
}

// playerOf returns the live player entry of the run.
func playerOf(w donburi.World, runner *components.RunnerData) (*donburi.Entry, bool) {
	if !w.Valid(runner.Player) {
		return nil, false
	}
	return w.Entry(runner.Player), true
}

// cameraOf returns the camera singleton.
func cameraOf(w donburi.World) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}
