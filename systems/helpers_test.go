package systems

import (
	"math"
	"testing"

	"github.com/automoto/buildyguy/components"
	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type testWorld struct {
	w      donburi.World
	c      *cfg.Config
	runner *donburi.Entry
	player *donburi.Entry
}

// newTestWorld builds a runner, a camera at x=0 and a player at (x, y) with
// nothing to stand on.
func newTestWorld(t *testing.T, x, y float64) *testWorld {
	t.Helper()
	c := cfg.Default()
	w := donburi.NewWorld()
	runner := factory.CreateRunner(w, c, 1)
	factory.CreateCamera(w)
	player := factory.CreatePlayer(w, c, x, y)
	components.Runner.Get(runner).Player = player.Entity()
	return &testWorld{w: w, c: c, runner: runner, player: player}
}

func (tw *testWorld) state() *components.RunnerData {
	return components.Runner.Get(tw.runner)
}

func (tw *testWorld) body() *physics.BodyData {
	return physics.Body.Get(tw.player)
}

func (tw *testWorld) camera() *components.CameraData {
	camera, _ := cameraOf(tw.w)
	return camera
}

// press records the held actions for the next update.
func (tw *testWorld) press(actions ...cfg.ActionID) {
	var held [cfg.ActionCount]bool
	for _, a := range actions {
		held[a] = true
	}
	components.Input.Get(tw.runner).Advance(held)
}

func (tw *testWorld) count(kind components.EventKind) int {
	n := 0
	for _, ev := range tw.state().Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func approxEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func countTagged(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}
