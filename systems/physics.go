package systems

import (
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/physics"
	"github.com/yohamta/donburi"
)

// UpdatePhysics advances the run clock, steps the simulation and applies the
// outcome to the player: ground tracking for coyote jumps, landing events and
// death by hazard or by leaving the screen.
func UpdatePhysics(w donburi.World) {
	entry, runner, ok := runnerOf(w)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry).Simulation
	if sim == nil {
		return
	}

	dt := runner.Config.Runner.TimeStep
	runner.Time += dt
	sim.Step(dt)

	playerEntry, ok := playerOf(w, runner)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	e := playerEntry.Entity()

	grounded := sim.Grounded(e)
	if grounded {
		player.LastGrounded = runner.Time
		if !player.WasGrounded {
			runner.Emit(components.EventLanded, e)
		}
	}
	player.WasGrounded = grounded

	if sim.TouchingHazard(e) || offScreen(w, physics.Body.Get(playerEntry), runner) {
		runner.Dead = true
		runner.Emit(components.EventDied, e)
	}
}

// offScreen reports whether the body fell below the screen or was left
// behind by the camera.
func offScreen(w donburi.World, body *physics.BodyData, runner *components.RunnerData) bool {
	if body.Box.Top() > 1 {
		return true
	}
	camera, ok := cameraOf(w)
	return ok && body.Box.Right() < camera.Position.X
}
