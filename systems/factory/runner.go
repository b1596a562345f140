package factory

import (
	"math/rand"

	"github.com/automoto/buildyguy/archetypes"
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/yohamta/donburi"
)

// CreateRunner spawns the singleton holding game rules, input and the
// physics simulation stepping w.
func CreateRunner(w donburi.World, c *config.Config, seed int64) *donburi.Entry {
	runner := archetypes.Runner.Spawn(w)

	components.Runner.Set(runner, &components.RunnerData{
		Config:   c,
		Rand:     rand.New(rand.NewSource(seed)),
		NextWall: c.Runner.AspectRatio,
	})
	components.Input.Set(runner, &components.InputData{})
	components.Simulation.SetValue(runner, components.SimulationData{
		Simulation: physics.NewSimulation(w, c.Physics),
	})

	return runner
}
