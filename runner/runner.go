// Package runner is the headless side-scrolling game built on the physics
// core. A frontend feeds it one Input per tick and draws what Drawables
// returns; nothing here touches a window or a terminal.
package runner

import (
	"image/color"

	"github.com/automoto/buildyguy/components"
	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/automoto/buildyguy/shared/leveldata"
	"github.com/automoto/buildyguy/systems"
	"github.com/automoto/buildyguy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// Input is the pressed state of every action for one tick.
type Input [cfg.ActionCount]bool

// Press marks a as held.
func (in *Input) Press(a cfg.ActionID) {
	in[a] = true
}

// Drawable is one body to render, in world units.
type Drawable struct {
	Box   gamemath.Rect
	Color color.RGBA
	Order components.DrawOrder
}

// Game is one run. Restarting replaces the world; the Game value stays.
type Game struct {
	config *cfg.Config
	layout *leveldata.Layout
	seed   int64

	world   donburi.World
	systems []systems.System
}

var spriteQuery = donburi.NewQuery(filter.Contains(physics.Body, components.Sprite))

// New creates a run. layout may be nil for the default start: the player
// above a single middle platform.
func New(c *cfg.Config, seed int64, layout *leveldata.Layout) *Game {
	g := &Game{
		config: c,
		layout: layout,
		seed:   seed,
	}
	g.systems = []systems.System{
		systems.UpdatePause,
		systems.WithGameplayChecks(systems.UpdatePlayer),
		systems.WithGameplayChecks(systems.UpdateMovers),
		systems.WithGameplayChecks(systems.UpdateCamera),
		systems.WithGameplayChecks(systems.UpdateWalls),
		systems.WithGameplayChecks(systems.UpdatePhysics),
		systems.WithGameplayChecks(systems.UpdateCulling),
	}
	g.Reset()
	return g
}

// Reset starts the run over with the current seed.
func (g *Game) Reset() {
	g.world = donburi.NewWorld()
	rc := g.config.Runner

	runnerEntry := factory.CreateRunner(g.world, g.config, g.seed)
	factory.CreateCamera(g.world)

	spawnX, spawnY := rc.AspectRatio/2, rc.PlayerSpawnY
	if g.layout == nil {
		factory.CreatePlatform(g.world, g.config, factory.PlatformAt(g.config, spawnX-rc.PlatformWidth/2, cfg.PlatformMiddle))
	} else {
		for _, box := range g.layout.Platforms {
			factory.CreatePlatform(g.world, g.config, box)
		}
		for _, box := range g.layout.Floating {
			factory.CreateFloatingPlatform(g.world, g.config, box)
		}
		for _, box := range g.layout.Hazards {
			factory.CreateWall(g.world, g.config, box)
		}
		if g.layout.HasSpawn {
			spawnX, spawnY = g.layout.Spawn.X, g.layout.Spawn.Y
		}
	}

	player := factory.CreatePlayer(g.world, g.config, spawnX, spawnY)
	components.Runner.Get(runnerEntry).Player = player.Entity()
}

// Update advances the run by one tick. Pressing restart begins a new run with
// the next seed.
func (g *Game) Update(in Input) {
	entry := g.runnerEntry()
	input := components.Input.Get(entry)
	input.Advance(in)

	if input.JustPressed(cfg.ActionRestart) {
		g.seed++
		g.Reset()
		// Keys held across the restart are not pressed again.
		components.Input.Get(g.runnerEntry()).Current = in
		return
	}

	runner := components.Runner.Get(entry)
	runner.Events = runner.Events[:0]

	for _, system := range g.systems {
		system(g.world)
	}
}

func (g *Game) runnerEntry() *donburi.Entry {
	entry, ok := components.Runner.First(g.world)
	if !ok {
		panic("runner: world has no runner")
	}
	return entry
}

func (g *Game) state() *components.RunnerData {
	return components.Runner.Get(g.runnerEntry())
}

func (g *Game) Config() *cfg.Config  { return g.config }
func (g *Game) World() donburi.World { return g.world }
func (g *Game) Seed() int64          { return g.seed }

func (g *Game) Dead() bool        { return g.state().Dead }
func (g *Game) Paused() bool      { return g.state().Paused }
func (g *Game) Time() float64     { return g.state().Time }
func (g *Game) Distance() float64 { return g.state().Distance }

// Events returns what happened during the last Update. The slice is reused.
func (g *Game) Events() []components.Event {
	return g.state().Events
}

// Camera returns the top-left corner of the visible window.
func (g *Game) Camera() math.Vec2 {
	entry, ok := components.Camera.First(g.world)
	if !ok {
		return math.Vec2{}
	}
	return components.Camera.Get(entry).Position
}

// View returns the visible window in world units.
func (g *Game) View() gamemath.Rect {
	return systems.ViewRect(g.Camera().X, g.config.Runner.AspectRatio)
}

// Player returns the player box.
func (g *Game) Player() (gamemath.Rect, bool) {
	e := g.state().Player
	if !g.world.Valid(e) {
		return gamemath.Rect{}, false
	}
	return physics.Body.Get(g.world.Entry(e)).Box, true
}

// Simulation returns the physics simulation stepping the current world.
func (g *Game) Simulation() *physics.Simulation {
	return components.Simulation.Get(g.runnerEntry()).Simulation
}

// Drawables appends every visible body to dst, back layer first.
func (g *Game) Drawables(dst []Drawable) []Drawable {
	for _, order := range []components.DrawOrder{components.DrawBack, components.DrawFront} {
		spriteQuery.Each(g.world, func(e *donburi.Entry) {
			sprite := components.Sprite.Get(e)
			if sprite.Order != order {
				return
			}
			dst = append(dst, Drawable{
				Box:   physics.Body.Get(e).Box,
				Color: sprite.Color,
				Order: sprite.Order,
			})
		})
	}
	return dst
}
