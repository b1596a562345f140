package systems

import (
	"math"
	"testing"

	"github.com/automoto/buildyguy/components"
	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/automoto/buildyguy/systems/factory"
	"github.com/automoto/buildyguy/tags"
	"github.com/yohamta/donburi"
)

func TestUpdateMoversFollowsTween(t *testing.T) {
	tw := newTestWorld(t, 10, 0.1)
	sim := components.Simulation.Get(tw.runner).Simulation
	start := gamemath.NewRect(0, 0.8, 0.5, 0.05)
	platform := factory.CreateFloatingPlatform(tw.w, tw.c, start)
	body := physics.Body.Get(platform)

	UpdateMovers(tw.w)
	if body.VY >= 0 {
		t.Fatalf("VY = %v, want upward", body.VY)
	}

	steps := int(math.Round(tw.c.Runner.FloatingDuration / tw.c.Runner.TimeStep))
	for i := 0; i < steps; i++ {
		if i > 0 {
			UpdateMovers(tw.w)
		}
		sim.Step(tw.c.Runner.TimeStep)
	}

	want := start.Y - tw.c.Runner.FloatingRange
	if math.Abs(body.Box.Y-want) > 1e-3 {
		t.Errorf("Y after one leg = %v, want %v", body.Box.Y, want)
	}
	if body.Box.X != start.X {
		t.Errorf("X drifted to %v", body.Box.X)
	}
}

func TestUpdateCamera(t *testing.T) {
	tw := newTestWorld(t, 0.5, 0.4)
	for i := 0; i < 60; i++ {
		UpdateCamera(tw.w)
	}
	rc := tw.c.Runner
	want := 60 * rc.CameraSpeed * rc.TimeStep
	if math.Abs(tw.camera().Position.X-want) > 1e-9 {
		t.Errorf("camera x = %v, want %v", tw.camera().Position.X, want)
	}
	approxEqual(t, "Distance", tw.state().Distance, tw.camera().Position.X)
}

func TestUpdateWalls(t *testing.T) {
	tw := newTestWorld(t, 0.5, 0.4)
	rc := tw.c.Runner

	tw.camera().Position.X = rc.AspectRatio - 0.01
	UpdateWalls(tw.w)
	if n := countTagged(tw.w, tags.Wall); n != 0 {
		t.Fatalf("walls before the mark = %d", n)
	}

	mark := tw.state().NextWall
	tw.camera().Position.X = mark
	UpdateWalls(tw.w)

	var boxes []gamemath.Rect
	tags.Wall.Each(tw.w, func(e *donburi.Entry) {
		body := physics.Body.Get(e)
		if !body.IsHazard {
			t.Error("wall is not a hazard")
		}
		boxes = append(boxes, body.Box)
	})
	if len(boxes) != 2 {
		t.Fatalf("walls = %d, want 2", len(boxes))
	}
	top, bottom := boxes[0], boxes[1]
	if top.Y > bottom.Y {
		top, bottom = bottom, top
	}
	approxEqual(t, "top x", top.X, rc.AspectRatio+mark)
	approxEqual(t, "gap", bottom.Top()-top.Bottom(), rc.WallGap)
	if gap := top.Bottom(); gap < rc.WallHeightMin || gap >= rc.WallHeightMax {
		t.Errorf("gap top = %v, want in [%v, %v)", gap, rc.WallHeightMin, rc.WallHeightMax)
	}

	spacing := tw.state().NextWall - mark
	if spacing < rc.WallSpacingMin || spacing >= rc.WallSpacingMax {
		t.Errorf("spacing = %v, want in [%v, %v)", spacing, rc.WallSpacingMin, rc.WallSpacingMax)
	}
}

func TestUpdatePhysicsLanding(t *testing.T) {
	tw := newTestWorld(t, 0.5, 0.4)
	factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(0, 0.52, 2, 0.05))

	for i := 0; i < 30; i++ {
		UpdatePhysics(tw.w)
	}

	approxEqual(t, "player bottom", tw.body().Box.Bottom(), 0.52)
	if n := tw.count(components.EventLanded); n != 1 {
		t.Errorf("landed events = %d, want 1", n)
	}
	player := components.Player.Get(tw.player)
	if !player.WasGrounded || player.LastGrounded != tw.state().Time {
		t.Errorf("player = %+v at time %v", player, tw.state().Time)
	}
	approxEqual(t, "time", tw.state().Time, 30*tw.c.Runner.TimeStep)
	if tw.state().Dead {
		t.Error("player died on a platform")
	}
}

func TestUpdatePhysicsDeath(t *testing.T) {
	tests := []struct {
		name  string
		setup func(tw *testWorld)
	}{
		{"hazard below", func(tw *testWorld) {
			factory.CreateWall(tw.w, tw.c, gamemath.NewRect(0, 0.5, 2, 0.1))
		}},
		{"hazard moving into player", func(tw *testWorld) {
			factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(0, 0.5, 2, 0.1))
			wall := factory.CreateWall(tw.w, tw.c, gamemath.NewRect(0.56, 0.3, 0.1, 0.2))
			physics.Body.Get(wall).VX = -1
		}},
		{"fell below the screen", func(tw *testWorld) {
			tw.body().Box.Y = 1.2
		}},
		{"left behind", func(tw *testWorld) {
			factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(0, 0.5, 2, 0.1))
			tw.camera().Position.X = 1
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld(t, 0.5, 0.4)
			tt.setup(tw)
			UpdatePhysics(tw.w)

			if !tw.state().Dead {
				t.Fatal("player survived")
			}
			if n := tw.count(components.EventDied); n != 1 {
				t.Errorf("died events = %d, want 1", n)
			}
		})
	}
}

func TestUpdateCulling(t *testing.T) {
	tw := newTestWorld(t, 0, 0.4)
	tw.camera().Position.X = 5

	behind := factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(0, 0.5, 1, 0.05))
	edge := factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(4.9, 0.5, 1, 0.05))
	ahead := factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(20, 0.5, 1, 0.05))
	spawned := factory.CreateWall(tw.w, tw.c, gamemath.NewRect(5+tw.c.Runner.AspectRatio, -999, 0.1, 1000))
	below := factory.CreatePlatform(tw.w, tw.c, gamemath.NewRect(5.5, 10, 1, 0.05))

	UpdateCulling(tw.w)

	for _, tc := range []struct {
		name  string
		entry *donburi.Entry
		alive bool
	}{
		{"player", tw.player, true},
		{"behind", behind, false},
		{"edge", edge, true},
		{"ahead", ahead, true},
		{"spawned wall", spawned, true},
		{"below", below, false},
	} {
		if got := tw.w.Valid(tc.entry.Entity()); got != tc.alive {
			t.Errorf("%s alive = %v, want %v", tc.name, got, tc.alive)
		}
	}
}

func TestGameplayChecks(t *testing.T) {
	tw := newTestWorld(t, 0.5, 0.4)
	calls := 0
	system := WithGameplayChecks(func(donburi.World) { calls++ })

	system(tw.w)
	tw.state().Paused = true
	system(tw.w)
	tw.state().Paused = false
	tw.state().Dead = true
	system(tw.w)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestUpdatePause(t *testing.T) {
	tw := newTestWorld(t, 0.5, 0.4)

	tw.press(cfg.ActionPause)
	UpdatePause(tw.w)
	if !tw.state().Paused {
		t.Fatal("not paused")
	}

	// Held key does not toggle again.
	tw.press(cfg.ActionPause)
	UpdatePause(tw.w)
	if !tw.state().Paused {
		t.Fatal("unpaused while held")
	}

	tw.press()
	tw.press(cfg.ActionPause)
	UpdatePause(tw.w)
	if tw.state().Paused {
		t.Fatal("still paused")
	}

	tw.state().Dead = true
	tw.press()
	tw.press(cfg.ActionPause)
	UpdatePause(tw.w)
	if tw.state().Paused {
		t.Error("paused after death")
	}
}
