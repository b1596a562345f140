package systems

import (
	"math"

	"github.com/automoto/buildyguy/components"
	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/automoto/buildyguy/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdatePlayer turns the current input into player velocity and spawns the
// platforms the player asked for.
func UpdatePlayer(w donburi.World) {
	entry, runner, ok := runnerOf(w)
	if !ok {
		return
	}
	playerEntry, ok := playerOf(w, runner)
	if !ok {
		return
	}

	input := components.Input.Get(entry)
	body := physics.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	rc := runner.Config.Runner

	handleMovementInput(input, body, rc)
	handleJumpInput(input, runner, player, body, playerEntry.Entity())
	handleSpawnInput(w, input, runner, body)

	body.VY = gamemath.ClampSpeed(body.VY, rc.MaxFallSpeed)
}

func handleMovementInput(input *components.InputData, body *physics.BodyData, rc cfg.RunnerConfig) {
	switch {
	case input.Pressed(cfg.ActionMoveLeft):
		body.VX = -rc.MoveSpeed
	case input.Pressed(cfg.ActionMoveRight):
		body.VX = rc.MoveSpeed
	default:
		body.VX = 0
	}
}

func handleJumpInput(input *components.InputData, runner *components.RunnerData, player *components.PlayerData, body *physics.BodyData, e donburi.Entity) {
	if input.JustPressed(cfg.ActionJump) && runner.Time-player.LastGrounded < runner.Config.Runner.CoyoteTime {
		body.VY = runner.Config.Runner.JumpSpeed
		// One jump per grounded window.
		player.LastGrounded = math.Inf(-1)
		runner.Emit(components.EventJumped, e)
	}

	// Short hop
	if input.JustReleased(cfg.ActionJump) && body.VY < 0 {
		body.VY /= 2
	}
}

func handleSpawnInput(w donburi.World, input *components.InputData, runner *components.RunnerData, body *physics.BodyData) {
	for _, action := range []cfg.ActionID{cfg.ActionSpawnBottom, cfg.ActionSpawnMiddle, cfg.ActionSpawnTop} {
		if !input.JustPressed(action) {
			continue
		}
		h, _ := cfg.SpawnHeight(action)
		platform := factory.CreatePlatform(w, runner.Config, factory.PlatformAt(runner.Config, body.Box.X, h))
		runner.Emit(components.EventPlatformSpawned, platform.Entity())
	}

	if input.JustPressed(cfg.ActionSpawnFloating) {
		platform := factory.CreateFloatingPlatform(w, runner.Config, factory.PlatformAt(runner.Config, body.Box.X, cfg.PlatformBottom))
		runner.Emit(components.EventPlatformSpawned, platform.Entity())
	}
}
