package systems

import (
	"github.com/automoto/buildyguy/components"
	cfg "github.com/automoto/buildyguy/config"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles the pause state. It must not be wrapped with
// WithGameplayChecks or the game could never be resumed.
func UpdatePause(w donburi.World) {
	entry, runner, ok := runnerOf(w)
	if !ok || runner.Dead {
		return
	}
	if components.Input.Get(entry).JustPressed(cfg.ActionPause) {
		runner.Paused = !runner.Paused
	}
}

// WithPauseCheck wraps a system to skip execution while paused.
func WithPauseCheck(system System) System {
	return func(w donburi.World) {
		if _, runner, ok := runnerOf(w); ok && runner.Paused {
			return
		}
		system(w)
	}
}

// WithDeathCheck wraps a system to skip execution once the run is over.
func WithDeathCheck(system System) System {
	return func(w donburi.World) {
		if _, runner, ok := runnerOf(w); ok && runner.Dead {
			return
		}
		system(w)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or dead.
func WithGameplayChecks(system System) System {
	return WithPauseCheck(WithDeathCheck(system))
}
