package terminal

import (
	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/runner"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses but never releases, so a press holds its
// action for a number of ticks. Auto-repeat keeps a held key alive.
const (
	moveHoldTicks = 8
	jumpHoldTicks = 12
	tapTicks      = 1
)

// Keys turns key presses into per-tick held state.
type Keys struct {
	held [cfg.ActionCount]int
}

// ActionForKey maps a key event to its action.
func ActionForKey(ev *tcell.EventKey) (cfg.ActionID, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft, true
	case tcell.KeyRight:
		return cfg.ActionMoveRight, true
	case tcell.KeyUp:
		return cfg.ActionJump, true
	case tcell.KeyRune:
	default:
		return cfg.ActionNone, false
	}

	switch ev.Rune() {
	case 'a', 'h':
		return cfg.ActionMoveLeft, true
	case 'd', 'l':
		return cfg.ActionMoveRight, true
	case ' ', 'w', 'k':
		return cfg.ActionJump, true
	case '1':
		return cfg.ActionSpawnBottom, true
	case '2':
		return cfg.ActionSpawnMiddle, true
	case '3':
		return cfg.ActionSpawnTop, true
	case 'f':
		return cfg.ActionSpawnFloating, true
	case 'p':
		return cfg.ActionPause, true
	case 'r':
		return cfg.ActionRestart, true
	}
	return cfg.ActionNone, false
}

// Press holds a for as long as its kind of action lasts.
func (k *Keys) Press(a cfg.ActionID) {
	switch a {
	case cfg.ActionMoveLeft:
		k.held[cfg.ActionMoveRight] = 0
		k.held[a] = moveHoldTicks
	case cfg.ActionMoveRight:
		k.held[cfg.ActionMoveLeft] = 0
		k.held[a] = moveHoldTicks
	case cfg.ActionJump:
		// A repeat while held must not release and press again.
		k.held[a] = jumpHoldTicks
	case cfg.ActionNone:
	default:
		k.held[a] = tapTicks
	}
}

// Tick returns the held actions for one update and ages every hold.
func (k *Keys) Tick() runner.Input {
	var in runner.Input
	for a := range k.held {
		if k.held[a] > 0 {
			in[a] = true
			k.held[a]--
		}
	}
	return in
}
