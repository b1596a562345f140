package components

import (
	cfg "github.com/automoto/buildyguy/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous update's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing updates.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Advance shifts the current state into Previous and records the new one.
func (in *InputData) Advance(actions [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = actions
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}
