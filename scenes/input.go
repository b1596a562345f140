package scenes

import (
	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/runner"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each action to the keys that hold it.
var keyBindings = [cfg.ActionCount][]ebiten.Key{
	cfg.ActionMoveLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionJump:          {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionSpawnBottom:   {ebiten.KeyJ},
	cfg.ActionSpawnMiddle:   {ebiten.KeyK},
	cfg.ActionSpawnTop:      {ebiten.KeyL},
	cfg.ActionSpawnFloating: {ebiten.KeyI},
	cfg.ActionPause:         {ebiten.KeyP},
	cfg.ActionRestart:       {ebiten.KeyR},
}

func readInput() runner.Input {
	var in runner.Input
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in[action] = true
				break
			}
		}
	}
	return in
}
