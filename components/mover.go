package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MoverData drives a kinematic body along a tweened vertical path. The tween
// yields a y offset from BaseY; the mover system turns it into velocity.
type MoverData struct {
	Sequence *gween.Sequence
	BaseY    float64
}

var Mover = donburi.NewComponentType[MoverData]()
