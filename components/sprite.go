package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// DrawOrder buckets entities for rendering; Back is drawn first.
type DrawOrder int

const (
	DrawBack DrawOrder = iota
	DrawFront
)

type SpriteData struct {
	Color color.RGBA
	Order DrawOrder
}

var Sprite = donburi.NewComponentType[SpriteData]()
