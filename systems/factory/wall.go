package factory

import (
	"github.com/automoto/buildyguy/archetypes"
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateWall spawns a hazard segment. Touching it ends the run.
func CreateWall(w donburi.World, c *config.Config, box gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	physics.Body.SetValue(wall, physics.BodyData{
		Box:      box,
		IsHazard: true,
	})
	components.Sprite.SetValue(wall, components.SpriteData{
		Color: c.Palette.Wall,
		Order: components.DrawFront,
	})

	return wall
}

// CreateWallPair spawns two segments at x leaving a WallGap opening whose top
// edge is at gapTop.
func CreateWallPair(w donburi.World, c *config.Config, x, gapTop float64) (top, bottom *donburi.Entry) {
	rc := c.Runner
	top = CreateWall(w, c, gamemath.NewRect(x, gapTop-rc.WallSegmentLength, rc.WallWidth, rc.WallSegmentLength))
	bottom = CreateWall(w, c, gamemath.NewRect(x, gapTop+rc.WallGap, rc.WallWidth, rc.WallSegmentLength))
	return top, bottom
}
