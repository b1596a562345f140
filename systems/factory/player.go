package factory

import (
	"github.com/automoto/buildyguy/archetypes"
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its top-left corner at (x, y).
func CreatePlayer(w donburi.World, c *config.Config, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	physics.Body.SetValue(player, physics.BodyData{
		Box:          gamemath.NewRect(x, y, c.Runner.PlayerWidth, c.Runner.PlayerHeight),
		ObeysGravity: true,
	})
	components.Player.SetValue(player, components.PlayerData{})
	components.Sprite.SetValue(player, components.SpriteData{
		Color: c.Palette.Player,
		Order: components.DrawFront,
	})

	return player
}
