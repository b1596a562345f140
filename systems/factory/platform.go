package factory

import (
	"github.com/automoto/buildyguy/archetypes"
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// PlatformAt returns the box of a platform whose left edge is x and whose top
// sits at the configured height.
func PlatformAt(c *config.Config, x float64, h config.PlatformHeight) gamemath.Rect {
	return gamemath.NewRect(x, c.Runner.PlatformY(h), c.Runner.PlatformWidth, c.Runner.PlatformThickness)
}

func CreatePlatform(w donburi.World, c *config.Config, box gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	physics.Body.SetValue(platform, physics.BodyData{Box: box})
	components.Sprite.SetValue(platform, components.SpriteData{
		Color: c.Palette.Platform,
		Order: components.DrawBack,
	})

	return platform
}

// CreateFloatingPlatform spawns a platform that bobs up by FloatingRange and
// back. The physics step moves it, so it stops against anything in its way.
func CreateFloatingPlatform(w donburi.World, c *config.Config, box gamemath.Rect) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(w)
	physics.Body.SetValue(platform, physics.BodyData{Box: box})
	components.Sprite.SetValue(platform, components.SpriteData{
		Color: c.Palette.Floating,
		Order: components.DrawBack,
	})

	// The offset moves through a *gween.Sequence, up and back down again.
	rise := float32(-c.Runner.FloatingRange)
	leg := float32(c.Runner.FloatingDuration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, rise, leg, ease.InOutQuad),
		gween.New(rise, 0, leg, ease.InOutQuad),
	)
	components.Mover.SetValue(platform, components.MoverData{
		Sequence: tw,
		BaseY:    box.Y,
	})

	return platform
}
