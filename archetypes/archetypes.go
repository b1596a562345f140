package archetypes

import (
	"github.com/automoto/buildyguy/components"
	"github.com/automoto/buildyguy/physics"
	"github.com/automoto/buildyguy/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		physics.Body,
		components.Sprite,
	)
	Platform = newArchetype(
		tags.Platform,
		physics.Body,
		components.Sprite,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		physics.Body,
		components.Sprite,
		components.Mover,
	)
	Wall = newArchetype(
		tags.Wall,
		physics.Body,
		components.Sprite,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Runner = newArchetype(
		components.Runner,
		components.Input,
		components.Simulation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
