package factory

import (
	"github.com/automoto/buildyguy/archetypes"
	"github.com/automoto/buildyguy/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
