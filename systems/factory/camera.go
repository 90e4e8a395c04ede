package factory

import (
	"github.com/automoto/coindash/archetypes"
	"github.com/automoto/coindash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
