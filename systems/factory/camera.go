package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/archetypes"
	"github.com/lunarpitch/voidfall/components"
	"github.com/lunarpitch/voidfall/world"
)

func CreateCamera(e *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(camera, components.CameraData{
		Position: world.Vec2{X: x, Y: y},
	})
	return camera
}
