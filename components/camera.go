package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarpitch/voidfall/world"
)

type CameraData struct {
	Position world.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
