package systems

import (
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	"github.com/lunarpitch/voidfall/tags"
	"github.com/lunarpitch/voidfall/world"
)

// simulationFocus is the point chunk streaming and proximity gating center
// on: the player's hitbox center, or the camera when no player exists.
func simulationFocus(e *ecs.ECS) (world.Vec2, bool) {
	if playerEntry, ok := tags.Player.First(e.World); ok {
		return components.Object.Get(playerEntry).Rect.Center(), true
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(cameraEntry).Position, true
	}
	return world.Vec2{}, false
}

// UpdateStreaming moves the chunk working set toward the focus point. Runs
// before movement each tick so collision never sees a stale set.
func UpdateStreaming(e *ecs.ECS) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return
	}
	region := components.Region.Get(regionEntry)

	focus, ok := simulationFocus(e)
	if !ok {
		return
	}
	if err := region.Chunks.Update(focus); err != nil {
		log.Printf("chunk streaming: %v", err)
	}
}
