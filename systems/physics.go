package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/world"
)

// UpdatePhysics applies gravity. It reads the contact sets left by the
// previous tick's movement pass: an entity that ended last tick on the
// ground accumulates no fall speed, which keeps it glued to slopes.
func UpdatePhysics(e *ecs.ECS) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return
	}
	gravity := components.Region.Get(regionEntry).Gravity

	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if !simActive(entry) {
			return
		}
		physics := components.Physics.Get(entry)

		var delta world.Vec2
		if entry.HasComponent(components.TileContacts) {
			contacts := components.TileContacts.Get(entry)
			if !contacts.OnGround() {
				delta.Y = gravity * physics.GravityScale * cfg.World.DeltaTime
			}
		}
		physics.Accelerate(delta)
	})
}

// AccelerateAll applies one velocity delta to every simulated physics
// entity, clamped per entity. Region-wide impulses (gravity shifts,
// shockwaves) go through here.
func AccelerateAll(e *ecs.ECS, delta world.Vec2) {
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		if !simActive(entry) {
			return
		}
		components.Physics.Get(entry).Accelerate(delta)
	})
}

// simActive reports whether the proximity gate lets this entity step.
// Entities without a Simulate component always step.
func simActive(entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Simulate) {
		return true
	}
	return components.Simulate.Get(entry).Active
}
