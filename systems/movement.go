package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/gamemath"
	"github.com/lunarpitch/voidfall/world"
)

// UpdateMovement integrates entity motion against the chunk grid. The sweep
// is axis-separated, vertical first: resolving Y before X is what lets an
// entity slide along the ground into the base of a slope instead of being
// stopped by it.
func UpdateMovement(e *ecs.ECS) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return
	}
	chunks := components.Region.Get(regionEntry).Chunks

	components.TileContacts.Each(e.World, func(entry *donburi.Entry) {
		if !simActive(entry) {
			return
		}
		obj := components.Object.Get(entry)
		physics := components.Physics.Get(entry)
		contacts := components.TileContacts.Get(entry).Contacts

		MoveEntity(chunks, &obj.Rect, &physics.Velocity, contacts, cfg.World.DeltaTime)
	})
}

// MoveEntity advances one hitbox by velocity*dt with collision, rebuilding
// its contact sets, then reconciles velocity with what the world allowed:
// components pushing into a contacted side zero out, and ground friction
// bleeds horizontal speed.
func MoveEntity(chunks *world.ChunkManager, rect *world.Rect, vel *world.Vec2, contacts *world.Contacts, dt float64) {
	contacts.Clear()

	moveX := vel.X * dt
	moveY := vel.Y * dt

	rect.Y += moveY
	chunks.CollideEntityY(rect, moveY, contacts)
	rect.X += moveX
	chunks.CollideEntityX(rect, moveX, contacts)

	// A velocity component pointing into a contact is spent.
	if vel.Y > 0 && !contacts.Bottom.Empty() {
		vel.Y = 0
	}
	if vel.Y < 0 && !contacts.Top.Empty() {
		vel.Y = 0
	}
	if vel.X > 0 && !contacts.Right.Empty() {
		vel.X = 0
	}
	if vel.X < 0 && !contacts.Left.Empty() {
		vel.X = 0
	}

	if contacts.OnGround() {
		friction := cfg.World.FrictionMultiplier * contacts.MaxFriction(world.SideBottom) * dt
		vel.X = gamemath.ApplyFriction(vel.X, friction)
	}

	if math.Hypot(vel.X, vel.Y) < cfg.World.NegligibleVelocity {
		vel.X = 0
		vel.Y = 0
	}
}
