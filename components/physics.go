package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/gamemath"
	"github.com/lunarpitch/voidfall/world"
)

// PhysicsData drives the per-tick motion integration. Velocity is in pixels
// per second; GravityScale lets props float (0) or sink faster (>1).
type PhysicsData struct {
	Velocity     world.Vec2
	GravityScale float64
	MaxVelocity  float64
}

// ContactsData holds the tile contacts left by the entity's most recent
// move, one set per hitbox side. Gravity and friction read the previous
// tick's sets before movement rebuilds them.
type ContactsData struct {
	*world.Contacts
}

var Physics = donburi.NewComponentType[PhysicsData]()
var TileContacts = donburi.NewComponentType[ContactsData]()

// Accelerate adds a velocity delta and clamps each component to the
// entity's cap (or the global cap when the entity has none).
func (p *PhysicsData) Accelerate(delta world.Vec2) {
	max := p.MaxVelocity
	if max <= 0 || max > cfg.World.MaxVelocity {
		max = cfg.World.MaxVelocity
	}
	p.Velocity.X = gamemath.ClampSpeed(p.Velocity.X+delta.X, max)
	p.Velocity.Y = gamemath.ClampSpeed(p.Velocity.Y+delta.Y, max)
}
