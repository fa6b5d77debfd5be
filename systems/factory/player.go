package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/archetypes"
	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/world"
)

func CreatePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	components.Object.SetValue(player, components.ObjectData{
		Rect:      world.Rect{X: x, Y: y, W: cfg.Player.CollisionWidth, H: cfg.Player.CollisionHeight},
		DrawLevel: 10,
	})
	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		GravityScale: 1,
	})
	components.TileContacts.SetValue(player, components.ContactsData{
		Contacts: world.NewContacts(),
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Simulate.SetValue(player, components.SimulateData{
		Active:       true,
		AlwaysUpdate: true,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Color: cfg.White,
	})

	return player
}
