package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/archetypes"
	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/regiondata"
	"github.com/lunarpitch/voidfall/world"
)

func CreateCreature(e *ecs.ECS, typeName string, x, y float64) (*donburi.Entry, error) {
	typeCfg, ok := cfg.Creature.Types[typeName]
	if !ok {
		return nil, fmt.Errorf("unknown creature type %q", typeName)
	}

	creature := archetypes.Creature.Spawn(e)

	rect := world.Rect{X: x, Y: y, W: typeCfg.CollisionWidth, H: typeCfg.CollisionHeight}
	components.Object.SetValue(creature, components.ObjectData{
		Rect:      rect,
		DrawLevel: 5,
	})
	components.Creature.SetValue(creature, components.CreatureData{
		TypeName:    typeName,
		OriginX:     rect.CenterX(),
		Direction:   cfg.DirectionRight,
		PatrolSpeed: typeCfg.PatrolSpeed,
		PatrolRange: typeCfg.PatrolRange,
	})
	components.Physics.SetValue(creature, components.PhysicsData{
		GravityScale: 1,
		MaxVelocity:  typeCfg.MaxSpeed,
	})
	components.TileContacts.SetValue(creature, components.ContactsData{
		Contacts: world.NewContacts(),
	})
	components.Health.SetValue(creature, components.HealthData{
		Current: typeCfg.Health,
		Max:     typeCfg.Health,
	})
	components.Simulate.SetValue(creature, components.SimulateData{})
	components.Sprite.SetValue(creature, components.SpriteData{
		Color: typeCfg.TintColor,
	})
	components.Persist.SetValue(creature, components.PersistData{
		Kind: regiondata.SpawnCreature,
		Type: typeName,
	})

	return creature, nil
}
