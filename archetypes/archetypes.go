package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.TileContacts,
		components.Health,
		components.Death,
		components.Simulate,
		components.Sprite,
	)
	Creature = newArchetype(
		tags.Creature,
		components.Creature,
		components.Object,
		components.Physics,
		components.TileContacts,
		components.Health,
		components.Death,
		components.Simulate,
		components.Sprite,
		components.Persist,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
		components.Simulate,
		components.Sprite,
	)
	Ship = newArchetype(
		tags.Ship,
		components.Object,
		components.Simulate,
		components.Sprite,
		components.Persist,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Region = newArchetype(
		components.Region,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{components: cs}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return entry
}
