package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
)

// UpdateCreatures walks patrol creatures back and forth around their spawn
// point. They turn at the patrol range boundary or when a wall blocks them.
func UpdateCreatures(e *ecs.ECS) {
	components.Creature.Each(e.World, func(entry *donburi.Entry) {
		if !simActive(entry) {
			return
		}
		creature := components.Creature.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)
		contacts := components.TileContacts.Get(entry).Contacts
		death := components.Death.Get(entry)

		if death.Dying {
			physics.Velocity.X = 0
			return
		}

		blocked := (creature.Direction > 0 && !contacts.Right.Empty()) ||
			(creature.Direction < 0 && !contacts.Left.Empty())
		pastRange := math.Abs(obj.Rect.CenterX()-creature.OriginX) > creature.PatrolRange &&
			(obj.Rect.CenterX()-creature.OriginX)*creature.Direction > 0
		if blocked || pastRange {
			creature.Direction = -creature.Direction
		}

		physics.Velocity.X = creature.Direction * creature.PatrolSpeed
	})
}
