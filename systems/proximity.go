package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
)

// UpdateProximity gates simulation to a window around the focus point.
func UpdateProximity(e *ecs.ECS) {
	GateSimulation(e)
}

// GateSimulation applies the proximity gate and returns how many entities
// are left simulating this tick. Entities outside the window freeze in
// place; entities flagged KillWhenOutOfRange are removed instead. Anything
// whose hitbox top falls below the kill depth is removed outright, no death
// sequence.
func GateSimulation(e *ecs.ECS) int {
	focus, ok := simulationFocus(e)
	if !ok {
		return 0
	}

	active := 0
	var doomed []*donburi.Entry
	components.Simulate.Each(e.World, func(entry *donburi.Entry) {
		sim := components.Simulate.Get(entry)
		obj := components.Object.Get(entry)

		if obj.Rect.Top() > cfg.World.KillDepth {
			doomed = append(doomed, entry)
			return
		}

		if sim.AlwaysUpdate {
			sim.Active = true
			active++
			return
		}

		center := obj.Rect.Center()
		inRange := math.Abs(center.X-focus.X) <= cfg.World.ProcessDistanceX &&
			math.Abs(center.Y-focus.Y) <= cfg.World.ProcessDistanceY
		if !inRange && sim.KillWhenOutOfRange {
			doomed = append(doomed, entry)
			return
		}
		sim.Active = inRange
		if inRange {
			active++
		}
	})

	for _, entry := range doomed {
		e.World.Remove(entry.Entity())
	}
	return active
}
