package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
)

// UpdateHealth starts the death countdown when health runs out and removes
// entities whose countdown has expired. The delay gives death effects a
// moment on screen before the entity disappears.
func UpdateHealth(e *ecs.ECS) {
	var expired []*donburi.Entry
	components.Death.Each(e.World, func(entry *donburi.Entry) {
		death := components.Death.Get(entry)

		if !death.Dying && entry.HasComponent(components.Health) {
			if components.Health.Get(entry).Current <= 0 {
				death.Dying = true
				death.Seconds = cfg.Player.DieDelaySeconds
			}
		}

		if !death.Dying {
			return
		}
		death.Seconds -= cfg.World.DeltaTime
		if death.Seconds <= 0 {
			expired = append(expired, entry)
		}
	})

	for _, entry := range expired {
		e.World.Remove(entry.Entity())
	}
}
