package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/tags"
	"github.com/lunarpitch/voidfall/world"
)

// UpdateTileDamage applies damage from hazard tiles. A tile's damage sides
// are keyed by the entity side touching it: an entity standing on spikes
// takes the tile's bottom-side damage. Each hit knocks the entity away from
// the tile and starts a short grace period before it can be hit again.
func UpdateTileDamage(e *ecs.ECS) {
	components.Health.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.TileContacts) || !simActive(entry) {
			return
		}
		health := components.Health.Get(entry)
		if health.InvulnSeconds > 0 {
			health.InvulnSeconds -= cfg.World.DeltaTime
			return
		}
		contacts := components.TileContacts.Get(entry).Contacts

		for _, side := range [4]world.Side{world.SideTop, world.SideBottom, world.SideLeft, world.SideRight} {
			for t := range contacts.Side(side) {
				dmg, ok := t.Props.DamageSides[side]
				if !ok {
					continue
				}
				health.Current -= dmg.Amount
				health.InvulnSeconds = cfg.Hazard.InvulnSeconds
				knockAway(entry, t)
				if entry.HasComponent(tags.Player) {
					TriggerScreenShake(e, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
				}
				return
			}
		}
	})
}

// knockAway pushes the entity away from the tile it was hurt by.
func knockAway(entry *donburi.Entry, t *world.Tile) {
	if !entry.HasComponent(components.Object) || !entry.HasComponent(components.Physics) {
		return
	}
	dir := components.Object.Get(entry).Rect.Center().Add(t.Rect.Center().Scale(-1))
	length := dir.Len()
	if length == 0 {
		return
	}
	components.Physics.Get(entry).Accelerate(dir.Scale(cfg.Hazard.Knockback / length))
}
