package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
)

// UpdatePlatforms advances floating platform tween sequences. Platforms have
// no physics; the tween drives their vertical position directly.
func UpdatePlatforms(e *ecs.ECS) {
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		if !simActive(entry) {
			return
		}
		tween := components.Tween.Get(entry)
		if tween.Sequence == nil {
			return
		}

		y, _, seqDone := tween.Sequence.Update(float32(cfg.World.DeltaTime))
		obj := components.Object.Get(entry)
		obj.Rect.Y = float64(y)

		if seqDone {
			tween.Sequence.Reset()
		}
	})
}
