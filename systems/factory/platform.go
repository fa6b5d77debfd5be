package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/archetypes"
	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/world"
)

func CreateFloatingPlatform(e *ecs.ECS, x, y, targetY float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(e)

	components.Object.SetValue(platform, components.ObjectData{
		Rect:      world.Rect{X: x, Y: y, W: cfg.Platform.Width, H: cfg.Platform.Height},
		DrawLevel: 3,
	})

	// The platform drifts between its authored position and the target with
	// a looping sequence of tweens.
	tw := gween.NewSequence()
	travel := float32(cfg.Platform.TravelSeconds)
	tw.Add(
		gween.New(float32(y), float32(targetY), travel, ease.Linear),
		gween.New(float32(targetY), float32(y), travel, ease.Linear),
	)
	components.Tween.SetValue(platform, components.TweenData{
		Sequence: tw,
		OriginY:  y,
	})
	components.Simulate.SetValue(platform, components.SimulateData{})
	components.Sprite.SetValue(platform, components.SpriteData{
		Color: cfg.Yellow,
	})

	return platform
}
