package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData animates a floating platform's vertical position with a looping
// tween sequence. OriginY is the authored position the sequence offsets from.
type TweenData struct {
	Sequence *gween.Sequence
	OriginY  float64
}

var Tween = donburi.NewComponentType[TweenData]()

// ScreenShakeData tracks an active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
	Elapsed   float64 // seconds elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
