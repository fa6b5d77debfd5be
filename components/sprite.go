package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is the flat-color placeholder visual for an entity; the
// renderer fills the hitbox with it.
type SpriteData struct {
	Color color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
