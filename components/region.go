package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarpitch/voidfall/world"
)

// RegionData holds the singleton chunk world the scene simulates in:
// the streaming manager plus the per-region physics overrides.
type RegionData struct {
	Name    string
	Chunks  *world.ChunkManager
	Gravity float64
}

var Region = donburi.NewComponentType[RegionData]()
