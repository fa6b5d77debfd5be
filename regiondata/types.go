// Package regiondata parses TMX region files into raw chunk data. It has no
// dependencies on ebitengine or donburi, pure data only.
package regiondata

import "github.com/lunarpitch/voidfall/world"

// RegionData is everything a region contributes at load time: the tile
// catalog, the raw chunk grid, and the authored spawn points.
type RegionData struct {
	Name    string
	Catalog *world.Catalog
	Chunks  map[world.ChunkCoord]*world.RawChunk
	Spawns  []Spawn

	// Per-region overrides; zero means use the global default.
	Gravity      float64
	StreamRadius int
}

// Spawn kinds recognized by the entity factory.
const (
	SpawnPlayer   = "player"
	SpawnCreature = "creature"
	SpawnPlatform = "platform"
	SpawnShip     = "ship"
)

// Spawn is one authored entity placement.
type Spawn struct {
	Kind string
	X, Y float64

	// Creature type name, for creature spawns.
	Type string

	// Tween destination, for floating platforms.
	TargetX, TargetY float64
}

// PlayerSpawn returns the first authored player spawn point.
func (r *RegionData) PlayerSpawn() (Spawn, bool) {
	for _, s := range r.Spawns {
		if s.Kind == SpawnPlayer {
			return s, true
		}
	}
	return Spawn{}, false
}
