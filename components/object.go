package components

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/lunarpitch/voidfall/world"
)

// ObjectData is an entity's world-space hitbox plus its render ordering.
// Entities with a higher DrawLevel draw on top.
type ObjectData struct {
	Rect      world.Rect
	DrawLevel int
}

var Object = donburi.NewComponentType[ObjectData]()

// Teleport recenters the hitbox on a world position.
func (o *ObjectData) Teleport(p world.Vec2) {
	o.Rect.SetCenter(p)
}

// SnapToGrid aligns the hitbox's top-left corner to the tile grid.
func (o *ObjectData) SnapToGrid() {
	o.Rect.X = math.Round(o.Rect.X/world.TileSize) * world.TileSize
	o.Rect.Y = math.Round(o.Rect.Y/world.TileSize) * world.TileSize
}

// OccupiedCells returns every tile cell the hitbox currently covers.
func (o *ObjectData) OccupiedCells() []world.Cell {
	return world.CellsIn(o.Rect)
}
