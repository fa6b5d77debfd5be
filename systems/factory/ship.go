package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/archetypes"
	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/regiondata"
	"github.com/lunarpitch/voidfall/world"
)

// CreateShip places the landed ship: a sprite entity plus a row of hull
// tiles injected into the chunk grid so the ship is solid ground. The hull
// code must be present in the region's tile catalog.
func CreateShip(e *ecs.ECS, x, y float64) (*donburi.Entry, error) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return nil, fmt.Errorf("create ship: no region loaded")
	}
	chunks := components.Region.Get(regionEntry).Chunks

	for i := 0; i < cfg.Ship.HullSpan; i++ {
		cellCenter := world.Vec2{
			X: x + (float64(i)+0.5)*world.TileSize,
			Y: y + 0.5*world.TileSize,
		}
		chunkPos, cell := world.CellAt(cellCenter)
		if err := chunks.AddTile(chunkPos, cell, cfg.Ship.HullCode); err != nil {
			return nil, fmt.Errorf("create ship: %w", err)
		}
	}

	ship := archetypes.Ship.Spawn(e)
	components.Object.SetValue(ship, components.ObjectData{
		Rect: world.Rect{
			X: x,
			Y: y - world.TileSize,
			W: float64(cfg.Ship.HullSpan) * world.TileSize,
			H: world.TileSize,
		},
		DrawLevel: 2,
	})
	components.Simulate.SetValue(ship, components.SimulateData{
		AlwaysUpdate: true,
	})
	components.Sprite.SetValue(ship, components.SpriteData{
		Color: cfg.Violet,
	})
	components.Persist.SetValue(ship, components.PersistData{
		Kind: regiondata.SpawnShip,
	})

	return ship, nil
}
