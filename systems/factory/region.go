package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/archetypes"
	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/regiondata"
	"github.com/lunarpitch/voidfall/world"
)

// CreateRegion builds the singleton region entity from loaded region data,
// applying global defaults where the region leaves values unset.
func CreateRegion(e *ecs.ECS, data *regiondata.RegionData) *donburi.Entry {
	radius := data.StreamRadius
	if radius <= 0 {
		radius = cfg.World.StreamRadius
	}
	gravity := data.Gravity
	if gravity == 0 {
		gravity = cfg.World.Gravity
	}

	region := archetypes.Region.Spawn(e)
	components.Region.SetValue(region, components.RegionData{
		Name:    data.Name,
		Chunks:  world.NewChunkManager(data.Catalog, data.Chunks, radius),
		Gravity: gravity,
	})
	return region
}
