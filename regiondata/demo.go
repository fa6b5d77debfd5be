package regiondata

import (
	"strings"

	"github.com/lunarpitch/voidfall/world"
)

// DemoRegion builds a small procedural region used when no TMX file is
// available: a stone shelf under a band of diggable dirt, a ramp, and a few
// authored spawns. Handy for development and integration tests.
func DemoRegion() *RegionData {
	cat := world.NewCatalog()
	cat.Register(world.TileProperties{Code: 's', Name: "stone", Shape: world.ShapeFull, Collision: true, Friction: 0.3})
	cat.Register(world.TileProperties{Code: 'd', Name: "dirt", Shape: world.ShapeFull, Collision: true, Breakable: true, Friction: 0.3})
	cat.Register(world.TileProperties{Code: 'r', Name: "slope", Shape: world.ShapeRampBottomLeft, Collision: true, Friction: 0.3})
	cat.Register(world.TileProperties{Code: 'v', Name: "vine wall", Shape: world.ShapeFull, Collision: true, WallJump: true, Friction: 0.2})
	cat.Register(world.TileProperties{Code: 'H', Name: "ship hull", Shape: world.ShapeFull, Collision: true, Friction: 0.4})
	cat.Register(world.TileProperties{Code: 'x', Name: "spikes", Shape: world.ShapeBottomSlab, Collision: true,
		DamageSides: map[world.Side]world.Damage{world.SideBottom: {Amount: 10, Kind: "spike"}}})

	const groundRow = 8
	chunks := make(map[world.ChunkCoord]*world.RawChunk)
	for cx := -3; cx <= 3; cx++ {
		cells := []byte(strings.Repeat(string(world.Air), world.ChunkTiles*world.ChunkTiles))
		for x := 0; x < world.ChunkTiles; x++ {
			cells[world.CoordsToIndex(x, groundRow)] = 'd'
			for y := groundRow + 1; y < world.ChunkTiles; y++ {
				cells[world.CoordsToIndex(x, y)] = 's'
			}
		}
		if cx == 1 {
			cells[world.CoordsToIndex(4, groundRow-1)] = 'r'
			for y := groundRow - 4; y < groundRow; y++ {
				cells[world.CoordsToIndex(9, y)] = 'v'
			}
			cells[world.CoordsToIndex(12, groundRow-1)] = 'x'
		}
		chunks[world.ChunkCoord{X: cx, Y: 0}] = &world.RawChunk{Middle: string(cells)}
	}

	surfaceY := float64(groundRow * world.TileSize)
	return &RegionData{
		Name:    "demo",
		Catalog: cat,
		Chunks:  chunks,
		Spawns: []Spawn{
			{Kind: SpawnPlayer, X: 100, Y: surfaceY - 120},
			{Kind: SpawnShip, X: 240, Y: surfaceY - world.TileSize},
			{Kind: SpawnCreature, Type: "Grub", X: 600, Y: surfaceY - 60},
			{Kind: SpawnPlatform, X: 420, Y: surfaceY - 200, TargetY: surfaceY - 340},
		},
	}
}
