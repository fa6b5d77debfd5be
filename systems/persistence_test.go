package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarpitch/voidfall/components"
	"github.com/lunarpitch/voidfall/regiondata"
	"github.com/lunarpitch/voidfall/systems/factory"
	"github.com/lunarpitch/voidfall/world"
)

func TestBrokenTileRecordsRoundTrip(t *testing.T) {
	broken := map[world.ChunkCoord]world.TileSet{
		{X: 0, Y: 0}:  {world.TilePos{X: 3, Y: 3}: {}, world.TilePos{X: 4, Y: 3}: {}},
		{X: -2, Y: 1}: {world.TilePos{X: 15, Y: 0}: {}},
	}

	records := brokenToRecords(broken)
	require.Len(t, records, 3)
	assert.Equal(t, broken, recordsToBroken(records))
}

func TestCaptureSave(t *testing.T) {
	e := newTestECS()
	region := factory.CreateRegion(e, regiondata.DemoRegion())
	chunks := components.Region.Get(region).Chunks
	require.NoError(t, chunks.Update(world.Vec2{X: 100, Y: 100}))

	player := factory.CreatePlayer(e, 123, 45)
	components.Health.Get(player).Current = 77

	_, err := factory.CreateCreature(e, "Grub", 600, 300)
	require.NoError(t, err)

	// Dig out a dirt tile so the log shows up in the capture.
	require.NoError(t, chunks.BreakTile(world.ChunkCoord{X: 0, Y: 0}, world.TilePos{X: 2, Y: 8}, false))

	save, err := CaptureSave(e)
	require.NoError(t, err)

	assert.Equal(t, "demo", save.Region)
	assert.Equal(t, 123.0, save.PlayerX)
	assert.Equal(t, 45.0, save.PlayerY)
	assert.Equal(t, 77, save.PlayerHealth)
	assert.Equal(t, []SavedTile{{ChunkX: 0, ChunkY: 0, TileX: 2, TileY: 8}}, save.BrokenTiles)

	require.Len(t, save.Entities, 1)
	snapshot := save.Entities[0]
	assert.Equal(t, regiondata.SpawnCreature, snapshot.Kind)
	assert.Equal(t, "Grub", snapshot.Type)
	assert.Equal(t, 600.0, snapshot.X)
	assert.Equal(t, 300.0, snapshot.Y)
}

func TestCaptureSaveRequiresPlayer(t *testing.T) {
	e := newTestECS()
	factory.CreateRegion(e, regiondata.DemoRegion())

	_, err := CaptureSave(e)
	assert.Error(t, err)
}
