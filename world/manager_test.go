package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func middleOnly(cells map[TilePos]byte) *RawChunk {
	return &RawChunk{Middle: layer(cells)}
}

// regionGrid authors a square of chunks around the origin, each with a
// single stone tile so loading is observable.
func regionGrid(half int) map[ChunkCoord]*RawChunk {
	raw := make(map[ChunkCoord]*RawChunk)
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			raw[ChunkCoord{x, y}] = middleOnly(map[TilePos]byte{{0, 0}: '1'})
		}
	}
	return raw
}

func TestStreamingDiamond(t *testing.T) {
	const radius = 2
	m := NewChunkManager(testCatalog(), regionGrid(5), radius)

	require.NoError(t, m.Update(Vec2{X: 10, Y: 10}))

	// 2R^2+2R+1 chunks, all within Manhattan distance R of the focus chunk.
	assert.Len(t, m.Loaded(), 2*radius*radius+2*radius+1)
	for pos := range m.Loaded() {
		assert.LessOrEqual(t, abs(pos.X)+abs(pos.Y), radius)
	}
}

func TestStreamingFollowsFocus(t *testing.T) {
	m := NewChunkManager(testCatalog(), regionGrid(5), 1)

	require.NoError(t, m.Update(Vec2{}))
	_, ok := m.ChunkAt(ChunkCoord{0, 0})
	assert.True(t, ok)

	// Focus jumps three chunks right: the old center leaves the working set.
	require.NoError(t, m.Update(Vec2{X: 3*ChunkSize + 10}))
	_, ok = m.ChunkAt(ChunkCoord{0, 0})
	assert.False(t, ok)
	_, ok = m.ChunkAt(ChunkCoord{3, 0})
	assert.True(t, ok)
}

func TestStreamingSkipsUnauthoredChunks(t *testing.T) {
	raw := map[ChunkCoord]*RawChunk{
		{0, 0}: middleOnly(map[TilePos]byte{{0, 0}: '1'}),
	}
	m := NewChunkManager(testCatalog(), raw, 3)

	require.NoError(t, m.Update(Vec2{}))
	assert.Len(t, m.Loaded(), 1)
}

func TestStreamingDefaultRadius(t *testing.T) {
	m := NewChunkManager(testCatalog(), nil, 0)
	require.NoError(t, m.Update(Vec2{}))

	const r = DefaultStreamRadius
	assert.Len(t, m.wanted(Vec2{}), 2*r*r+2*r+1)
}

func TestStreamingNegativeCoordinates(t *testing.T) {
	m := NewChunkManager(testCatalog(), regionGrid(5), 1)

	// Floor division, not truncation: -10 pixels is chunk -1.
	require.NoError(t, m.Update(Vec2{X: -10, Y: -10}))
	_, ok := m.ChunkAt(ChunkCoord{-1, -1})
	assert.True(t, ok)
	_, ok = m.ChunkAt(ChunkCoord{1, 0})
	assert.False(t, ok)
}

func TestBreakTileSurvivesReload(t *testing.T) {
	origin := ChunkCoord{0, 0}
	raw := map[ChunkCoord]*RawChunk{
		origin: middleOnly(map[TilePos]byte{{3, 3}: '2', {4, 4}: '1'}),
	}
	m := NewChunkManager(testCatalog(), raw, 1)
	require.NoError(t, m.Update(Vec2{}))

	require.NoError(t, m.BreakTile(origin, TilePos{3, 3}, false))
	chunk, _ := m.ChunkAt(origin)
	assert.Nil(t, chunk.TileAt(3, 3))

	// Rebuilding from raw data must not resurrect the tile.
	m.Refresh()
	require.NoError(t, m.Update(Vec2{}))
	chunk, _ = m.ChunkAt(origin)
	assert.Nil(t, chunk.TileAt(3, 3))
	assert.NotNil(t, chunk.TileAt(4, 4))
}

func TestBreakTileIgnoresUnbreakable(t *testing.T) {
	origin := ChunkCoord{0, 0}
	raw := map[ChunkCoord]*RawChunk{
		origin: middleOnly(map[TilePos]byte{{4, 4}: '1'}),
	}
	m := NewChunkManager(testCatalog(), raw, 1)
	require.NoError(t, m.Update(Vec2{}))

	// Stone and empty cells alike: a silent no-op, nothing logged.
	require.NoError(t, m.BreakTile(origin, TilePos{4, 4}, false))
	require.NoError(t, m.BreakTile(origin, TilePos{9, 9}, false))

	chunk, _ := m.ChunkAt(origin)
	assert.NotNil(t, chunk.TileAt(4, 4))
	assert.Empty(t, m.BrokenTiles())
}

func TestBreakTileUnloadedChunk(t *testing.T) {
	m := NewChunkManager(testCatalog(), regionGrid(5), 1)
	require.NoError(t, m.Update(Vec2{}))

	err := m.BreakTile(ChunkCoord{4, 4}, TilePos{0, 0}, false)
	assert.Error(t, err)
}

func TestBreakTileSurroundings(t *testing.T) {
	origin := ChunkCoord{0, 0}
	raw := map[ChunkCoord]*RawChunk{
		origin: middleOnly(map[TilePos]byte{
			{7, 7}: '2', // center
			{6, 7}: '2', {8, 7}: '2', {7, 6}: '2', {7, 8}: '2',
			{7, 5}: '1', // stone caps the top arm
			{9, 9}: '2', // disconnected, must survive
		}),
	}
	m := NewChunkManager(testCatalog(), raw, 1)
	require.NoError(t, m.Update(Vec2{}))

	require.NoError(t, m.BreakTile(origin, TilePos{7, 7}, true))

	chunk, _ := m.ChunkAt(origin)
	for _, gone := range []TilePos{{7, 7}, {6, 7}, {8, 7}, {7, 6}, {7, 8}} {
		assert.Nil(t, chunk.TileAt(gone.X, gone.Y), "tile %v should be broken", gone)
	}
	assert.NotNil(t, chunk.TileAt(7, 5), "stone stops the cascade")
	assert.NotNil(t, chunk.TileAt(9, 9))
	assert.Len(t, m.BrokenTiles()[origin], 5)
}

func TestAddTileLoadedChunk(t *testing.T) {
	m := NewChunkManager(testCatalog(), regionGrid(1), 1)
	require.NoError(t, m.Update(Vec2{}))

	require.NoError(t, m.AddTile(ChunkCoord{0, 0}, TilePos{5, 5}, '1'))
	chunk, _ := m.ChunkAt(ChunkCoord{0, 0})
	assert.NotNil(t, chunk.TileAt(5, 5))

	// The injected tile survives the chunk streaming out and back in.
	m.Refresh()
	require.NoError(t, m.Update(Vec2{}))
	chunk, _ = m.ChunkAt(ChunkCoord{0, 0})
	assert.NotNil(t, chunk.TileAt(5, 5))
}

func TestAddTileUnloadedChunkEditsRaw(t *testing.T) {
	m := NewChunkManager(testCatalog(), regionGrid(5), 1)
	require.NoError(t, m.Update(Vec2{}))

	far := ChunkCoord{4, 0}
	require.NoError(t, m.AddTile(far, TilePos{2, 2}, '1'))

	// The tile materializes once the focus reaches the edited chunk.
	require.NoError(t, m.Update(Vec2{X: 4*ChunkSize + 10}))
	chunk, ok := m.ChunkAt(far)
	require.True(t, ok)
	assert.NotNil(t, chunk.TileAt(2, 2))
}

func TestAddTileErrors(t *testing.T) {
	m := NewChunkManager(testCatalog(), regionGrid(1), 1)
	require.NoError(t, m.Update(Vec2{}))

	assert.Error(t, m.AddTile(ChunkCoord{0, 0}, TilePos{1, 1}, 'Z'))
	assert.Error(t, m.AddTile(ChunkCoord{40, 40}, TilePos{1, 1}, '1'))
}

func TestBrokenTilesSnapshotIsolation(t *testing.T) {
	origin := ChunkCoord{0, 0}
	raw := map[ChunkCoord]*RawChunk{
		origin: middleOnly(map[TilePos]byte{{3, 3}: '2'}),
	}
	m := NewChunkManager(testCatalog(), raw, 1)
	require.NoError(t, m.Update(Vec2{}))
	require.NoError(t, m.BreakTile(origin, TilePos{3, 3}, false))

	// Mutating the save snapshot must not heal the live world.
	snap := m.BrokenTiles()
	delete(snap[origin], TilePos{3, 3})

	m.Refresh()
	require.NoError(t, m.Update(Vec2{}))
	chunk, _ := m.ChunkAt(origin)
	assert.Nil(t, chunk.TileAt(3, 3))
}

func TestRestoreBrokenTilesCopiesInput(t *testing.T) {
	origin := ChunkCoord{0, 0}
	raw := map[ChunkCoord]*RawChunk{
		origin: middleOnly(map[TilePos]byte{{3, 3}: '2'}),
	}
	m := NewChunkManager(testCatalog(), raw, 1)

	restored := map[ChunkCoord]TileSet{origin: {TilePos{3, 3}: {}}}
	m.RestoreBrokenTiles(restored)
	delete(restored[origin], TilePos{3, 3})

	require.NoError(t, m.Update(Vec2{}))
	chunk, _ := m.ChunkAt(origin)
	assert.Nil(t, chunk.TileAt(3, 3))
}

func TestCellAt(t *testing.T) {
	chunk, cell := CellAt(Vec2{X: 10, Y: 10})
	assert.Equal(t, ChunkCoord{0, 0}, chunk)
	assert.Equal(t, TilePos{0, 0}, cell)

	chunk, cell = CellAt(Vec2{X: ChunkSize + TileSize + 1, Y: 2 * TileSize})
	assert.Equal(t, ChunkCoord{1, 0}, chunk)
	assert.Equal(t, TilePos{1, 2}, cell)

	// Negative positions floor toward the previous chunk; the local cell
	// stays in [0, ChunkTiles).
	chunk, cell = CellAt(Vec2{X: -1, Y: -1})
	assert.Equal(t, ChunkCoord{-1, -1}, chunk)
	assert.Equal(t, TilePos{15, 15}, cell)
}

func TestCellsIn(t *testing.T) {
	// A hitbox straddling four cells.
	cells := CellsIn(Rect{X: 40, Y: 40, W: 16, H: 16})
	assert.Len(t, cells, 4)
	assert.Contains(t, cells, Cell{Chunk: ChunkCoord{0, 0}, Tile: TilePos{0, 0}})
	assert.Contains(t, cells, Cell{Chunk: ChunkCoord{0, 0}, Tile: TilePos{1, 1}})

	// Exactly cell-aligned: one cell, boundaries do not spill over.
	cells = CellsIn(Rect{X: 48, Y: 48, W: 48, H: 48})
	assert.Equal(t, []Cell{{Chunk: ChunkCoord{0, 0}, Tile: TilePos{1, 1}}}, cells)
}

func TestCollideEntityAcrossChunkSeam(t *testing.T) {
	// Floor tiles straddling the boundary between chunk 0 and chunk 1.
	raw := map[ChunkCoord]*RawChunk{
		{0, 0}: middleOnly(map[TilePos]byte{{15, 4}: '1'}),
		{1, 0}: middleOnly(map[TilePos]byte{{0, 4}: '1'}),
	}
	m := NewChunkManager(testCatalog(), raw, 2)
	require.NoError(t, m.Update(Vec2{X: ChunkSize}))

	// Hitbox spans the seam; both chunks must report a bottom contact.
	r := Rect{X: ChunkSize - 30, Y: 4*TileSize - 38, W: 60, H: 40}
	contacts := NewContacts()
	m.CollideEntityY(&r, 5, contacts)

	assert.Equal(t, float64(4*TileSize), r.Bottom())
	assert.Len(t, contacts.Bottom, 2)
}
