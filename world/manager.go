package world

import (
	"fmt"
	"math"
	"strings"
)

// DefaultStreamRadius is how many chunks away from the focus point stay
// loaded, measured in Manhattan distance.
const DefaultStreamRadius = 5

// ChunkCoord identifies a chunk on the infinite chunk grid.
type ChunkCoord struct {
	X, Y int
}

// ChunkManager streams chunks in and out around a focus point and owns the
// log of tiles broken during play. The raw region data stays resident for
// the whole session; only the materialized working set changes per update.
type ChunkManager struct {
	catalog *Catalog
	radius  int

	loaded map[ChunkCoord]*Chunk
	raw    map[ChunkCoord]*RawChunk
	broken map[ChunkCoord]TileSet
}

// NewChunkManager builds a manager over a region's raw chunk data. A radius
// of zero or less selects DefaultStreamRadius.
func NewChunkManager(cat *Catalog, raw map[ChunkCoord]*RawChunk, radius int) *ChunkManager {
	if radius <= 0 {
		radius = DefaultStreamRadius
	}
	if raw == nil {
		raw = make(map[ChunkCoord]*RawChunk)
	}
	return &ChunkManager{
		catalog: cat,
		radius:  radius,
		loaded:  make(map[ChunkCoord]*Chunk),
		raw:     raw,
		broken:  make(map[ChunkCoord]TileSet),
	}
}

func (m *ChunkManager) Catalog() *Catalog {
	return m.catalog
}

// Loaded exposes the working set of materialized chunks. Entity collision
// reads it every frame; only Update writes it.
func (m *ChunkManager) Loaded() map[ChunkCoord]*Chunk {
	return m.loaded
}

func (m *ChunkManager) ChunkAt(pos ChunkCoord) (*Chunk, bool) {
	c, ok := m.loaded[pos]
	return c, ok
}

// Update streams the working set toward the focus point: chunks outside the
// wanted diamond unload, wanted chunks with raw data materialize. Must run
// before entity movement each tick so collision never sees a stale set.
func (m *ChunkManager) Update(focus Vec2) error {
	want := m.wanted(focus)

	for pos := range m.loaded {
		if _, ok := want[pos]; ok {
			delete(want, pos)
		} else {
			delete(m.loaded, pos)
		}
	}

	for pos := range want {
		raw, ok := m.raw[pos]
		if !ok {
			// Outside the authored region; nothing to load.
			continue
		}
		chunk, err := NewChunk(pos.X, pos.Y, raw, m.broken[pos], m.catalog)
		if err != nil {
			return fmt.Errorf("load chunk (%d,%d): %w", pos.X, pos.Y, err)
		}
		m.loaded[pos] = chunk
	}
	return nil
}

// wanted returns the diamond of chunk coordinates within the stream radius
// of the focus point, in chunk units.
func (m *ChunkManager) wanted(focus Vec2) map[ChunkCoord]struct{} {
	cx := int(math.Floor(focus.X / ChunkSize))
	cy := int(math.Floor(focus.Y / ChunkSize))

	want := make(map[ChunkCoord]struct{}, 2*m.radius*m.radius+2*m.radius+1)
	for dy := -m.radius; dy <= m.radius; dy++ {
		span := m.radius - abs(dy)
		for dx := -span; dx <= span; dx++ {
			want[ChunkCoord{cx + dx, cy + dy}] = struct{}{}
		}
	}
	return want
}

// CollideEntityX routes a horizontal collision query to the loaded chunks.
// Chunks that cannot reach the swept hitbox are skipped; the filter is
// conservative, so results are identical to querying every loaded chunk.
func (m *ChunkManager) CollideEntityX(r *Rect, xMove float64, contacts *Contacts) {
	reach := r.expand(math.Abs(xMove) + 1)
	for _, chunk := range m.loaded {
		if !chunk.Rect.meets(reach) {
			continue
		}
		chunk.CollideX(r, xMove, contacts)
	}
}

// CollideEntityY routes a vertical collision query to the loaded chunks.
func (m *ChunkManager) CollideEntityY(r *Rect, yMove float64, contacts *Contacts) {
	reach := r.expand(math.Abs(yMove) + 1)
	for _, chunk := range m.loaded {
		if !chunk.Rect.meets(reach) {
			continue
		}
		chunk.CollideY(r, yMove, contacts)
	}
}

// BreakTile removes the breakable tile at the given cell from the live
// chunk and records it in the broken log so reloads keep it gone. Breaking
// a non-breakable or absent tile is a no-op. Breaking in an unloaded chunk
// is a caller error.
//
// With breakSurroundings the four axis neighbours are broken recursively
// with the same flag, producing a plus-shaped hole. The recursion
// terminates because a broken tile leaves the live set and the next visit
// finds nothing to break.
func (m *ChunkManager) BreakTile(pos ChunkCoord, tile TilePos, breakSurroundings bool) error {
	chunk, ok := m.loaded[pos]
	if !ok {
		return fmt.Errorf("cannot break tile %v: chunk (%d,%d) does not exist or is unloaded", tile, pos.X, pos.Y)
	}

	t := chunk.TileAt(tile.X, tile.Y)
	if t == nil || !t.Props.Breakable {
		return nil
	}

	chunk.RemoveTile(tile)
	if m.broken[pos] == nil {
		m.broken[pos] = make(TileSet)
	}
	m.broken[pos][tile] = struct{}{}

	if breakSurroundings {
		for _, d := range [4]TilePos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			// The chunk is loaded, so the recursive call cannot fail.
			_ = m.BreakTile(pos, TilePos{tile.X + d.X, tile.Y + d.Y}, true)
		}
	}
	return nil
}

// AddTile injects an extra middle-ground tile. The tile always lands in raw
// storage so it survives the chunk streaming out and back in; when the chunk
// is currently loaded it is placed there too. Used for props that bring
// their own collision, like a landed ship.
func (m *ChunkManager) AddTile(pos ChunkCoord, tile TilePos, code byte) error {
	if !m.catalog.Has(code) {
		return fmt.Errorf("add tile at %v: tile code %q not present in catalog", tile, string(code))
	}

	raw, ok := m.raw[pos]
	if !ok {
		return fmt.Errorf("cannot place tile in chunk that does not exist (%d,%d)", pos.X, pos.Y)
	}
	if raw.Middle == "" {
		raw.Middle = strings.Repeat(string(Air), chunkCells)
	}
	cells := []byte(raw.Middle)
	cells[CoordsToIndex(tile.X, tile.Y)] = code
	raw.Middle = string(cells)

	if chunk, ok := m.loaded[pos]; ok {
		return chunk.AddTile(tile.X, tile.Y, code)
	}
	return nil
}

// BrokenTiles returns a deep copy of the broken-tile log for saving.
func (m *ChunkManager) BrokenTiles() map[ChunkCoord]TileSet {
	out := make(map[ChunkCoord]TileSet, len(m.broken))
	for pos, set := range m.broken {
		cp := make(TileSet, len(set))
		for t := range set {
			cp[t] = struct{}{}
		}
		out[pos] = cp
	}
	return out
}

// RestoreBrokenTiles replaces the broken-tile log wholesale, copying the
// input. Call before the first Update so restored holes apply on load.
func (m *ChunkManager) RestoreBrokenTiles(broken map[ChunkCoord]TileSet) {
	m.broken = make(map[ChunkCoord]TileSet, len(broken))
	for pos, set := range broken {
		cp := make(TileSet, len(set))
		for t := range set {
			cp[t] = struct{}{}
		}
		m.broken[pos] = cp
	}
}

// Refresh drops every loaded chunk; the next Update rebuilds the working
// set from raw data and the broken log.
func (m *ChunkManager) Refresh() {
	clear(m.loaded)
}

// Cell addresses one tile cell globally: the chunk plus the local position.
type Cell struct {
	Chunk ChunkCoord
	Tile  TilePos
}

// CellsIn returns every cell the rectangle covers, row-major. Edges exactly
// on a cell boundary do not claim the next cell.
func CellsIn(r Rect) []Cell {
	x0 := int(math.Floor(r.Left() / TileSize))
	x1 := int(math.Ceil(r.Right()/TileSize)) - 1
	y0 := int(math.Floor(r.Top() / TileSize))
	y1 := int(math.Ceil(r.Bottom()/TileSize)) - 1

	var cells []Cell
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			chunk, tile := CellAt(Vec2{
				X: (float64(x) + 0.5) * TileSize,
				Y: (float64(y) + 0.5) * TileSize,
			})
			cells = append(cells, Cell{Chunk: chunk, Tile: tile})
		}
	}
	return cells
}

// CellAt maps a world position to the chunk and local cell containing it.
func CellAt(p Vec2) (ChunkCoord, TilePos) {
	cellX := int(math.Floor(p.X / TileSize))
	cellY := int(math.Floor(p.Y / TileSize))
	chunk := ChunkCoord{
		X: int(math.Floor(float64(cellX) / ChunkTiles)),
		Y: int(math.Floor(float64(cellY) / ChunkTiles)),
	}
	return chunk, TilePos{
		X: cellX - chunk.X*ChunkTiles,
		Y: cellY - chunk.Y*ChunkTiles,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
