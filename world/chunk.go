package world

import "fmt"

const (
	// ChunkTiles is the number of tile cells along one chunk edge.
	ChunkTiles = 16

	// ChunkSize is the edge length of a chunk in world pixels.
	ChunkSize = TileSize * ChunkTiles

	chunkCells = ChunkTiles * ChunkTiles
)

// TilePos is a cell coordinate local to a chunk, (0,0) top-left.
type TilePos struct {
	X, Y int
}

// TileSet is a set of local tile positions, used for the broken-tile log.
type TileSet map[TilePos]struct{}

// DecorTile is one cell of a decorative chunk layer. Background and
// foreground layers never collide, so they carry codes instead of Tiles.
type DecorTile struct {
	X, Y int
	Code byte
}

// RawChunk holds the three layer code strings for one chunk as supplied by
// the region loader: one character per cell, row-major, Air for empty.
// An empty string means the layer is absent.
type RawChunk struct {
	Background string
	Middle     string
	Foreground string
}

// Chunk is a 16x16 grid of tile cells, the unit of world streaming. Only
// the middle-ground layer owns Tile objects and participates in collision.
type Chunk struct {
	X, Y int
	Rect Rect

	background []DecorTile
	midground  map[TilePos]*Tile
	foreground []DecorTile

	catalog *Catalog
}

// NewChunk materializes a chunk from its raw layer codes, skipping cells in
// broken. Fails when a layer references a code missing from the catalog or
// has the wrong length.
func NewChunk(x, y int, raw *RawChunk, broken TileSet, cat *Catalog) (*Chunk, error) {
	c := &Chunk{
		X:         x,
		Y:         y,
		Rect:      Rect{float64(x) * ChunkSize, float64(y) * ChunkSize, ChunkSize, ChunkSize},
		midground: make(map[TilePos]*Tile),
		catalog:   cat,
	}

	if raw == nil {
		return c, nil
	}
	if raw.Background != "" {
		decor, err := c.decorLayer(raw.Background)
		if err != nil {
			return nil, fmt.Errorf("chunk (%d,%d) background: %w", x, y, err)
		}
		c.background = decor
	}
	if raw.Middle != "" {
		if err := c.setMiddleGround(raw.Middle, broken); err != nil {
			return nil, fmt.Errorf("chunk (%d,%d) middle-ground: %w", x, y, err)
		}
	}
	if raw.Foreground != "" {
		decor, err := c.decorLayer(raw.Foreground)
		if err != nil {
			return nil, fmt.Errorf("chunk (%d,%d) foreground: %w", x, y, err)
		}
		c.foreground = decor
	}
	return c, nil
}

func (c *Chunk) decorLayer(codes string) ([]DecorTile, error) {
	if len(codes) != chunkCells {
		return nil, fmt.Errorf("layer has %d cells, want %d", len(codes), chunkCells)
	}

	var decor []DecorTile
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		if code == Air {
			continue
		}
		if !c.catalog.Has(code) {
			return nil, fmt.Errorf("tile code %q not present in catalog", string(code))
		}
		tx, ty := IndexToCoords(i)
		decor = append(decor, DecorTile{X: tx, Y: ty, Code: code})
	}
	return decor, nil
}

// setMiddleGround rebuilds the collidable tile set. Broken positions are
// left empty; the decorative layers never consult the broken set.
func (c *Chunk) setMiddleGround(codes string, broken TileSet) error {
	if len(codes) != chunkCells {
		return fmt.Errorf("layer has %d cells, want %d", len(codes), chunkCells)
	}

	clear(c.midground)
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		if code == Air {
			continue
		}
		tx, ty := IndexToCoords(i)
		if _, gone := broken[TilePos{tx, ty}]; gone {
			continue
		}
		if err := c.AddTile(tx, ty, code); err != nil {
			return err
		}
	}
	return nil
}

// AddTile places a tile in the middle ground, replacing any tile already at
// that cell so positions stay unique within the layer.
func (c *Chunk) AddTile(x, y int, code byte) error {
	t, err := newTile(Vec2{c.Rect.X, c.Rect.Y}, x, y, code, c.catalog)
	if err != nil {
		return err
	}
	c.midground[TilePos{x, y}] = t
	return nil
}

// RemoveTile drops the middle-ground tile at the given cell, if any.
func (c *Chunk) RemoveTile(pos TilePos) {
	delete(c.midground, pos)
}

// TileAt returns the middle-ground tile at the given cell, or nil.
func (c *Chunk) TileAt(x, y int) *Tile {
	return c.midground[TilePos{x, y}]
}

// Tiles returns the live middle-ground tile set keyed by local position.
// Callers must treat it as read-only; mutation goes through AddTile and
// RemoveTile so the broken-tile bookkeeping stays consistent.
func (c *Chunk) Tiles() map[TilePos]*Tile {
	return c.midground
}

func (c *Chunk) Background() []DecorTile { return c.background }
func (c *Chunk) Foreground() []DecorTile { return c.foreground }

// CollideX runs the horizontal collision query for every collidable tile in
// the chunk. The pass is exhaustive: every touching tile contributes to the
// contact sets even though only one tile's geometry moves the rect when the
// tile data is well formed (non-overlapping).
func (c *Chunk) CollideX(r *Rect, xMove float64, contacts *Contacts) {
	for _, t := range c.midground {
		if !t.Props.Collision {
			continue
		}
		contacts.Add(t.CollideX(r, xMove), t)
	}
}

// CollideY is the vertical counterpart of CollideX.
func (c *Chunk) CollideY(r *Rect, yMove float64, contacts *Contacts) {
	for _, t := range c.midground {
		if !t.Props.Collision {
			continue
		}
		contacts.Add(t.CollideY(r, yMove), t)
	}
}

// IndexToCoords converts a raw layer string index to local cell coordinates.
func IndexToCoords(i int) (x, y int) {
	return i % ChunkTiles, i / ChunkTiles
}

// CoordsToIndex converts local cell coordinates to a raw layer string index.
func CoordsToIndex(x, y int) int {
	return x + y*ChunkTiles
}
