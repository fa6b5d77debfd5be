package regiondata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/lunarpitch/voidfall/world"
)

// Layer names recognized in region TMX files.
const (
	layerBackground = "background"
	layerMiddle     = "middle"
	layerForeground = "foreground"
)

// LoadRegion parses a TMX file into region data. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadRegion(fsys fs.FS, tmxPath string) (*RegionData, error) {
	regionMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &RegionData{
		Name:         strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Catalog:      world.NewCatalog(),
		Chunks:       make(map[world.ChunkCoord]*world.RawChunk),
		Gravity:      regionMap.Properties.GetFloat("gravity"),
		StreamRadius: regionMap.Properties.GetInt("streamRadius"),
	}

	// Tile catalog and GID-to-code table from the tileset properties.
	codes, err := buildCatalog(regionMap, data.Catalog)
	if err != nil {
		return nil, fmt.Errorf("region %s: %w", data.Name, err)
	}

	// Chunk origin in chunk units; regions can be authored off-origin.
	originX := regionMap.Properties.GetInt("originX")
	originY := regionMap.Properties.GetInt("originY")

	for _, layer := range regionMap.Layers {
		var assign func(*world.RawChunk, string)
		switch layer.Name {
		case layerBackground:
			assign = func(rc *world.RawChunk, s string) { rc.Background = s }
		case layerMiddle:
			assign = func(rc *world.RawChunk, s string) { rc.Middle = s }
		case layerForeground:
			assign = func(rc *world.RawChunk, s string) { rc.Foreground = s }
		default:
			continue
		}

		cells, err := layerCodes(regionMap, layer, codes)
		if err != nil {
			return nil, fmt.Errorf("region %s layer %s: %w", data.Name, layer.Name, err)
		}
		for pos, chunkCells := range sliceChunks(cells, regionMap.Width, regionMap.Height) {
			pos.X += originX
			pos.Y += originY
			rc := data.Chunks[pos]
			if rc == nil {
				rc = &world.RawChunk{}
				data.Chunks[pos] = rc
			}
			assign(rc, chunkCells)
		}
	}

	data.Spawns = parseSpawns(regionMap)
	return data, nil
}

// buildCatalog registers every tileset tile that carries a "code" property
// and returns the GID-to-code table used to translate layer cells.
func buildCatalog(m *tiled.Map, cat *world.Catalog) (map[uint32]byte, error) {
	codes := make(map[uint32]byte)
	for _, ts := range m.Tilesets {
		for _, tile := range ts.Tiles {
			props, err := parseTileProperties(tile.Properties)
			if err != nil {
				return nil, fmt.Errorf("tileset %s tile %d: %w", ts.Name, tile.ID, err)
			}
			if cat.Has(props.Code) {
				return nil, fmt.Errorf("tileset %s tile %d: duplicate tile code %q", ts.Name, tile.ID, string(props.Code))
			}
			cat.Register(props)
			codes[ts.FirstGID+tile.ID] = props.Code
		}
	}
	return codes, nil
}

// parseTileProperties converts one tileset tile's property list into catalog
// properties. Every authored tile must carry a single-character "code".
func parseTileProperties(props tiled.Properties) (world.TileProperties, error) {
	code := props.GetString("code")
	if len(code) != 1 {
		return world.TileProperties{}, fmt.Errorf("tile code %q must be a single character", code)
	}
	if code[0] == world.Air {
		return world.TileProperties{}, fmt.Errorf("tile code %q is reserved for empty cells", code)
	}

	shape := world.ShapeFull
	if name := props.GetString("shape"); name != "" {
		s, err := world.ParseShape(name)
		if err != nil {
			return world.TileProperties{}, err
		}
		shape = s
	}

	return world.TileProperties{
		Code:        code[0],
		Name:        props.GetString("name"),
		Shape:       shape,
		Collision:   props.GetBool("collision"),
		Breakable:   props.GetBool("breakable"),
		Friction:    props.GetFloat("friction"),
		WallJump:    props.GetBool("walljump"),
		DamageSides: parseDamageSides(props),
	}, nil
}

// parseDamageSides reads the optional per-side damage properties
// (damageTop, damageBottom, damageLeft, damageRight) plus a shared
// damageKind label.
func parseDamageSides(props tiled.Properties) map[world.Side]world.Damage {
	kind := props.GetString("damageKind")
	var sides map[world.Side]world.Damage
	for name, side := range map[string]world.Side{
		"damageTop":    world.SideTop,
		"damageBottom": world.SideBottom,
		"damageLeft":   world.SideLeft,
		"damageRight":  world.SideRight,
	} {
		amount := props.GetInt(name)
		if amount <= 0 {
			continue
		}
		if sides == nil {
			sides = make(map[world.Side]world.Damage)
		}
		sides[side] = world.Damage{Amount: amount, Kind: kind}
	}
	return sides
}

// layerCodes flattens a TMX layer into one code byte per map cell.
func layerCodes(m *tiled.Map, layer *tiled.Layer, codes map[uint32]byte) ([]byte, error) {
	cells := make([]byte, m.Width*m.Height)
	for i, tile := range layer.Tiles {
		if tile.IsNil() {
			cells[i] = world.Air
			continue
		}
		code, ok := codes[tile.Tileset.FirstGID+tile.ID]
		if !ok {
			return nil, fmt.Errorf("cell %d references a tile with no code property", i)
		}
		cells[i] = code
	}
	return cells, nil
}

// sliceChunks cuts a map-sized cell grid into per-chunk code strings. Maps
// whose dimensions are not chunk multiples are padded with Air on the right
// and bottom. Chunks that are entirely Air are omitted.
func sliceChunks(cells []byte, width, height int) map[world.ChunkCoord]string {
	chunksX := (width + world.ChunkTiles - 1) / world.ChunkTiles
	chunksY := (height + world.ChunkTiles - 1) / world.ChunkTiles

	out := make(map[world.ChunkCoord]string)
	for cy := 0; cy < chunksY; cy++ {
		for cx := 0; cx < chunksX; cx++ {
			chunk := make([]byte, 0, world.ChunkTiles*world.ChunkTiles)
			empty := true
			for ty := 0; ty < world.ChunkTiles; ty++ {
				for tx := 0; tx < world.ChunkTiles; tx++ {
					x := cx*world.ChunkTiles + tx
					y := cy*world.ChunkTiles + ty
					code := world.Air
					if x < width && y < height {
						code = cells[y*width+x]
					}
					if code != world.Air {
						empty = false
					}
					chunk = append(chunk, code)
				}
			}
			if !empty {
				out[world.ChunkCoord{X: cx, Y: cy}] = string(chunk)
			}
		}
	}
	return out
}

// parseSpawns collects entity placements from the object groups. The group
// name selects the spawn kind.
func parseSpawns(m *tiled.Map) []Spawn {
	var spawns []Spawn
	for _, og := range m.ObjectGroups {
		var kind string
		switch og.Name {
		case "PlayerSpawn":
			kind = SpawnPlayer
		case "Creatures":
			kind = SpawnCreature
		case "Platforms":
			kind = SpawnPlatform
		case "Props":
			kind = SpawnShip
		default:
			continue
		}
		for _, o := range og.Objects {
			spawns = append(spawns, Spawn{
				Kind:    kind,
				X:       o.X,
				Y:       o.Y,
				Type:    o.Properties.GetString("creatureType"),
				TargetX: o.Properties.GetFloat("targetX"),
				TargetY: o.Properties.GetFloat("targetY"),
			})
		}
	}
	return spawns
}
