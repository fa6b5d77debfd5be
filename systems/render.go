package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	"github.com/lunarpitch/voidfall/world"
)

// DrawWorld renders the loaded chunks and every entity with a sprite, camera
// centered. Layer order is background, middle ground, entities, foreground.
// Tiles draw as flat-color cells keyed off their code until real art lands.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return
	}
	chunks := components.Region.Get(regionEntry).Chunks

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	viewport := world.Rect{
		X: camera.Position.X - float64(width)/2,
		Y: camera.Position.Y - float64(height)/2,
		W: float64(width),
		H: float64(height),
	}

	for _, chunk := range chunks.Loaded() {
		if !chunk.Rect.Overlaps(viewport) {
			continue
		}
		drawDecor(screen, chunk, chunk.Background(), offX, offY, 0.5)
	}
	for _, chunk := range chunks.Loaded() {
		if !chunk.Rect.Overlaps(viewport) {
			continue
		}
		for _, t := range chunk.Tiles() {
			drawRect(screen, t.Rect, offX, offY, tileColor(t.Code, 1))
		}
	}

	drawEntities(e, screen, viewport, offX, offY)

	for _, chunk := range chunks.Loaded() {
		if !chunk.Rect.Overlaps(viewport) {
			continue
		}
		drawDecor(screen, chunk, chunk.Foreground(), offX, offY, 0.8)
	}
}

func drawDecor(screen *ebiten.Image, chunk *world.Chunk, decor []world.DecorTile, offX, offY, dim float64) {
	for _, d := range decor {
		rect := world.Rect{
			X: chunk.Rect.X + float64(d.X)*world.TileSize,
			Y: chunk.Rect.Y + float64(d.Y)*world.TileSize,
			W: world.TileSize,
			H: world.TileSize,
		}
		drawRect(screen, rect, offX, offY, tileColor(d.Code, dim))
	}
}

func drawEntities(e *ecs.ECS, screen *ebiten.Image, viewport world.Rect, offX, offY float64) {
	var entries []*donburi.Entry
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if components.Object.Get(entry).Rect.Overlaps(viewport) {
			entries = append(entries, entry)
		}
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Object.Get(entries[i]).DrawLevel < components.Object.Get(entries[j]).DrawLevel
	})

	for _, entry := range entries {
		sprite := components.Sprite.Get(entry)
		drawRect(screen, components.Object.Get(entry).Rect, offX, offY, sprite.Color)
	}
}

func drawRect(screen *ebiten.Image, r world.Rect, offX, offY float64, c color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(r.X+offX), float32(r.Y+offY),
		float32(r.W), float32(r.H),
		c, false)
}

// tileColor derives a stable placeholder color from the tile code.
func tileColor(code byte, dim float64) color.RGBA {
	h := uint32(code) * 2654435761
	scale := func(v uint32) uint8 { return uint8(float64(64+v%160) * dim) }
	return color.RGBA{
		R: scale(h >> 16),
		G: scale(h >> 8),
		B: scale(h),
		A: 255,
	}
}
