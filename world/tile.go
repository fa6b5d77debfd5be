package world

import "fmt"

const (
	// TileSize is the edge length of one tile cell in world pixels.
	TileSize = 48

	// CollisionTolerance is the maximum distance an entity's bottom edge can
	// sit below a tile's top edge without registering a horizontal collision.
	// Without it an entity sliding along the ground catches the corner of
	// the next floor tile and stops dead.
	CollisionTolerance = 15

	// Air is the tile code that marks an empty cell in raw chunk data.
	Air = byte('0')
)

// Shape selects the hitbox geometry of a tile.
type Shape int

const (
	ShapeFull Shape = iota
	ShapeTopSlab
	ShapeBottomSlab
	ShapeRampTopLeft
	ShapeRampTopRight
	ShapeRampBottomLeft
	ShapeRampBottomRight
)

var shapeNames = map[string]Shape{
	"full":             ShapeFull,
	"top_slab":         ShapeTopSlab,
	"bottom_slab":      ShapeBottomSlab,
	"topleft_ramp":     ShapeRampTopLeft,
	"topright_ramp":    ShapeRampTopRight,
	"bottomleft_ramp":  ShapeRampBottomLeft,
	"bottomright_ramp": ShapeRampBottomRight,
}

// ParseShape converts a shape name from tile data into a Shape.
func ParseShape(name string) (Shape, error) {
	s, ok := shapeNames[name]
	if !ok {
		return ShapeFull, fmt.Errorf("unknown tile shape %q", name)
	}
	return s, nil
}

func (s Shape) IsRamp() bool {
	return s >= ShapeRampTopLeft
}

// flatTop reports whether a ramp's flat horizontal edge is its top edge.
// Top ramps hang from ceilings; bottom ramps are walkable floor slopes.
func (s Shape) flatTop() bool {
	return s == ShapeRampTopLeft || s == ShapeRampTopRight
}

// tallLeft reports whether a ramp's vertical edge is its left edge.
func (s Shape) tallLeft() bool {
	return s == ShapeRampTopLeft || s == ShapeRampBottomLeft
}

// Damage is the harm a tile deals to an entity touching one of its sides.
type Damage struct {
	Amount int
	Kind   string
}

// TileProperties are the immutable per-code tile attributes shared by every
// tile carrying the same code.
type TileProperties struct {
	Code        byte
	Name        string
	Shape       Shape
	Collision   bool
	Breakable   bool
	Friction    float64
	WallJump    bool
	DamageSides map[Side]Damage
}

// Catalog maps single-character tile codes to their properties. A region
// supplies one catalog and every chunk materialized for that region resolves
// codes against it.
type Catalog struct {
	props map[byte]*TileProperties
}

func NewCatalog() *Catalog {
	return &Catalog{props: make(map[byte]*TileProperties)}
}

func (c *Catalog) Register(p TileProperties) {
	cp := p
	c.props[p.Code] = &cp
}

func (c *Catalog) Has(code byte) bool {
	_, ok := c.props[code]
	return ok
}

// Get returns the properties for a tile code. A code with no catalog entry
// is a region configuration error, not a recoverable condition.
func (c *Catalog) Get(code byte) (*TileProperties, error) {
	p, ok := c.props[code]
	if !ok {
		return nil, fmt.Errorf("tile code %q not present in catalog", string(code))
	}
	return p, nil
}

func (c *Catalog) Len() int {
	return len(c.props)
}

// Tile is one collision cell in a chunk's middle-ground layer. Its Rect is
// the world-space hitbox; for ramps the Rect is the full-cell bounding box
// and the sloped surface is computed during vertical resolution.
type Tile struct {
	X, Y  int // local cell coordinates within the owning chunk
	Code  byte
	Props *TileProperties
	Rect  Rect
}

func newTile(chunkOrigin Vec2, x, y int, code byte, cat *Catalog) (*Tile, error) {
	props, err := cat.Get(code)
	if err != nil {
		return nil, err
	}

	t := &Tile{X: x, Y: y, Code: code, Props: props}
	t.Rect = Rect{
		X: chunkOrigin.X + float64(x)*TileSize,
		Y: chunkOrigin.Y + float64(y)*TileSize,
		W: TileSize,
		H: TileSize,
	}
	switch props.Shape {
	case ShapeTopSlab:
		t.Rect.H = TileSize / 2
	case ShapeBottomSlab:
		t.Rect.Y += TileSize / 2
		t.Rect.H = TileSize / 2
	}
	return t, nil
}

// CollideX resolves the horizontal component of an entity move against this
// tile, mutating the hitbox in place, and returns the entity side left in
// contact. Ramps resolve but never report a horizontal contact side.
func (t *Tile) CollideX(r *Rect, xMove float64) Side {
	if t.Props.Shape.IsRamp() {
		t.rampCollideX(r, xMove)
		return SideNone
	}

	if r.Overlaps(t.Rect) {
		if r.Bottom()-t.Rect.Top() < CollisionTolerance {
			return SideNone
		}
		if xMove > 0 {
			r.SetRight(t.Rect.Left())
		} else if xMove < 0 {
			r.SetLeft(t.Rect.Right())
		}
	}
	return r.ContactSide(t.Rect)
}

// CollideY resolves the vertical component of an entity move against this
// tile and returns the entity side left in contact.
func (t *Tile) CollideY(r *Rect, yMove float64) Side {
	if t.Props.Shape.IsRamp() {
		return t.rampCollideY(r, yMove)
	}

	if r.Overlaps(t.Rect) {
		if yMove > 0 && t.Rect.Bottom()-r.Top() > CollisionTolerance {
			r.SetBottom(t.Rect.Top())
		} else if yMove < 0 && r.Bottom()-t.Rect.Top() > CollisionTolerance {
			r.SetTop(t.Rect.Bottom())
		}
	}
	return r.ContactSide(t.Rect)
}

// rampCollideX blocks horizontal movement only when the entity's vertical
// span crosses the ramp's flat horizontal edge. Everywhere else the ramp is
// walk-through sideways, which is what lets an entity enter the thin corner
// and ride up the slope.
func (t *Tile) rampCollideX(r *Rect, xMove float64) {
	flat := t.Rect.Bottom()
	if t.Props.Shape.flatTop() {
		flat = t.Rect.Top()
	}
	if !(r.Top() < flat && flat < r.Bottom()) {
		return
	}

	if r.Overlaps(t.Rect) {
		if r.Bottom()-t.Rect.Top() < CollisionTolerance {
			return
		}
		if xMove > 0 {
			r.SetRight(t.Rect.Left())
		} else if xMove < 0 {
			r.SetLeft(t.Rect.Right())
		}
	}
}

func (t *Tile) rampCollideY(r *Rect, yMove float64) Side {
	if !r.Overlaps(t.Rect) {
		return SideNone
	}

	surface := t.SurfaceHeight(*r)
	if yMove < 0 && t.Props.Shape.flatTop() {
		if r.Top() <= surface {
			r.SetTop(surface)
			return SideTop
		}
	} else if yMove > 0 && !t.Props.Shape.flatTop() {
		if r.Bottom() >= surface {
			r.SetBottom(surface)
			return SideBottom
		}
	}
	return SideNone
}

// SurfaceHeight returns the y coordinate of the ramp's sloped surface under
// the given hitbox: the horizontal penetration past the tall edge, clamped
// to the cell height, offset from the flat edge. Linear in the hitbox's x
// position, which is what produces a continuously walkable slope.
func (t *Tile) SurfaceHeight(r Rect) float64 {
	var pen float64
	if t.Props.Shape.tallLeft() {
		pen = min(t.Rect.Right()-r.Left(), t.Rect.H)
	} else {
		pen = min(r.Right()-t.Rect.Left(), t.Rect.H)
	}

	if t.Props.Shape.flatTop() {
		return t.Rect.Top() + pen
	}
	return t.Rect.Bottom() - pen
}
