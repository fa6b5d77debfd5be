// Package world implements the tile, chunk and chunk streaming core of the
// game. It is pure simulation state (no rendering, input or ECS imports), so
// it can be exercised headless by both the game systems and the tests.
package world

import "math"

// Vec2 is a 2D point or displacement in world pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Side identifies which edge of an entity hitbox touches a tile.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Rect is an axis-aligned rectangle with float64 precision. Entity hitboxes
// use floats because integer rects accumulate rounding drift during
// per-frame movement, which breaks the exact edge-equality contact test.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r *Rect) SetLeft(v float64)   { r.X = v }
func (r *Rect) SetRight(v float64)  { r.X = v - r.W }
func (r *Rect) SetTop(v float64)    { r.Y = v }
func (r *Rect) SetBottom(v float64) { r.Y = v - r.H }

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Center() Vec2 {
	return Vec2{r.CenterX(), r.CenterY()}
}

func (r *Rect) SetCenter(p Vec2) {
	r.X = p.X - r.W/2
	r.Y = p.Y - r.H/2
}

// Overlaps reports whether the rectangles intersect. Exact edge touching
// does not count as an overlap; touching is what ContactSide detects.
func (r Rect) Overlaps(o Rect) bool {
	return math.Abs(r.CenterX()-o.CenterX()) < (r.W+o.W)/2 &&
		math.Abs(r.CenterY()-o.CenterY()) < (r.H+o.H)/2
}

// meets is the non-strict variant: true when the rectangles overlap or
// exactly touch. Used as a broad-phase filter, since a tile can only
// resolve or contact a hitbox it at least touches.
func (r Rect) meets(o Rect) bool {
	return math.Abs(r.CenterX()-o.CenterX()) <= (r.W+o.W)/2 &&
		math.Abs(r.CenterY()-o.CenterY()) <= (r.H+o.H)/2
}

// expand grows the rectangle by d on every edge.
func (r Rect) expand(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2*d, r.H + 2*d}
}

// ContactSide returns the side of r whose edge exactly coincides with the
// facing edge of o, or SideNone. The comparison is exact numeric equality:
// collision resolution clamps hitbox edges onto tile edges, so a resolved
// contact always satisfies it, and a near miss never does.
func (r Rect) ContactSide(o Rect) Side {
	if math.Abs(r.CenterX()-o.CenterX()) < (r.W+o.W)/2 {
		if r.Top() == o.Bottom() {
			return SideTop
		}
		if r.Bottom() == o.Top() {
			return SideBottom
		}
	}
	if math.Abs(r.CenterY()-o.CenterY()) < (r.H+o.H)/2 {
		if r.Left() == o.Right() {
			return SideLeft
		}
		if r.Right() == o.Left() {
			return SideRight
		}
	}
	return SideNone
}
