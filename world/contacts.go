package world

// ContactSet holds the tiles touching one side of an entity hitbox.
type ContactSet map[*Tile]struct{}

func (s ContactSet) Empty() bool {
	return len(s) == 0
}

// Contacts records, per entity and per frame, which tiles the hitbox ended
// the movement pass in contact with on each side. Any aggregates all four.
// The sets are transient: movement clears and rebuilds them every frame.
type Contacts struct {
	Top    ContactSet
	Bottom ContactSet
	Left   ContactSet
	Right  ContactSet
	Any    ContactSet
}

func NewContacts() *Contacts {
	return &Contacts{
		Top:    make(ContactSet),
		Bottom: make(ContactSet),
		Left:   make(ContactSet),
		Right:  make(ContactSet),
		Any:    make(ContactSet),
	}
}

func (c *Contacts) Clear() {
	clear(c.Top)
	clear(c.Bottom)
	clear(c.Left)
	clear(c.Right)
	clear(c.Any)
}

// Add records a tile contact on the given side. SideNone is ignored, so
// collision query results can be fed in unconditionally.
func (c *Contacts) Add(side Side, t *Tile) {
	set := c.Side(side)
	if set == nil {
		return
	}
	set[t] = struct{}{}
	c.Any[t] = struct{}{}
}

func (c *Contacts) Side(side Side) ContactSet {
	switch side {
	case SideTop:
		return c.Top
	case SideBottom:
		return c.Bottom
	case SideLeft:
		return c.Left
	case SideRight:
		return c.Right
	}
	return nil
}

// OnGround reports whether the entity is resting on at least one tile.
func (c *Contacts) OnGround() bool {
	return len(c.Bottom) > 0
}

// MaxFriction returns the highest friction coefficient among the tiles
// contacted on the given side, or zero when the side is free.
func (c *Contacts) MaxFriction(side Side) float64 {
	friction := 0.0
	for t := range c.Side(side) {
		if t.Props.Friction > friction {
			friction = t.Props.Friction
		}
	}
	return friction
}
