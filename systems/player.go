package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/gamemath"
	"github.com/lunarpitch/voidfall/tags"
	"github.com/lunarpitch/voidfall/world"
)

// UpdatePlayer handles player input: horizontal acceleration, jumping, wall
// jumping off climbable tiles, and digging through breakable tiles.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	contacts := components.TileContacts.Get(playerEntry).Contacts
	death := components.Death.Get(playerEntry)

	if death.Dying || !simActive(playerEntry) {
		return
	}

	dt := cfg.World.DeltaTime

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		physics.Velocity.X -= cfg.Player.Acceleration * dt
		player.Direction = cfg.DirectionLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		physics.Velocity.X += cfg.Player.Acceleration * dt
		player.Direction = cfg.DirectionRight
	}
	physics.Velocity.X = gamemath.ClampSpeed(physics.Velocity.X, cfg.Player.MaxSpeed)

	player.OnWall = wallJumpSide(contacts) != world.SideNone

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch {
		case contacts.OnGround():
			physics.Velocity.Y = -cfg.Player.JumpSpeed
		case player.OnWall:
			physics.Velocity.Y = -cfg.Player.WallJumpY
			if wallJumpSide(contacts) == world.SideRight {
				physics.Velocity.X = -cfg.Player.WallJumpX
			} else {
				physics.Velocity.X = cfg.Player.WallJumpX
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		dig(e, obj.Rect.Center(), player.Direction)
	}
}

// wallJumpSide returns which side of the player is pressed against a
// climbable tile, or SideNone.
func wallJumpSide(contacts *world.Contacts) world.Side {
	for _, side := range [2]world.Side{world.SideLeft, world.SideRight} {
		for t := range contacts.Side(side) {
			if t.Props.WallJump {
				return side
			}
		}
	}
	return world.SideNone
}

// dig breaks the breakable tile one dig-range ahead of the player's center.
func dig(e *ecs.ECS, center world.Vec2, direction float64) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return
	}
	chunks := components.Region.Get(regionEntry).Chunks

	target := world.Vec2{X: center.X + direction*cfg.Player.DigRange, Y: center.Y}
	chunkPos, cell := world.CellAt(target)
	if err := chunks.BreakTile(chunkPos, cell, cfg.Player.DigSurrounding); err != nil {
		log.Printf("dig: %v", err)
	}
}
