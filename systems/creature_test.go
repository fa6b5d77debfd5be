package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/systems/factory"
	"github.com/lunarpitch/voidfall/world"
)

func TestCreaturePatrolTurnsAtRange(t *testing.T) {
	e := newTestECS()
	creature, err := factory.CreateCreature(e, "Grub", 100, 0)
	require.NoError(t, err)
	components.Simulate.Get(creature).Active = true

	UpdateCreatures(e)
	physics := components.Physics.Get(creature)
	data := components.Creature.Get(creature)
	assert.Equal(t, data.PatrolSpeed, physics.Velocity.X, "starts walking right")

	// Drag the creature past the right end of its patrol range.
	obj := components.Object.Get(creature)
	obj.Rect.X += data.PatrolRange + 10

	UpdateCreatures(e)
	assert.Equal(t, -data.PatrolSpeed, physics.Velocity.X, "turns back toward the origin")
}

func TestCreaturePatrolTurnsAtWall(t *testing.T) {
	e := newTestECS()
	creature, err := factory.CreateCreature(e, "Grub", 100, 0)
	require.NoError(t, err)
	components.Simulate.Get(creature).Active = true

	contacts := components.TileContacts.Get(creature)
	contacts.Add(world.SideRight, groundTile(t))

	UpdateCreatures(e)
	physics := components.Physics.Get(creature)
	assert.Equal(t, cfg.DirectionLeft*components.Creature.Get(creature).PatrolSpeed, physics.Velocity.X)
}

func TestCreatureFreezesWhileDying(t *testing.T) {
	e := newTestECS()
	creature, err := factory.CreateCreature(e, "Grub", 100, 0)
	require.NoError(t, err)
	components.Simulate.Get(creature).Active = true
	components.Death.Get(creature).Dying = true

	UpdateCreatures(e)
	assert.Equal(t, 0.0, components.Physics.Get(creature).Velocity.X)
}
