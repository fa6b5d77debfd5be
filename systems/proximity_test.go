package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/systems/factory"
	"github.com/lunarpitch/voidfall/tags"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func creatureCount(e *ecs.ECS) int {
	count := 0
	tags.Creature.Each(e.World, func(*donburi.Entry) { count++ })
	return count
}

func TestProximityGatesByDistance(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	near, err := factory.CreateCreature(e, "Grub", 800, 0)
	require.NoError(t, err)
	far, err := factory.CreateCreature(e, "Grub", 1200, 0)
	require.NoError(t, err)

	UpdateProximity(e)

	assert.True(t, components.Simulate.Get(near).Active, "creature 800px away simulates")
	assert.False(t, components.Simulate.Get(far).Active, "creature past the window freezes")
	assert.Equal(t, 2, creatureCount(e), "frozen creatures stay alive")
}

func TestProximityVerticalWindowIsTighter(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	below, err := factory.CreateCreature(e, "Grub", 0, 600)
	require.NoError(t, err)

	UpdateProximity(e)
	assert.False(t, components.Simulate.Get(below).Active)
}

func TestProximityKillsFlaggedEntities(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	transient, err := factory.CreateCreature(e, "Grub", 2000, 0)
	require.NoError(t, err)
	components.Simulate.Get(transient).KillWhenOutOfRange = true

	UpdateProximity(e)
	assert.Equal(t, 0, creatureCount(e))
}

func TestProximityAlwaysUpdateIgnoresWindow(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	sentinel, err := factory.CreateCreature(e, "Stalker", 5000, 0)
	require.NoError(t, err)
	components.Simulate.Get(sentinel).AlwaysUpdate = true

	UpdateProximity(e)
	assert.True(t, components.Simulate.Get(sentinel).Active)
}

func TestProximityKillDepthRemovesImmediately(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)

	_, err := factory.CreateCreature(e, "Grub", 0, 60000)
	require.NoError(t, err)

	// A fall past the kill depth skips the death sequence entirely.
	UpdateProximity(e)
	assert.Equal(t, 0, creatureCount(e))
	assert.False(t, components.Death.Get(player).Dying)
}

func TestProximityKillDepthTestsHitboxTop(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	// Hitbox straddling the kill depth: the top edge decides.
	straddling, err := factory.CreateCreature(e, "Grub", 0, cfg.World.KillDepth-10)
	require.NoError(t, err)
	gone, err := factory.CreateCreature(e, "Grub", 0, cfg.World.KillDepth+1)
	require.NoError(t, err)

	UpdateProximity(e)
	assert.Equal(t, 1, creatureCount(e))
	assert.True(t, straddling.Valid())
	assert.False(t, gone.Valid())
}

func TestGateSimulationCountsActiveEntities(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	_, err := factory.CreateCreature(e, "Grub", 800, 0)
	require.NoError(t, err)
	_, err = factory.CreateCreature(e, "Grub", 1200, 0)
	require.NoError(t, err)

	// The player and the near creature simulate; the far one is frozen.
	assert.Equal(t, 2, GateSimulation(e))
}

func TestHealthCountdownRemovesEntity(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	victim, err := factory.CreateCreature(e, "Grub", 100, 0)
	require.NoError(t, err)
	components.Health.Get(victim).Current = 0

	UpdateHealth(e)
	require.True(t, components.Death.Get(victim).Dying)
	require.Equal(t, 1, creatureCount(e), "death delay keeps the entity around")

	// Run the countdown out: one second of ticks plus one.
	for i := 0; i < 61; i++ {
		UpdateHealth(e)
	}
	assert.Equal(t, 0, creatureCount(e))
}
