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

// spikeTile builds a tile that hurts entities standing on it.
func spikeTile(t *testing.T) *world.Tile {
	t.Helper()
	cat := world.NewCatalog()
	cat.Register(world.TileProperties{
		Code:      'x',
		Shape:     world.ShapeFull,
		Collision: true,
		DamageSides: map[world.Side]world.Damage{
			world.SideBottom: {Amount: 10, Kind: "spike"},
		},
	})
	chunk, err := world.NewChunk(0, 0, nil, nil, cat)
	require.NoError(t, err)
	require.NoError(t, chunk.AddTile(0, 4, 'x'))
	return chunk.TileAt(0, 4)
}

func TestTileDamageHurtsAndKnocksBack(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)

	contacts := components.TileContacts.Get(player)
	contacts.Add(world.SideBottom, spikeTile(t))

	UpdateTileDamage(e)

	health := components.Health.Get(player)
	assert.Equal(t, cfg.Player.Health-10, health.Current)
	assert.Equal(t, cfg.Hazard.InvulnSeconds, health.InvulnSeconds)

	// The player's center is above the tile's center, so the knockback
	// points upward.
	physics := components.Physics.Get(player)
	assert.Less(t, physics.Velocity.Y, 0.0)
	assert.InDelta(t, cfg.Hazard.Knockback, physics.Velocity.Len(), 1e-9)
}

func TestTileDamageRespectsCooldown(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)

	contacts := components.TileContacts.Get(player)
	contacts.Add(world.SideBottom, spikeTile(t))

	UpdateTileDamage(e)
	health := components.Health.Get(player)
	require.Equal(t, cfg.Player.Health-10, health.Current)

	// While the grace period runs, contact with the hazard is harmless.
	UpdateTileDamage(e)
	assert.Equal(t, cfg.Player.Health-10, health.Current)
	assert.Less(t, health.InvulnSeconds, cfg.Hazard.InvulnSeconds)

	health.InvulnSeconds = 0
	UpdateTileDamage(e)
	assert.Equal(t, cfg.Player.Health-20, health.Current)
}

func TestTileDamageIgnoresHarmlessSides(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)

	// Brushing the hazard from the side hits a side with no damage entry.
	contacts := components.TileContacts.Get(player)
	contacts.Add(world.SideRight, spikeTile(t))

	UpdateTileDamage(e)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(player).Current)
}

func TestTileDamageShakesCameraForPlayer(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 0, 0)
	camera := factory.CreateCamera(e, 0, 0)

	contacts := components.TileContacts.Get(player)
	contacts.Add(world.SideBottom, spikeTile(t))

	UpdateTileDamage(e)
	require.True(t, camera.HasComponent(components.ScreenShake))
	shake := components.ScreenShake.Get(camera)
	assert.Equal(t, cfg.ScreenShake.DamageIntensity, shake.Intensity)

	// The shake decays and removes itself.
	for i := 0; i < 30; i++ {
		UpdateCamera(e)
	}
	assert.False(t, camera.HasComponent(components.ScreenShake))
}
