package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	cfg "github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/regiondata"
	"github.com/lunarpitch/voidfall/systems"
	"github.com/lunarpitch/voidfall/systems/factory"
	"github.com/lunarpitch/voidfall/tags"
)

// Autosave cadence for the live slot, in ticks.
const autosaveInterval = 600

// WorldScene runs the streaming world simulation for one region.
type WorldScene struct {
	ecs    *ecs.ECS
	region *regiondata.RegionData
	ticks  int
	once   sync.Once
}

func NewWorldScene(region *regiondata.RegionData) *WorldScene {
	return &WorldScene{region: region}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	ws.ticks++
	if ws.ticks%autosaveInterval == 0 {
		if err := systems.SaveGame(ws.ecs, systems.SlotLive); err != nil {
			log.Printf("autosave: %v", err)
		}
	}

	// F5 freezes the current state as the checkpoint; F9 rewinds to it.
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := systems.SaveGame(ws.ecs, systems.SlotCheckpoint); err != nil {
			log.Printf("save checkpoint: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		save, err := systems.LoadGame(systems.SlotCheckpoint)
		if err != nil {
			log.Printf("load checkpoint: %v", err)
		} else if save != nil {
			ws.applySave(save)
			// The rewind replaces the live session too.
			if err := systems.SaveGame(ws.ecs, systems.SlotLive); err != nil {
				log.Printf("rewrite live save: %v", err)
			}
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Streaming and gating run first so every later system sees the tick's
	// final working set; movement follows the behavior systems so their
	// velocity changes land in the same tick.
	e.AddSystem(systems.UpdateStreaming)
	e.AddSystem(systems.UpdateProximity)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateCreatures)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateTileDamage)
	e.AddSystem(systems.UpdateHealth)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawWorld)

	ws.ecs = e

	factory.CreateRegion(e, ws.region)

	spawn, ok := ws.region.PlayerSpawn()
	if !ok {
		log.Printf("region %s has no player spawn", ws.region.Name)
	}
	factory.CreateCamera(e, spawn.X, spawn.Y)

	for _, s := range ws.region.Spawns {
		if _, err := factory.CreateFromSpawn(e, s); err != nil {
			log.Printf("spawn %s: %v", s.Kind, err)
		}
	}

	// Resume the live session when one matches this region.
	if save, err := systems.LoadGame(systems.SlotLive); err != nil {
		log.Printf("load save: %v", err)
	} else if save != nil && save.Region == ws.region.Name {
		ws.applySave(save)
	}
}

// applySave rewinds the scene to a save file: broken tiles, player state,
// and persisted entities.
func (ws *WorldScene) applySave(save *systems.SaveFile) {
	e := ws.ecs

	systems.RestoreBrokenTiles(e, save)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		obj.Rect.X = save.PlayerX
		obj.Rect.Y = save.PlayerY
		health := components.Health.Get(playerEntry)
		health.Current = save.PlayerHealth
		physics := components.Physics.Get(playerEntry)
		physics.Velocity.X = 0
		physics.Velocity.Y = 0
		death := components.Death.Get(playerEntry)
		death.Dying = false
	}

	// Persisted entities respawn from their snapshots.
	var stale []*donburi.Entry
	components.Persist.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})
	for _, entry := range stale {
		e.World.Remove(entry.Entity())
	}
	for _, s := range save.Entities {
		entry, err := factory.CreateFromSnapshot(e, s.Kind, s.Type, s.X, s.Y)
		if err != nil {
			log.Printf("restore entity: %v", err)
			continue
		}
		if entry.HasComponent(components.Health) && s.Health > 0 {
			components.Health.Get(entry).Current = s.Health
		}
	}
}
