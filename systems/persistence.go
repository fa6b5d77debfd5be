package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/components"
	"github.com/lunarpitch/voidfall/tags"
	"github.com/lunarpitch/voidfall/world"
)

// Save slots. The live slot tracks the current session; the checkpoint slot
// is a frozen copy taken at checkpoints, used for retry-from-checkpoint.
const (
	SlotLive       = "live"
	SlotCheckpoint = "checkpoint"
)

// SavedTile is one broken-tile log entry in a save file.
type SavedTile struct {
	ChunkX int `json:"chunkX"`
	ChunkY int `json:"chunkY"`
	TileX  int `json:"tileX"`
	TileY  int `json:"tileY"`
}

// SavedEntity is a persisted entity snapshot. Kind selects the respawn
// factory; Type carries the creature type name when relevant.
type SavedEntity struct {
	Kind   string  `json:"kind"`
	Type   string  `json:"type,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
}

// SaveFile is the complete persisted game state for one slot.
type SaveFile struct {
	Region       string        `json:"region"`
	PlayerX      float64       `json:"playerX"`
	PlayerY      float64       `json:"playerY"`
	PlayerHealth int           `json:"playerHealth"`
	BrokenTiles  []SavedTile   `json:"brokenTiles"`
	Entities     []SavedEntity `json:"entities"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for save storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "voidfall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// CaptureSave snapshots the current game state: player, broken tiles, and
// every entity marked Persist.
func CaptureSave(e *ecs.ECS) (*SaveFile, error) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return nil, fmt.Errorf("capture save: no region loaded")
	}
	region := components.Region.Get(regionEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return nil, fmt.Errorf("capture save: no player")
	}
	playerObj := components.Object.Get(playerEntry)
	playerHealth := components.Health.Get(playerEntry)

	save := &SaveFile{
		Region:       region.Name,
		PlayerX:      playerObj.Rect.X,
		PlayerY:      playerObj.Rect.Y,
		PlayerHealth: playerHealth.Current,
		BrokenTiles:  brokenToRecords(region.Chunks.BrokenTiles()),
	}

	components.Persist.Each(e.World, func(entry *donburi.Entry) {
		persist := components.Persist.Get(entry)
		obj := components.Object.Get(entry)
		snapshot := SavedEntity{
			Kind: persist.Kind,
			Type: persist.Type,
			X:    obj.Rect.X,
			Y:    obj.Rect.Y,
		}
		if entry.HasComponent(components.Health) {
			snapshot.Health = components.Health.Get(entry).Current
		}
		save.Entities = append(save.Entities, snapshot)
	})
	return save, nil
}

// SaveGame captures the current state into the given slot.
func SaveGame(e *ecs.ECS, slot string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	save, err := CaptureSave(e)
	if err != nil {
		return err
	}
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("serialize save: %w", err)
	}
	if err := gdataManager.SaveItem(slot, data); err != nil {
		return fmt.Errorf("write save slot %s: %w", slot, err)
	}
	return nil
}

// LoadGame reads a save slot. A missing slot returns (nil, nil).
func LoadGame(slot string) (*SaveFile, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(slot)
	if err != nil {
		log.Printf("Warning: Could not load save slot %s: %v", slot, err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var save SaveFile
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, fmt.Errorf("parse save slot %s: %w", slot, err)
	}
	return &save, nil
}

// HasSave reports whether a slot holds save data.
func HasSave(slot string) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}
	data, err := gdataManager.LoadItem(slot)
	return err == nil && len(data) > 0
}

// ClearSave empties a slot.
func ClearSave(slot string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	return gdataManager.SaveItem(slot, nil)
}

// brokenToRecords flattens the manager's broken-tile log for serialization.
func brokenToRecords(broken map[world.ChunkCoord]world.TileSet) []SavedTile {
	var out []SavedTile
	for pos, set := range broken {
		for t := range set {
			out = append(out, SavedTile{
				ChunkX: pos.X,
				ChunkY: pos.Y,
				TileX:  t.X,
				TileY:  t.Y,
			})
		}
	}
	return out
}

// recordsToBroken rebuilds the broken-tile log from save records.
func recordsToBroken(records []SavedTile) map[world.ChunkCoord]world.TileSet {
	broken := make(map[world.ChunkCoord]world.TileSet)
	for _, r := range records {
		pos := world.ChunkCoord{X: r.ChunkX, Y: r.ChunkY}
		if broken[pos] == nil {
			broken[pos] = make(world.TileSet)
		}
		broken[pos][world.TilePos{X: r.TileX, Y: r.TileY}] = struct{}{}
	}
	return broken
}

// RestoreBrokenTiles applies a save file's broken-tile log to the region and
// drops the loaded chunks so the holes take effect on the next stream pass.
func RestoreBrokenTiles(e *ecs.ECS, save *SaveFile) {
	regionEntry, ok := components.Region.First(e.World)
	if !ok {
		return
	}
	region := components.Region.Get(regionEntry)
	region.Chunks.RestoreBrokenTiles(recordsToBroken(save.BrokenTiles))
	region.Chunks.Refresh()
}
