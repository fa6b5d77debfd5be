package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarpitch/voidfall/regiondata"
)

// CreateFromSpawn dispatches an authored spawn point to its factory.
func CreateFromSpawn(e *ecs.ECS, s regiondata.Spawn) (*donburi.Entry, error) {
	switch s.Kind {
	case regiondata.SpawnPlayer:
		return CreatePlayer(e, s.X, s.Y), nil
	case regiondata.SpawnCreature:
		return CreateCreature(e, s.Type, s.X, s.Y)
	case regiondata.SpawnPlatform:
		return CreateFloatingPlatform(e, s.X, s.Y, s.TargetY), nil
	case regiondata.SpawnShip:
		return CreateShip(e, s.X, s.Y)
	default:
		return nil, fmt.Errorf("unknown spawn kind %q", s.Kind)
	}
}

// CreateFromSnapshot respawns a persisted entity from save data.
func CreateFromSnapshot(e *ecs.ECS, kind, typeName string, x, y float64) (*donburi.Entry, error) {
	switch kind {
	case regiondata.SpawnCreature:
		return CreateCreature(e, typeName, x, y)
	case regiondata.SpawnShip:
		return CreateShip(e, x, y)
	default:
		return nil, fmt.Errorf("unknown persisted entity kind %q", kind)
	}
}
