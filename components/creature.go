package components

import "github.com/yohamta/donburi"

// CreatureData is the patrol state for world creatures. Creatures walk back
// and forth around their spawn point, turning at the patrol range or when a
// wall blocks them.
type CreatureData struct {
	TypeName    string
	OriginX     float64
	Direction   float64
	PatrolSpeed float64
	PatrolRange float64
}

var Creature = donburi.NewComponentType[CreatureData]()
