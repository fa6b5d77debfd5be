package components

import "github.com/yohamta/donburi"

// SimulateData gates whether an entity is stepped this tick. The proximity
// system sets Active from the distance to the simulation focus; entities
// with AlwaysUpdate ignore the window, and KillWhenOutOfRange entities are
// removed instead of frozen when they leave it.
type SimulateData struct {
	Active             bool
	AlwaysUpdate       bool
	KillWhenOutOfRange bool
}

var Simulate = donburi.NewComponentType[SimulateData]()
