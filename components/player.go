package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// Direction is the facing direction, -1 or 1.
	Direction float64

	// OnWall is set while a wall-jump tile is in the side contacts.
	OnWall bool
}

var Player = donburi.NewComponentType[PlayerData]()
