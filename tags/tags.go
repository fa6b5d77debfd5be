package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Creature         = donburi.NewTag().SetName("Creature")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Ship             = donburi.NewTag().SetName("Ship")
)
