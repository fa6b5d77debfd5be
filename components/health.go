package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	// InvulnSeconds counts down after taking a hit; hazard damage is
	// ignored while it is positive.
	InvulnSeconds float64
}

// DeathData delays entity removal so death effects can play out. Seconds
// counts down once Dying is set.
type DeathData struct {
	Dying   bool
	Seconds float64
}

var Health = donburi.NewComponentType[HealthData]()
var Death = donburi.NewComponentType[DeathData]()
