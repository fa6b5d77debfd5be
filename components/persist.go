package components

import "github.com/yohamta/donburi"

// PersistData marks an entity for inclusion in save files. Kind selects the
// factory used to respawn it on load.
type PersistData struct {
	Kind string
	Type string
}

var Persist = donburi.NewComponentType[PersistData]()
