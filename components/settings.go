package components

import (
	cfg "github.com/voidswing/voidswing/config"
	"github.com/yohamta/donburi"
)

// SettingsData carries the validated tuning for this world. Systems read
// configuration through it instead of package globals so independent sims
// (and tests) can run side by side.
type SettingsData struct {
	Config *cfg.Config
}

var Settings = donburi.NewComponentType[SettingsData]()
