package components

import (
	cfg "github.com/voidswing/voidswing/config"
	"github.com/yohamta/donburi"
)

// HazardData is the shared hazard record. Kind-specific parameters live in
// the same struct and are only meaningful for their kind; dispatch is a
// switch on Kind, not virtual.
type HazardData struct {
	Kind   cfg.HazardKind
	Radius float64

	// Asteroid
	Rotation     float64
	RotationRate float64

	// Comet / shooting star
	TrailLength float64

	// Gravity well
	PullStrength   float64
	TerminalRadius float64

	// SpawnDistance is the run distance when this hazard was created.
	SpawnDistance float64
}

var Hazard = donburi.NewComponentType[HazardData]()
