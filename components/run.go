package components

import (
	cfg "github.com/voidswing/voidswing/config"
	"github.com/yohamta/donburi"
)

// RunData is the single per-run state record. Distance is the maximum
// forward progress reached, so swinging backward never reduces it or the
// score derived from it.
type RunData struct {
	State    cfg.RunStateID
	Cause    cfg.TerminalCause
	Tick     int64
	Distance float64
	Score    int64
	ZoneIdx  int
}

var Run = donburi.NewComponentType[RunData]()
