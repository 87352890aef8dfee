package netcomponents

import "github.com/yohamta/donburi"

// NetRunStateData mirrors the run state machine; no interpolation, the
// transitions are discrete.
type NetRunStateData struct {
	State    int8
	Cause    int8
	Distance float64
	Score    int64
	ZoneIdx  int8
	CameraX  float64
}

var NetRunState = donburi.NewComponentType[NetRunStateData]()
