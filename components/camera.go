package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // scroll offset; X only ever advances
}

var Camera = donburi.NewComponentType[CameraData]()
