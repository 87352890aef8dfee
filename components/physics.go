package components

import (
	"github.com/voidswing/voidswing/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity gamemath.Vec
}

var Physics = donburi.NewComponentType[PhysicsData]()
