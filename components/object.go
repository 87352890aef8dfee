package components

import (
	"github.com/solarlune/resolv"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the object's center in world units. Resolv objects are
// addressed by their top-left corner.
func (o *ObjectData) Center() gamemath.Vec {
	return gamemath.Vec{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the object so its center is at p. Callers must still call
// Update to reassign space cells.
func (o *ObjectData) SetCenter(p gamemath.Vec) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
