package systems

import (
	"github.com/voidswing/voidswing/components"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRope enforces the inextensible tether. When the body drifts past the
// rope length it is repositioned radially onto the circle around the anchor
// and the outward radial velocity component is removed, leaving only the
// tangential part. The correction is positional, not spring-force based, so
// repeated ticks cannot oscillate into a blow-up. Runs every attached tick,
// after the tick's forces and before collision checks.
func UpdateRope(e *ecs.ECS) {
	bodyEntry, ok := tags.Body.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(bodyEntry)
	if !body.Attached {
		return
	}

	c := settings(e)
	physics := components.Physics.Get(bodyEntry)
	obj := components.Object.Get(bodyEntry)

	offset := obj.Center().Sub(body.AnchorPos)
	dist := offset.Length()
	if dist <= c.Rope.Length || dist == 0 {
		return
	}

	radial := offset.Scale(1 / dist)
	obj.SetCenter(body.AnchorPos.Add(radial.Scale(c.Rope.Length)))
	obj.Update()

	// Only the outward component is removed; the rope can pull, not push.
	if outward := physics.Velocity.Dot(radial); outward > 0 {
		physics.Velocity = physics.Velocity.Sub(radial.Scale(outward))
	}
}
