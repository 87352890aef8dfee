package systems

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravityWells pulls the body toward every alive well. The per-well
// accel is strength over squared distance, capped so close passes cannot
// blow up, and applies regardless of attachment: wells can drag an attached
// body taut, and a fast tangential pass gains speed on the way out, which
// is the slingshot. Terminal-radius reclassification happens in the
// collision system, before generic hazard handling.
func UpdateGravityWells(e *ecs.ECS) {
	bodyEntry, ok := tags.Body.First(e.World)
	if !ok {
		return
	}
	c := settings(e)
	physics := components.Physics.Get(bodyEntry)
	bodyPos := components.Object.Get(bodyEntry).Center()

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazard := components.Hazard.Get(entry)
		if hazard.Kind != cfg.HazardGravityWell {
			return
		}

		offset := components.Object.Get(entry).Center().Sub(bodyPos)
		d2 := offset.LengthSq()
		if d2 < 1 {
			d2 = 1
		}
		accel := hazard.PullStrength / d2
		if accel > c.Well.ForceCap {
			accel = c.Well.ForceCap
		}
		physics.Velocity = physics.Velocity.Add(offset.Normalize().Scale(accel))
	})
}
