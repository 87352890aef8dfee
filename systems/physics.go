package systems

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the dynamics for one fixed tick: body timers,
// gravity while detached, damping, the hard speed cap, position
// integration, and hazard motion. Rope correction and gravity-well forces
// run in their own systems after this one.
func UpdatePhysics(e *ecs.ECS) {
	c := settings(e)

	if bodyEntry, ok := tags.Body.First(e.World); ok {
		stepBody(c, bodyEntry)
	}

	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		stepHazard(entry)
	})
}

func stepBody(c *cfg.Config, entry *donburi.Entry) {
	body := components.Body.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	if body.DashCooldown > 0 {
		body.DashCooldown--
	}
	if body.InvulnTicks > 0 {
		body.InvulnTicks--
		if body.InvulnTicks == 0 {
			body.CoPilot = components.CoPilotEjectedVulnerable
		}
	}

	// Attached bodies get no free-fall gravity; the rope constraint turns
	// the tick's forces into swing.
	if !body.Attached {
		physics.Velocity.Y += c.Body.Gravity
	}

	physics.Velocity = physics.Velocity.Scale(1 / c.Body.DampingDiv)
	physics.Velocity = gamemath.CapSpeed(physics.Velocity, c.Body.MaxSpeed)

	obj.SetCenter(obj.Center().Add(physics.Velocity))
	obj.Update()

	if !physics.Velocity.IsZero() {
		body.Heading = physics.Velocity.Normalize()
	}
}

func stepHazard(entry *donburi.Entry) {
	hazard := components.Hazard.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	pos := obj.Center().Add(physics.Velocity)

	if entry.HasComponent(components.Tween) {
		tw := components.Tween.Get(entry)
		y, _, seqDone := tw.Update(1.0 / cfg.TicksPerSecond)
		pos.Y = float64(y)
		if seqDone {
			tw.Reset()
		}
	}

	obj.SetCenter(pos)
	obj.Update()

	hazard.Rotation += hazard.RotationRate
}
