package systems

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntents drains the intent queue once per tick and applies the
// results to the body's control state. Precedence within a single tick:
// release beats grapple-start, so conflicting input resolves to letting go.
// Invalid intents (no anchor in range, dash on cooldown) are silent no-ops.
func UpdateIntents(e *ecs.ECS) {
	runEntry, ok := components.Run.First(e.World)
	if !ok {
		return
	}
	queue := components.IntentQueue.Get(runEntry)
	pending := queue.Drain()
	if len(pending) == 0 {
		return
	}

	bodyEntry, ok := tags.Body.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(bodyEntry)
	physics := components.Physics.Get(bodyEntry)
	obj := components.Object.Get(bodyEntry)

	var release, grapple, dash bool
	for _, intent := range pending {
		switch intent {
		case cfg.IntentRelease:
			release = true
		case cfg.IntentGrappleStart:
			grapple = true
		case cfg.IntentGrappleHold:
			// Keep-alive only; attachment persists until an explicit release.
		case cfg.IntentDash:
			dash = true
		}
	}

	switch {
	case release:
		// Detach preserving velocity exactly; release timing is the whole
		// momentum mechanic.
		body.Attached = false
	case grapple && !body.Attached:
		if anchorEntry, found := SelectAnchor(e, obj.Center()); found {
			body.Attached = true
			body.AnchorEntity = anchorEntry.Entity()
			body.AnchorPos = components.Object.Get(anchorEntry).Center()
		}
	}

	if dash && body.DashCooldown == 0 {
		c := settings(e)
		physics.Velocity = physics.Velocity.Add(body.Heading.Scale(c.Dash.Impulse))
		body.DashCooldown = c.Dash.CooldownTicks
	}
}
