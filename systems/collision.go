package systems

import (
	"github.com/voidswing/voidswing/components"
	cfg "github.com/voidswing/voidswing/config"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/systems/factory"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves body-hazard contact for the tick. Gravity-well
// terminal overlap is checked first and ends the run regardless of shield
// or invulnerability state; only then are hard hazards resolved against the
// co-pilot shield. Auto-rescue runs last, every tick, independent of any
// collision event.
func UpdateCollisions(e *ecs.ECS) {
	bodyEntry, ok := tags.Body.First(e.World)
	if !ok {
		return
	}
	c := settings(e)
	body := components.Body.Get(bodyEntry)
	obj := components.Object.Get(bodyEntry)
	bodyPos := obj.Center()

	candidates := overlapCandidates(e, obj)

	// Terminal pass: spaghettification outranks everything, including a
	// simultaneous hard-hazard hit in the same tick.
	for _, entry := range candidates {
		hazard := components.Hazard.Get(entry)
		if hazard.Kind != cfg.HazardGravityWell {
			continue
		}
		center := components.Object.Get(entry).Center()
		if gamemath.Distance(center, bodyPos) <= hazard.TerminalRadius+c.Body.Radius {
			EndRun(e, cfg.CauseWellTerminal)
			return
		}
	}

	// Hard hazard pass. Wells never reach this path; outside the terminal
	// radius they only pull.
	for _, entry := range candidates {
		hazard := components.Hazard.Get(entry)
		if hazard.Kind == cfg.HazardGravityWell {
			continue
		}
		center := components.Object.Get(entry).Center()
		if gamemath.Distance(center, bodyPos) > hazard.Radius+c.Body.Radius {
			continue
		}

		switch {
		case body.CoPilot == components.CoPilotAboard:
			body.CoPilot = components.CoPilotEjectedInvulnerable
			body.InvulnTicks = c.Shield.InvulnTicks
			body.LostAtDistance = runState(e).Distance
			factory.RetireHazard(e, entry)
		case body.Invulnerable():
			// No new collision registers during the ejection window.
		default:
			EndRun(e, cfg.CauseHazardCollision)
			return
		}
	}

	// Auto-rescue: the co-pilot catches back up after enough travel.
	if body.CoPilot != components.CoPilotAboard {
		if runState(e).Distance-body.LostAtDistance >= c.Shield.RescueDistance {
			body.CoPilot = components.CoPilotAboard
			body.InvulnTicks = 0
			body.LostAtDistance = 0
		}
	}
}

// overlapCandidates runs the resolv broadphase at zero delta and maps the
// hits back to hazard entries. Exact radius-sum tests happen per pass.
func overlapCandidates(e *ecs.ECS, obj *components.ObjectData) []*donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvHazard)
	if check == nil {
		return nil
	}
	var entries []*donburi.Entry
	for _, hit := range check.ObjectsByTags(tags.ResolvHazard) {
		entry, ok := hit.Data.(*donburi.Entry)
		if !ok || !e.World.Valid(entry.Entity()) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
