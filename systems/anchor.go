package systems

import (
	"github.com/voidswing/voidswing/components"
	"github.com/voidswing/voidswing/gamemath"
	"github.com/voidswing/voidswing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SelectAnchor scores every active anchor within the detection radius and
// returns the winner. Lower is better: distance is the base cost, anchors
// ahead of the body get the forward bonus subtracted and anchors above get
// the larger upward bonus, which biases swings forward and up. Ties break
// toward the nearest anchor. Returns false when nothing is in range, which
// makes the grapple intent a no-op.
func SelectAnchor(e *ecs.ECS, bodyPos gamemath.Vec) (*donburi.Entry, bool) {
	c := settings(e)

	var best *donburi.Entry
	var bestScore, bestDist float64

	tags.Anchor.Each(e.World, func(entry *donburi.Entry) {
		anchor := components.Anchor.Get(entry)
		if !anchor.Active {
			return
		}
		pos := components.Object.Get(entry).Center()
		dist := gamemath.Distance(pos, bodyPos)
		if dist > c.Anchor.DetectRadius {
			return
		}

		score := dist
		if pos.X > bodyPos.X {
			score -= c.Anchor.ForwardBonus
		}
		if pos.Y < bodyPos.Y {
			score -= c.Anchor.UpwardBonus
		}

		if best == nil || score < bestScore || (score == bestScore && dist < bestDist) {
			best = entry
			bestScore = score
			bestDist = dist
		}
	})

	if best == nil {
		return nil, false
	}
	return best, true
}
