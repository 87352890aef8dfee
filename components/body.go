package components

import (
	"github.com/voidswing/voidswing/gamemath"
	"github.com/yohamta/donburi"
)

// CoPilotState is the shield state of the dino+co-pilot unit. The co-pilot
// absorbs exactly one hit; losing it grants a short invulnerability window
// and starts the auto-rescue countdown.
type CoPilotState int8

const (
	CoPilotAboard CoPilotState = iota
	CoPilotEjectedInvulnerable
	CoPilotEjectedVulnerable
)

type BodyData struct {
	// Attachment. AnchorPos is copied at attach time so the tether survives
	// anchor-list churn from the world generator.
	Attached     bool
	AnchorEntity donburi.Entity
	AnchorPos    gamemath.Vec

	// Heading is the last nonzero velocity direction, unit length. Dash
	// impulses follow it when the body is momentarily stationary.
	Heading gamemath.Vec

	// DashCooldown counts down to zero; dash is only available at zero.
	DashCooldown int

	// Shield. InvulnTicks is nonzero only while CoPilotEjectedInvulnerable.
	CoPilot        CoPilotState
	InvulnTicks    int
	LostAtDistance float64
}

// Invulnerable reports whether collisions are currently ignored.
func (b *BodyData) Invulnerable() bool {
	return b.CoPilot == CoPilotEjectedInvulnerable && b.InvulnTicks > 0
}

var Body = donburi.NewComponentType[BodyData]()
