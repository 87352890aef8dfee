package netcomponents

import "github.com/yohamta/donburi"

type NetBodyData struct {
	X, Y         float64
	VX, VY       float64
	Attached     bool
	AnchorX      float64
	AnchorY      float64
	CoPilot      int8
	InvulnTicks  int32
	DashCooldown int32
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates the continuous body fields; discrete state snaps.
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	return &NetBodyData{
		X:            from.X + (to.X-from.X)*t,
		Y:            from.Y + (to.Y-from.Y)*t,
		VX:           from.VX + (to.VX-from.VX)*t,
		VY:           from.VY + (to.VY-from.VY)*t,
		Attached:     to.Attached,
		AnchorX:      to.AnchorX,
		AnchorY:      to.AnchorY,
		CoPilot:      to.CoPilot,
		InvulnTicks:  to.InvulnTicks,
		DashCooldown: to.DashCooldown,
	}
}
