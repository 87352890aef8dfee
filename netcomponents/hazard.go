package netcomponents

import "github.com/yohamta/donburi"

type NetHazardData struct {
	Kind           int8
	X, Y           float64
	Radius         float64
	Rotation       float64
	TrailLength    float64
	TerminalRadius float64
}

var NetHazard = donburi.NewComponentType[NetHazardData]()

// LerpNetHazard interpolates position and rotation between syncs.
func LerpNetHazard(from, to NetHazardData, t float64) *NetHazardData {
	return &NetHazardData{
		Kind:           to.Kind,
		X:              from.X + (to.X-from.X)*t,
		Y:              from.Y + (to.Y-from.Y)*t,
		Radius:         to.Radius,
		Rotation:       from.Rotation + (to.Rotation-from.Rotation)*t,
		TrailLength:    to.TrailLength,
		TerminalRadius: to.TerminalRadius,
	}
}
