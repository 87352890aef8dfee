package tags

import "github.com/yohamta/donburi"

var (
	Body   = donburi.NewTag().SetName("Body")
	Hazard = donburi.NewTag().SetName("Hazard")
	Anchor = donburi.NewTag().SetName("Anchor")
)

// Resolv tags for collision broadphase
const (
	ResolvBody   = "body"
	ResolvHazard = "hazard"
	ResolvAnchor = "anchor"
)
