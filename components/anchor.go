package components

import "github.com/yohamta/donburi"

// AnchorData marks a grapple point. Anchors are owned by the external world
// generator; the core only scores and selects among the ones presented.
type AnchorData struct {
	Active bool
}

var Anchor = donburi.NewComponentType[AnchorData]()
