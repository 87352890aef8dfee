package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
