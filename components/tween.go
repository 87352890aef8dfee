package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives drifting hazards; the sequence yields an absolute center Y.
var Tween = donburi.NewComponentType[gween.Sequence]()
