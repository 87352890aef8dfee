package components

import (
	"math/rand"

	cfg "github.com/voidswing/voidswing/config"
	"github.com/yohamta/donburi"
)

// SpawnerData tracks the procedural hazard stream. Rand is seeded once per
// run; with equal seeds and inputs the hazard field is identical. Each kind
// carries the distance its next spawn is armed for, jitter included, so the
// rng is consumed once per spawn and never per tick.
type SpawnerData struct {
	Rand        *rand.Rand
	Seed        int64
	NextSpawnAt map[cfg.HazardKind]float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()
